package http

import (
	"time"

	"github.com/lumapay/luma/src/Infrastructure/notus"
	"github.com/lumapay/luma/src/kyc/domain"
)

// Stage1RequestBody is the self-reported personal data tier
// swagger:model Stage1RequestBody
type Stage1RequestBody struct {
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	BirthDate        string `json:"birthDate" example:"1990-04-12"`
	DocumentCategory string `json:"documentCategory" example:"DRIVERS_LICENSE"`
	DocumentCountry  string `json:"documentCountry" example:"BR"`
	DocumentID       string `json:"documentId"`
	Nationality      string `json:"nationality" example:"BRAZILIAN"`
	Address          string `json:"address,omitempty"`
	City             string `json:"city,omitempty"`
	State            string `json:"state,omitempty"`
	PostalCode       string `json:"postalCode,omitempty"`
}

func (b Stage1RequestBody) ToStage1() domain.Stage1Data {
	return domain.Stage1Data{
		FirstName:        b.FirstName,
		LastName:         b.LastName,
		BirthDate:        b.BirthDate,
		DocumentCategory: b.DocumentCategory,
		DocumentCountry:  b.DocumentCountry,
		DocumentID:       b.DocumentID,
		Nationality:      b.Nationality,
		Address:          b.Address,
		City:             b.City,
		State:            b.State,
		PostalCode:       b.PostalCode,
	}
}

// CreateSessionRequestBody opens a stage 2 document verification session
// swagger:model CreateSessionRequestBody
type CreateSessionRequestBody struct {
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	BirthDate        string `json:"birthDate" example:"1990-04-12"`
	DocumentCategory string `json:"documentCategory" example:"DRIVERS_LICENSE"`
	DocumentCountry  string `json:"documentCountry" example:"BR"`
	DocumentID       string `json:"documentId"`
	Nationality      string `json:"nationality" example:"BRAZILIAN"`
	LivenessRequired bool   `json:"livenessRequired,omitempty"`
}

func (b CreateSessionRequestBody) ToRequest() notus.CreateKYCSessionRequest {
	return notus.CreateKYCSessionRequest{
		FirstName:        b.FirstName,
		LastName:         b.LastName,
		BirthDate:        b.BirthDate,
		DocumentCategory: b.DocumentCategory,
		DocumentCountry:  b.DocumentCountry,
		DocumentID:       b.DocumentID,
		Nationality:      b.Nationality,
		LivenessRequired: b.LivenessRequired,
	}
}

// ActiveSessionDTO describes the in-flight verification session
// swagger:model ActiveSessionDTO
type ActiveSessionDTO struct {
	SessionID string    `json:"sessionId"`
	Stage     int       `json:"stage"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// SessionRecordDTO is one finished session
// swagger:model SessionRecordDTO
type SessionRecordDTO struct {
	SessionID  string    `json:"sessionId"`
	Status     string    `json:"status"`
	FinishedAt time.Time `json:"finishedAt"`
}

// StatusResponse is the verification progress read from wallet metadata
// swagger:model StatusResponse
type StatusResponse struct {
	KYCStatus     string             `json:"kycStatus"`
	IndividualID  string             `json:"individualId,omitempty"`
	ActiveSession *ActiveSessionDTO  `json:"activeKYCSession,omitempty"`
	Sessions      []SessionRecordDTO `json:"kycSessions"`
}

func fromMetadata(km *domain.WalletMetadata) StatusResponse {
	out := StatusResponse{
		KYCStatus:    string(km.KYCStatus),
		IndividualID: km.IndividualID,
		Sessions:     make([]SessionRecordDTO, 0, len(km.Sessions)),
	}
	if km.ActiveSession != nil {
		out.ActiveSession = &ActiveSessionDTO{
			SessionID: km.ActiveSession.SessionID,
			Stage:     km.ActiveSession.Stage,
			ExpiresAt: km.ActiveSession.ExpiresAt,
		}
	}
	for _, s := range km.Sessions {
		out.Sessions = append(out.Sessions, SessionRecordDTO{
			SessionID:  s.SessionID,
			Status:     string(s.Status),
			FinishedAt: s.FinishedAt,
		})
	}
	return out
}

// PresignedUploadDTO is the one-shot upload target for a document image
// swagger:model PresignedUploadDTO
type PresignedUploadDTO struct {
	URL    string            `json:"url"`
	Fields map[string]string `json:"fields"`
}

// CreateSessionResponse returns the opened session and its upload targets
// swagger:model CreateSessionResponse
type CreateSessionResponse struct {
	SessionID     string              `json:"sessionId"`
	Status        string              `json:"status"`
	ExpiresAt     time.Time           `json:"expiresAt"`
	FrontDocument *PresignedUploadDTO `json:"frontDocumentUpload,omitempty"`
	BackDocument  *PresignedUploadDTO `json:"backDocumentUpload,omitempty"`
}

func fromSessionResponse(r *notus.CreateKYCSessionResponse) CreateSessionResponse {
	out := CreateSessionResponse{
		SessionID: r.Session.ID,
		Status:    r.Session.Status,
		ExpiresAt: r.Session.ExpiresAt,
	}
	if r.FrontDocument != nil {
		out.FrontDocument = &PresignedUploadDTO{URL: r.FrontDocument.URL, Fields: r.FrontDocument.Fields}
	}
	if r.BackDocument != nil {
		out.BackDocument = &PresignedUploadDTO{URL: r.BackDocument.URL, Fields: r.BackDocument.Fields}
	}
	return out
}
