package domain

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/lumapay/luma/src/Infrastructure/notus"
)

type Status string

const (
	StatusNotStarted      Status = "NOT_STARTED"
	StatusStage1Completed Status = "STAGE_1_COMPLETED"
	StatusInProgress      Status = "IN_PROGRESS"
	StatusCompleted       Status = "COMPLETED"
	StatusFailed          Status = "FAILED"
)

// Upstream session statuses as reported by the verification provider.
const (
	SessionCompleted = "COMPLETED"
	SessionFailed    = "FAILED"
)

// DocumentCategoryPassport is the one category verified from a single page;
// every other category needs front and back images.
const DocumentCategoryPassport = "PASSPORT"

// Stage1Data is the self-reported tier: no upstream session is created for it.
type Stage1Data struct {
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	BirthDate        string `json:"birthDate"` // YYYY-MM-DD
	DocumentCategory string `json:"documentCategory"`
	DocumentCountry  string `json:"documentCountry"`
	DocumentID       string `json:"documentId"`
	Nationality      string `json:"nationality"`
	Address          string `json:"address,omitempty"`
	City             string `json:"city,omitempty"`
	State            string `json:"state,omitempty"`
	PostalCode       string `json:"postalCode,omitempty"`
}

func (d Stage1Data) Validate() error {
	if d.FirstName == "" || d.LastName == "" {
		return errors.New("firstName and lastName are required")
	}
	if _, err := time.Parse("2006-01-02", d.BirthDate); err != nil {
		return errors.New("birthDate must be in YYYY-MM-DD format")
	}
	if d.DocumentCategory == "" || d.DocumentCountry == "" || d.DocumentID == "" {
		return errors.New("documentCategory, documentCountry and documentId are required")
	}
	if d.Nationality == "" {
		return errors.New("nationality is required")
	}
	return nil
}

// ActiveSession is the single in-flight verification session. The invariant is
// at most one per wallet; reaching COMPLETED or FAILED clears it.
type ActiveSession struct {
	SessionID    string    `json:"sessionId"`
	Stage        int       `json:"stage"`
	IndividualID string    `json:"individualId,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	ExpiresAt    time.Time `json:"expiresAt"`
}

// SessionRecord is one finished session appended to the history array.
type SessionRecord struct {
	SessionID  string    `json:"sessionId"`
	Status     Status    `json:"status"`
	FinishedAt time.Time `json:"finishedAt"`
}

// WalletMetadata is the KYC slice of the wallet metadata bag. The bag is owned
// upstream; this struct defines the schema of the keys this app writes.
type WalletMetadata struct {
	KYCStatus     Status          `json:"kycStatus"`
	Stage1        *Stage1Data     `json:"kycStage1,omitempty"`
	ActiveSession *ActiveSession  `json:"activeKYCSession,omitempty"`
	Sessions      []SessionRecord `json:"kycSessions,omitempty"`
	IndividualID  string          `json:"individualId,omitempty"`
}

// MetadataFromWallet decodes the KYC keys out of a wallet's metadata bag.
// A wallet with no KYC keys yields NOT_STARTED.
func MetadataFromWallet(w *notus.Wallet) (*WalletMetadata, error) {
	km := &WalletMetadata{KYCStatus: StatusNotStarted}
	if w == nil || len(w.Metadata) == 0 {
		return km, nil
	}
	raw, err := json.Marshal(w.Metadata)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(raw, km); err != nil {
		return nil, err
	}
	if km.KYCStatus == "" {
		km.KYCStatus = StatusNotStarted
	}
	return km, nil
}

// MergeInto writes the KYC keys back into an existing metadata bag without
// disturbing keys owned by other features. This is the read-modify-write the
// metadata side-channel forces; keeping it in one place bounds the race window.
func (m *WalletMetadata) MergeInto(bag map[string]any) (map[string]any, error) {
	raw, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	var own map[string]any
	if err := json.Unmarshal(raw, &own); err != nil {
		return nil, err
	}
	merged := make(map[string]any, len(bag)+len(own))
	for k, v := range bag {
		merged[k] = v
	}
	for k, v := range own {
		merged[k] = v
	}
	// omitted optional keys must be removed, not left stale
	if m.ActiveSession == nil {
		delete(merged, "activeKYCSession")
	}
	return merged, nil
}
