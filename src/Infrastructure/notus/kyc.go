package notus

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"time"
)

// --- KYC individual verification sessions ---

type KYCSession struct {
	ID           string    `json:"id"`
	IndividualID string    `json:"individualId,omitempty"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
	ExpiresAt    time.Time `json:"expiresAt"`
}

// PresignedUpload is a one-shot POST target for a document image. Fields must be
// written to the multipart form before the file part.
type PresignedUpload struct {
	URL    string            `json:"url"`
	Fields map[string]string `json:"fields"`
}

type CreateKYCSessionRequest struct {
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	BirthDate        string `json:"birthDate"` // YYYY-MM-DD
	DocumentCategory string `json:"documentCategory"`
	DocumentCountry  string `json:"documentCountry"`
	DocumentID       string `json:"documentId"`
	Nationality      string `json:"nationality"`
	LivenessRequired bool   `json:"livenessRequired,omitempty"`
}

type CreateKYCSessionResponse struct {
	Session       KYCSession       `json:"session"`
	FrontDocument *PresignedUpload `json:"frontDocumentUpload,omitempty"`
	BackDocument  *PresignedUpload `json:"backDocumentUpload,omitempty"`
}

func (c *Client) CreateKYCSession(ctx context.Context, in CreateKYCSessionRequest) (*CreateKYCSessionResponse, error) {
	out, err := doJSON[CreateKYCSessionResponse](c, ctx, http.MethodPost, "/kyc/individual-verification-sessions/standard", nil, in)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

type kycSessionEnvelope struct {
	Session KYCSession `json:"session"`
}

func (c *Client) GetKYCSession(ctx context.Context, sessionID string) (*KYCSession, error) {
	p := fmt.Sprintf("/kyc/individual-verification-sessions/standard/%s", url.PathEscape(sessionID))
	env, err := doJSON[kycSessionEnvelope](c, ctx, http.MethodGet, p, nil, nil)
	if err != nil {
		return nil, err
	}
	return &env.Session, nil
}

// ProcessKYCSession triggers server-side verification of the uploaded documents.
// The resulting status is not pushed back; callers re-fetch the session.
func (c *Client) ProcessKYCSession(ctx context.Context, sessionID string) error {
	p := fmt.Sprintf("/kyc/individual-verification-sessions/standard/%s/process", url.PathEscape(sessionID))
	return c.do(ctx, http.MethodPost, p, nil, nil, nil)
}

// UploadDocument posts a document image to the presigned target supplied by the
// KYC API. The object store requires the presigned form fields to precede the
// file part; any non-2xx response is an upload failure.
func (c *Client) UploadDocument(ctx context.Context, target PresignedUpload, filename string, file []byte) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range target.Fields {
		if err := mw.WriteField(k, v); err != nil {
			return fmt.Errorf("write field %s: %w", k, err)
		}
	}
	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return fmt.Errorf("create file part: %w", err)
	}
	if _, err := fw.Write(file); err != nil {
		return fmt.Errorf("write file part: %w", err)
	}
	if err := mw.Close(); err != nil {
		return fmt.Errorf("close form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target.URL, &buf)
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	start := time.Now()
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return &APIError{Message: err.Error()}
	}
	defer resp.Body.Close()

	b, _ := io.ReadAll(resp.Body)
	c.Logger.Info().
		Str("url", target.URL).
		Int("status", resp.StatusCode).
		Str("duration", time.Since(start).String()).
		Msg("document upload")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newAPIError(resp.StatusCode, b)
	}
	return nil
}
