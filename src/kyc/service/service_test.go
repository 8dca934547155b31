package service

import (
	"context"
	"testing"

	"github.com/lumapay/luma/src/Infrastructure/notus"
	"github.com/lumapay/luma/src/kyc/domain"
	"github.com/lumapay/luma/src/logger"
)

type recordingKYC struct {
	createCalls int
	uploadCalls int
}

var _ domain.KYCAdapter = (*recordingKYC)(nil)

func (r *recordingKYC) CreateSession(ctx context.Context, in notus.CreateKYCSessionRequest) (*notus.CreateKYCSessionResponse, error) {
	r.createCalls++
	return &notus.CreateKYCSessionResponse{}, nil
}

func (r *recordingKYC) GetSession(ctx context.Context, sessionID string) (*notus.KYCSession, error) {
	return &notus.KYCSession{ID: sessionID}, nil
}

func (r *recordingKYC) ProcessSession(ctx context.Context, sessionID string) error {
	return nil
}

func (r *recordingKYC) UploadDocument(ctx context.Context, target notus.PresignedUpload, filename string, file []byte) error {
	r.uploadCalls++
	return nil
}

func validSession() notus.CreateKYCSessionRequest {
	return notus.CreateKYCSessionRequest{
		FirstName:        "Ana",
		LastName:         "Souza",
		BirthDate:        "1990-04-12",
		DocumentCategory: "PASSPORT",
		DocumentCountry:  "BR",
		DocumentID:       "FD123456",
		Nationality:      "BRAZILIAN",
	}
}

func TestCreateSessionValidation(t *testing.T) {
	ctx := context.Background()

	mutations := []struct {
		name   string
		mutate func(*notus.CreateKYCSessionRequest)
	}{
		{"MissingFirstName", func(r *notus.CreateKYCSessionRequest) { r.FirstName = "" }},
		{"MissingLastName", func(r *notus.CreateKYCSessionRequest) { r.LastName = "" }},
		{"BadBirthDate", func(r *notus.CreateKYCSessionRequest) { r.BirthDate = "12/04/1990" }},
		{"MissingDocumentID", func(r *notus.CreateKYCSessionRequest) { r.DocumentID = "" }},
		{"MissingNationality", func(r *notus.CreateKYCSessionRequest) { r.Nationality = "" }},
	}
	for _, m := range mutations {
		t.Run(m.name, func(t *testing.T) {
			rec := &recordingKYC{}
			svc := NewService(rec, logger.New("dev"))
			in := validSession()
			m.mutate(&in)
			if _, err := svc.CreateSession(ctx, in); err == nil {
				t.Fatal("expected validation error")
			}
			if rec.createCalls != 0 {
				t.Error("adapter was called")
			}
		})
	}

	t.Run("ValidPasses", func(t *testing.T) {
		rec := &recordingKYC{}
		svc := NewService(rec, logger.New("dev"))
		if _, err := svc.CreateSession(ctx, validSession()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.createCalls != 1 {
			t.Errorf("adapter calls = %d, want 1", rec.createCalls)
		}
	})
}

func TestUploadDocumentValidation(t *testing.T) {
	ctx := context.Background()
	target := notus.PresignedUpload{URL: "https://upload/front"}

	t.Run("EmptyFileRejected", func(t *testing.T) {
		rec := &recordingKYC{}
		svc := NewService(rec, logger.New("dev"))
		if err := svc.UploadDocument(ctx, target, "front.jpg", nil); err == nil {
			t.Fatal("expected error for empty file")
		}
		if rec.uploadCalls != 0 {
			t.Error("adapter was called")
		}
	})

	t.Run("OversizeRejected", func(t *testing.T) {
		rec := &recordingKYC{}
		svc := NewService(rec, logger.New("dev"))
		big := make([]byte, maxDocumentBytes+1)
		if err := svc.UploadDocument(ctx, target, "front.jpg", big); err == nil {
			t.Fatal("expected error for oversize file")
		}
	})

	t.Run("MissingTargetRejected", func(t *testing.T) {
		rec := &recordingKYC{}
		svc := NewService(rec, logger.New("dev"))
		if err := svc.UploadDocument(ctx, notus.PresignedUpload{}, "front.jpg", []byte{1}); err == nil {
			t.Fatal("expected error for missing target")
		}
	})

	t.Run("ValidPasses", func(t *testing.T) {
		rec := &recordingKYC{}
		svc := NewService(rec, logger.New("dev"))
		if err := svc.UploadDocument(ctx, target, "front.jpg", []byte{1}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.uploadCalls != 1 {
			t.Errorf("adapter calls = %d, want 1", rec.uploadCalls)
		}
	})
}
