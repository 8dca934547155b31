package service

import (
	"context"
	"errors"
	"time"

	"github.com/lumapay/luma/src/Infrastructure/notus"
	"github.com/lumapay/luma/src/kyc/domain"
	"github.com/lumapay/luma/src/logger"
)

var _ domain.KYCAdapter = (*Service)(nil)

const maxDocumentBytes = 10 << 20

// Service validates verification session inputs before they reach the
// upstream API.
type Service struct {
	adapter domain.KYCAdapter
	logger  *logger.Logger
}

func NewService(adapter domain.KYCAdapter, logg *logger.Logger) *Service {
	return &Service{adapter: adapter, logger: logg}
}

func (s *Service) CreateSession(ctx context.Context, in notus.CreateKYCSessionRequest) (*notus.CreateKYCSessionResponse, error) {
	if in.FirstName == "" || in.LastName == "" {
		return nil, errors.New("firstName and lastName are required")
	}
	if _, err := time.Parse("2006-01-02", in.BirthDate); err != nil {
		return nil, errors.New("birthDate must be in YYYY-MM-DD format")
	}
	if in.DocumentCategory == "" || in.DocumentCountry == "" || in.DocumentID == "" {
		return nil, errors.New("documentCategory, documentCountry and documentId are required")
	}
	if in.Nationality == "" {
		return nil, errors.New("nationality is required")
	}
	return s.adapter.CreateSession(ctx, in)
}

func (s *Service) GetSession(ctx context.Context, sessionID string) (*notus.KYCSession, error) {
	if sessionID == "" {
		return nil, errors.New("sessionId is required")
	}
	return s.adapter.GetSession(ctx, sessionID)
}

func (s *Service) ProcessSession(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return errors.New("sessionId is required")
	}
	return s.adapter.ProcessSession(ctx, sessionID)
}

func (s *Service) UploadDocument(ctx context.Context, target notus.PresignedUpload, filename string, file []byte) error {
	if target.URL == "" {
		return errors.New("upload target is required")
	}
	if filename == "" {
		return errors.New("filename is required")
	}
	if len(file) == 0 {
		return errors.New("document file is empty")
	}
	if len(file) > maxDocumentBytes {
		return errors.New("document file exceeds 10MB")
	}
	return s.adapter.UploadDocument(ctx, target, filename, file)
}
