package domain

import (
	"context"

	"github.com/lumapay/luma/src/Infrastructure/notus"
)

// KYCAdapter is the port over the upstream verification resource, including
// the presigned document upload.
type KYCAdapter interface {
	CreateSession(ctx context.Context, in notus.CreateKYCSessionRequest) (*notus.CreateKYCSessionResponse, error)
	GetSession(ctx context.Context, sessionID string) (*notus.KYCSession, error)
	ProcessSession(ctx context.Context, sessionID string) error
	UploadDocument(ctx context.Context, target notus.PresignedUpload, filename string, file []byte) error
}

// MetadataStore reads and writes the wallet metadata bag that carries KYC
// progress. Backed by the wallet service.
type MetadataStore interface {
	Read(ctx context.Context, walletAddress string) (*notus.Wallet, error)
	Write(ctx context.Context, walletAddress string, metadata map[string]any) (*notus.Wallet, error)
}

// DocumentUpload pairs a presigned target with the image to push there.
type DocumentUpload struct {
	Target   notus.PresignedUpload
	Filename string
	Content  []byte
}

type UploadDocumentsRequest struct {
	DocumentCategory string
	Front            *DocumentUpload
	Back             *DocumentUpload
}

type KYCUseCase interface {
	Status(ctx context.Context, walletAddress string) (*WalletMetadata, error)
	SaveStage1(ctx context.Context, walletAddress string, data Stage1Data) (*WalletMetadata, error)
	CreateSession(ctx context.Context, walletAddress string, in notus.CreateKYCSessionRequest) (*notus.CreateKYCSessionResponse, error)
	UploadDocuments(ctx context.Context, in UploadDocumentsRequest) error
	ProcessSession(ctx context.Context, walletAddress string) (*WalletMetadata, error)
}
