package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/lumapay/luma/src/Infrastructure/notus"
	"github.com/lumapay/luma/src/kyc/domain"
	"github.com/lumapay/luma/src/logger"
)

var _ domain.KYCUseCase = (*UseCase)(nil)

var (
	ErrUnderage         = errors.New("Must be at least 18 years old")
	ErrSessionActive    = errors.New("A verification session is already active")
	ErrNoActiveSession  = errors.New("No active verification session")
	ErrStage1Incomplete = errors.New("Stage 1 must be completed first")
	ErrAlreadyVerified  = errors.New("Verification already completed")
)

const minimumAge = 18

// UseCase drives the two-stage verification wizard. All progress lives in the
// wallet metadata bag; this type is the only writer of those keys.
type UseCase struct {
	kyc      domain.KYCAdapter
	metadata domain.MetadataStore
	logger   *logger.Logger
	now      func() time.Time
}

func NewUseCase(kyc domain.KYCAdapter, metadata domain.MetadataStore, logg *logger.Logger) *UseCase {
	return &UseCase{kyc: kyc, metadata: metadata, logger: logg, now: time.Now}
}

func (u *UseCase) Status(ctx context.Context, walletAddress string) (*domain.WalletMetadata, error) {
	w, err := u.metadata.Read(ctx, walletAddress)
	if err != nil {
		return nil, err
	}
	return domain.MetadataFromWallet(w)
}

// SaveStage1 persists the self-reported tier. No upstream session exists at
// this point, so the active-session key must stay absent.
func (u *UseCase) SaveStage1(ctx context.Context, walletAddress string, data domain.Stage1Data) (*domain.WalletMetadata, error) {
	if err := data.Validate(); err != nil {
		return nil, err
	}
	if err := u.checkAge(data.BirthDate); err != nil {
		return nil, err
	}

	w, err := u.metadata.Read(ctx, walletAddress)
	if err != nil {
		return nil, err
	}
	km, err := domain.MetadataFromWallet(w)
	if err != nil {
		return nil, err
	}
	if km.ActiveSession != nil {
		return nil, ErrSessionActive
	}

	km.Stage1 = &data
	km.KYCStatus = domain.StatusStage1Completed
	if err := u.writeBack(ctx, walletAddress, w, km); err != nil {
		return nil, err
	}
	u.logger.Infof("kyc stage 1 saved for wallet %s", walletAddress)
	return km, nil
}

// CreateSession opens the stage 2 document session. Stage 1 must have been
// saved first; a FAILED outcome may be retried. At most one session may be in
// flight per wallet.
func (u *UseCase) CreateSession(ctx context.Context, walletAddress string, in notus.CreateKYCSessionRequest) (*notus.CreateKYCSessionResponse, error) {
	if err := u.checkAge(in.BirthDate); err != nil {
		return nil, err
	}

	w, err := u.metadata.Read(ctx, walletAddress)
	if err != nil {
		return nil, err
	}
	km, err := domain.MetadataFromWallet(w)
	if err != nil {
		return nil, err
	}
	if km.ActiveSession != nil {
		return nil, ErrSessionActive
	}
	switch km.KYCStatus {
	case domain.StatusStage1Completed, domain.StatusFailed:
	case domain.StatusCompleted:
		return nil, ErrAlreadyVerified
	default:
		return nil, ErrStage1Incomplete
	}

	resp, err := u.kyc.CreateSession(ctx, in)
	if err != nil {
		return nil, err
	}

	km.KYCStatus = domain.StatusInProgress
	km.ActiveSession = &domain.ActiveSession{
		SessionID:    resp.Session.ID,
		Stage:        2,
		IndividualID: resp.Session.IndividualID,
		CreatedAt:    resp.Session.CreatedAt,
		ExpiresAt:    resp.Session.ExpiresAt,
	}
	if err := u.writeBack(ctx, walletAddress, w, km); err != nil {
		// session exists upstream but was not recorded; surface the write
		// failure so the client retries status instead of re-creating
		u.logger.Errorf("kyc session %s created but metadata write failed: %v", resp.Session.ID, err)
		return nil, err
	}
	u.logger.Infof("kyc session %s opened for wallet %s", resp.Session.ID, walletAddress)
	return resp, nil
}

// UploadDocuments pushes the captured images to their presigned targets. The
// back image is only required for two-sided document categories.
func (u *UseCase) UploadDocuments(ctx context.Context, in domain.UploadDocumentsRequest) error {
	if in.Front == nil {
		return errors.New("front document is required")
	}
	twoSided := in.DocumentCategory != domain.DocumentCategoryPassport
	if twoSided && in.Back == nil {
		return errors.New("back document is required for this document category")
	}

	if err := u.kyc.UploadDocument(ctx, in.Front.Target, in.Front.Filename, in.Front.Content); err != nil {
		return err
	}
	if in.Back != nil {
		if err := u.kyc.UploadDocument(ctx, in.Back.Target, in.Back.Filename, in.Back.Content); err != nil {
			return err
		}
	}
	return nil
}

// ProcessSession asks the provider to verify the active session, re-fetches
// the result, and finalizes the metadata. A terminal result clears the active
// session and appends exactly one history entry; a still-pending result leaves
// the metadata untouched.
func (u *UseCase) ProcessSession(ctx context.Context, walletAddress string) (*domain.WalletMetadata, error) {
	w, err := u.metadata.Read(ctx, walletAddress)
	if err != nil {
		return nil, err
	}
	km, err := domain.MetadataFromWallet(w)
	if err != nil {
		return nil, err
	}
	if km.ActiveSession == nil {
		return nil, ErrNoActiveSession
	}
	sessionID := km.ActiveSession.SessionID

	if err := u.kyc.ProcessSession(ctx, sessionID); err != nil {
		return nil, err
	}
	sess, err := u.kyc.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	var final domain.Status
	switch sess.Status {
	case domain.SessionCompleted:
		final = domain.StatusCompleted
	case domain.SessionFailed:
		final = domain.StatusFailed
	default:
		u.logger.Infof("kyc session %s still %s", sessionID, sess.Status)
		return km, nil
	}

	km.KYCStatus = final
	if final == domain.StatusCompleted && sess.IndividualID != "" {
		km.IndividualID = sess.IndividualID
	}
	km.Sessions = append(km.Sessions, domain.SessionRecord{
		SessionID:  sessionID,
		Status:     final,
		FinishedAt: u.now().UTC(),
	})
	km.ActiveSession = nil
	if err := u.writeBack(ctx, walletAddress, w, km); err != nil {
		return nil, err
	}
	u.logger.Infof("kyc session %s finished %s for wallet %s", sessionID, final, walletAddress)
	return km, nil
}

func (u *UseCase) writeBack(ctx context.Context, walletAddress string, w *notus.Wallet, km *domain.WalletMetadata) error {
	var bag map[string]any
	if w != nil {
		bag = w.Metadata
	}
	merged, err := km.MergeInto(bag)
	if err != nil {
		return err
	}
	_, err = u.metadata.Write(ctx, walletAddress, merged)
	return err
}

// checkAge rejects users younger than 18. Someone turning 18 today passes.
func (u *UseCase) checkAge(birthDate string) error {
	birth, err := time.Parse("2006-01-02", birthDate)
	if err != nil {
		return errors.New("birthDate must be in YYYY-MM-DD format")
	}
	cutoff := birth.AddDate(minimumAge, 0, 0)
	if u.now().UTC().Truncate(24 * time.Hour).Before(cutoff) {
		return ErrUnderage
	}
	return nil
}
