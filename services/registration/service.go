package registration

import (
	"context"
	"fmt"
	"time"

	partnerRepo "buildlanka/database/repository/partner"
	"buildlanka/models"
	"buildlanka/services/tasks"
	"buildlanka/utils"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// InsuranceUpdate is a typed partial update of the nested insurance record.
// Nil fields are left untouched.
type InsuranceUpdate struct {
	Provider     *string    `json:"provider,omitempty"`
	PolicyNumber *string    `json:"policyNumber,omitempty"`
	ExpiryDate   *time.Time `json:"expiryDate,omitempty"`
}

// RegistrationService drives the partner registration wizard.
type RegistrationService interface {
	Open(ctx context.Context) (*models.PartnerRegistrationSession, error)
	Get(ctx context.Context, sessionID string) (*models.PartnerRegistrationSession, error)
	SelectType(ctx context.Context, sessionID string, t models.PartnerType) (*models.PartnerRegistrationSession, error)
	UpdateBusinessInfo(ctx context.Context, sessionID string, info models.BusinessInfo) (*models.PartnerRegistrationSession, error)
	UpdateLocation(ctx context.Context, sessionID, address, district string) (*models.PartnerRegistrationSession, error)
	ToggleService(ctx context.Context, sessionID, name string) (*models.PartnerRegistrationSession, error)
	ToggleCertification(ctx context.Context, sessionID, name string) (*models.PartnerRegistrationSession, error)
	UpdateInsurance(ctx context.Context, sessionID string, update InsuranceUpdate) (*models.PartnerRegistrationSession, error)
	AttachDocument(ctx context.Context, sessionID string, slot models.DocumentSlot, ref models.FileRef) (*models.PartnerRegistrationSession, error)
	AddPhotos(ctx context.Context, sessionID string, refs ...models.FileRef) (*models.PartnerRegistrationSession, error)
	RemovePhoto(ctx context.Context, sessionID string, index int) (*models.PartnerRegistrationSession, error)
	Next(ctx context.Context, sessionID string) (*models.PartnerRegistrationSession, error)
	Previous(ctx context.Context, sessionID string) (*models.PartnerRegistrationSession, error)
	Submit(ctx context.Context, sessionID string) (*models.Partner, error)
	Cancel(ctx context.Context, sessionID string) error
}

// DefaultRegistrationService is the production implementation.
type DefaultRegistrationService struct {
	Store    SessionStore
	Partners partnerRepo.PartnerRepository
	Queue    *asynq.Client
}

// Open creates a new wizard session on step 1 with an empty draft.
func (s *DefaultRegistrationService) Open(ctx context.Context) (*models.PartnerRegistrationSession, error) {
	sess := NewSession(uuid.New().String())
	if err := s.Store.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("failed to open registration session: %w", err)
	}
	return sess, nil
}

// Get returns the current state of an open session.
func (s *DefaultRegistrationService) Get(ctx context.Context, sessionID string) (*models.PartnerRegistrationSession, error) {
	return s.Store.Get(ctx, sessionID)
}

// mutate loads the session, applies fn, and saves the result when fn
// succeeds. Wizard-level errors pass through untouched so callers can
// branch on their types.
func (s *DefaultRegistrationService) mutate(ctx context.Context, sessionID string, fn func(*models.PartnerRegistrationSession) error) (*models.PartnerRegistrationSession, error) {
	sess, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := fn(sess); err != nil {
		return nil, err
	}
	if err := s.Store.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("failed to save registration session: %w", err)
	}
	return sess, nil
}

func (s *DefaultRegistrationService) SelectType(ctx context.Context, sessionID string, t models.PartnerType) (*models.PartnerRegistrationSession, error) {
	return s.mutate(ctx, sessionID, func(sess *models.PartnerRegistrationSession) error {
		return SelectType(sess, t)
	})
}

func (s *DefaultRegistrationService) UpdateBusinessInfo(ctx context.Context, sessionID string, info models.BusinessInfo) (*models.PartnerRegistrationSession, error) {
	return s.mutate(ctx, sessionID, func(sess *models.PartnerRegistrationSession) error {
		ApplyBusinessInfo(sess, info)
		return nil
	})
}

func (s *DefaultRegistrationService) UpdateLocation(ctx context.Context, sessionID, address, district string) (*models.PartnerRegistrationSession, error) {
	return s.mutate(ctx, sessionID, func(sess *models.PartnerRegistrationSession) error {
		return SetLocation(sess, address, district)
	})
}

func (s *DefaultRegistrationService) ToggleService(ctx context.Context, sessionID, name string) (*models.PartnerRegistrationSession, error) {
	return s.mutate(ctx, sessionID, func(sess *models.PartnerRegistrationSession) error {
		return ToggleService(sess, name)
	})
}

func (s *DefaultRegistrationService) ToggleCertification(ctx context.Context, sessionID, name string) (*models.PartnerRegistrationSession, error) {
	return s.mutate(ctx, sessionID, func(sess *models.PartnerRegistrationSession) error {
		return ToggleCertification(sess, name)
	})
}

func (s *DefaultRegistrationService) UpdateInsurance(ctx context.Context, sessionID string, update InsuranceUpdate) (*models.PartnerRegistrationSession, error) {
	return s.mutate(ctx, sessionID, func(sess *models.PartnerRegistrationSession) error {
		if update.Provider != nil {
			SetInsuranceProvider(sess, *update.Provider)
		}
		if update.PolicyNumber != nil {
			SetInsurancePolicyNumber(sess, *update.PolicyNumber)
		}
		if update.ExpiryDate != nil {
			SetInsuranceExpiry(sess, *update.ExpiryDate)
		}
		return nil
	})
}

func (s *DefaultRegistrationService) AttachDocument(ctx context.Context, sessionID string, slot models.DocumentSlot, ref models.FileRef) (*models.PartnerRegistrationSession, error) {
	return s.mutate(ctx, sessionID, func(sess *models.PartnerRegistrationSession) error {
		return AttachDocument(sess, slot, ref)
	})
}

func (s *DefaultRegistrationService) AddPhotos(ctx context.Context, sessionID string, refs ...models.FileRef) (*models.PartnerRegistrationSession, error) {
	return s.mutate(ctx, sessionID, func(sess *models.PartnerRegistrationSession) error {
		return AddPhotos(sess, refs...)
	})
}

func (s *DefaultRegistrationService) RemovePhoto(ctx context.Context, sessionID string, index int) (*models.PartnerRegistrationSession, error) {
	return s.mutate(ctx, sessionID, func(sess *models.PartnerRegistrationSession) error {
		return RemovePhoto(sess, index)
	})
}

func (s *DefaultRegistrationService) Next(ctx context.Context, sessionID string) (*models.PartnerRegistrationSession, error) {
	return s.mutate(ctx, sessionID, Next)
}

func (s *DefaultRegistrationService) Previous(ctx context.Context, sessionID string) (*models.PartnerRegistrationSession, error) {
	return s.mutate(ctx, sessionID, func(sess *models.PartnerRegistrationSession) error {
		Previous(sess)
		return nil
	})
}

// Submit finalizes the wizard: the draft is validated in full, assembled
// into an immutable Partner handed to the partner repository exactly once,
// and the session is discarded.
func (s *DefaultRegistrationService) Submit(ctx context.Context, sessionID string) (*models.Partner, error) {
	sess, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Step != models.StepDocuments {
		return nil, StepGateError{Step: sess.Step, Reason: "submission is only available from the final step"}
	}
	if err := ValidateDraft(&sess.Draft); err != nil {
		return nil, err
	}

	existing, err := s.Partners.GetByEmail(sess.Draft.Business.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check for existing partner: %w", err)
	}
	if existing != nil {
		return nil, ErrDuplicateSubmission
	}

	partner := buildPartner(&sess.Draft)
	if err := s.Partners.Create(partner); err != nil {
		return nil, fmt.Errorf("failed to store partner submission: %w", err)
	}

	s.enqueueAck(partner)

	if err := s.Store.Delete(ctx, sessionID); err != nil {
		utils.GetLogger().Warn("Failed to discard submitted registration session",
			zap.String("sessionID", sessionID), zap.Error(err))
	}
	return partner, nil
}

// Cancel discards the session without emitting a payload.
func (s *DefaultRegistrationService) Cancel(ctx context.Context, sessionID string) error {
	return s.Store.Delete(ctx, sessionID)
}

// buildPartner assembles the immutable submission payload from a draft.
func buildPartner(draft *models.PartnerDraft) *models.Partner {
	partner := &models.Partner{
		ID:             uuid.New().String(),
		Type:           draft.PartnerType,
		Business:       draft.Business,
		Address:        draft.Address,
		District:       draft.District,
		Services:       append([]string(nil), draft.Services...),
		Certifications: append([]string(nil), draft.Certifications...),
		Insurance:      draft.Insurance,
		Documents:      make(map[models.DocumentSlot]models.FileRef, len(draft.Documents)),
		Status:         models.PartnerStatusPending,
		CreatedAt:      time.Now(),
	}
	for slot, ref := range draft.Documents {
		partner.Documents[slot] = ref
	}
	if draft.PartnerType == models.PartnerVehicleOwner {
		partner.Photos = append([]models.FileRef(nil), draft.Photos...)
	}
	return partner
}

// enqueueAck queues the submission acknowledgement task. Queue failures are
// logged, never surfaced: the submission itself already succeeded.
func (s *DefaultRegistrationService) enqueueAck(partner *models.Partner) {
	if s.Queue == nil {
		return
	}
	task, err := tasks.NewPartnerSubmittedTask(models.PartnerSubmittedPayload{
		PartnerID:    partner.ID,
		PartnerType:  partner.Type,
		BusinessName: partner.Business.BusinessName,
		Email:        partner.Business.Email,
		Phone:        partner.Business.Phone,
		District:     partner.District,
	})
	if err != nil {
		utils.GetLogger().Error("Failed to build submission ack task", zap.Error(err))
		return
	}
	if _, err := s.Queue.Enqueue(task); err != nil {
		utils.GetLogger().Error("Failed to enqueue submission ack task",
			zap.String("partnerID", partner.ID), zap.Error(err))
	}
}
