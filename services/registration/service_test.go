package registration

import (
	"context"
	"testing"
	"time"

	"buildlanka/models"
)

// fakePartnerRepo is the submission collaborator used by tests.
type fakePartnerRepo struct {
	created  []*models.Partner
	existing map[string]*models.Partner
}

func newFakePartnerRepo() *fakePartnerRepo {
	return &fakePartnerRepo{existing: map[string]*models.Partner{}}
}

func (f *fakePartnerRepo) GetByID(id string) (*models.Partner, error) { return nil, nil }
func (f *fakePartnerRepo) GetByEmail(email string) (*models.Partner, error) {
	return f.existing[email], nil
}
func (f *fakePartnerRepo) ListByStatus(status string) ([]models.Partner, error) { return nil, nil }
func (f *fakePartnerRepo) Create(p *models.Partner) error {
	f.created = append(f.created, p)
	f.existing[p.Business.Email] = p
	return nil
}
func (f *fakePartnerRepo) UpdateStatus(id, status string) error { return nil }
func (f *fakePartnerRepo) Delete(id string) error               { return nil }

func newTestService() (*DefaultRegistrationService, *fakePartnerRepo) {
	repo := newFakePartnerRepo()
	svc := &DefaultRegistrationService{
		Store:    NewMemorySessionStore(),
		Partners: repo,
	}
	return svc, repo
}

func TestWizardEndToEnd(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	sess, err := svc.Open(ctx)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	id := sess.SessionID

	// Step 1: choose vehicle owner and advance.
	if _, err := svc.SelectType(ctx, id, models.PartnerVehicleOwner); err != nil {
		t.Fatalf("select type: %v", err)
	}
	if sess, err = svc.Next(ctx, id); err != nil || sess.Step != models.StepBusinessInfo {
		t.Fatalf("to step 2: err=%v step=%d", err, sess.Step)
	}

	// Step 2: fill all required fields.
	if _, err := svc.UpdateBusinessInfo(ctx, id, models.BusinessInfo{
		BusinessName:    "Acme Co",
		OwnerName:       "J Silva",
		Email:           "j@acme.lk",
		Phone:           "+94771234567",
		BRNumber:        "BR/1/1",
		YearsInBusiness: 5,
		Description:     "test",
	}); err != nil {
		t.Fatalf("business info: %v", err)
	}
	if sess, err = svc.Next(ctx, id); err != nil || sess.Step != models.StepLocationServices {
		t.Fatalf("to step 3: err=%v step=%d", err, sess.Step)
	}

	// Step 3: district, one service toggled on, off, on again, insurance.
	if _, err := svc.UpdateLocation(ctx, id, "12 Galle Road", "Colombo"); err != nil {
		t.Fatalf("location: %v", err)
	}
	for i := 0; i < 3; i++ {
		if _, err := svc.ToggleService(ctx, id, "Excavation"); err != nil {
			t.Fatalf("toggle %d: %v", i, err)
		}
	}
	provider := "Ceylinco"
	policy := "POL-991"
	expiry := time.Date(2027, 3, 1, 0, 0, 0, 0, time.UTC)
	if _, err := svc.UpdateInsurance(ctx, id, InsuranceUpdate{
		Provider:     &provider,
		PolicyNumber: &policy,
		ExpiryDate:   &expiry,
	}); err != nil {
		t.Fatalf("insurance: %v", err)
	}
	if sess, err = svc.Next(ctx, id); err != nil || sess.Step != models.StepDocuments {
		t.Fatalf("to step 4: err=%v step=%d", err, sess.Step)
	}

	// Step 4: submit.
	partner, err := svc.Submit(ctx, id)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	if len(repo.created) != 1 {
		t.Fatalf("expected exactly one submission, got %d", len(repo.created))
	}
	got := repo.created[0]
	if got.Type != models.PartnerVehicleOwner {
		t.Fatalf("partner type: got %q", got.Type)
	}
	if got.Business.BusinessName != "Acme Co" || got.Business.OwnerName != "J Silva" ||
		got.Business.Email != "j@acme.lk" || got.Business.Phone != "+94771234567" ||
		got.Business.BRNumber != "BR/1/1" || got.Business.YearsInBusiness != 5 ||
		got.Business.Description != "test" {
		t.Fatalf("business info not carried verbatim: %+v", got.Business)
	}
	if got.District != "Colombo" {
		t.Fatalf("district: got %q", got.District)
	}
	if len(got.Services) != 1 || got.Services[0] != "Excavation" {
		t.Fatalf("expected net one selected service, got %v", got.Services)
	}
	if got.Status != models.PartnerStatusPending {
		t.Fatalf("status: got %q", got.Status)
	}
	if partner.ID != got.ID {
		t.Fatalf("returned partner differs from stored partner")
	}

	// The wizard is closed: the session is gone.
	if _, err := svc.Get(ctx, id); err != ErrSessionNotFound {
		t.Fatalf("expected session to be discarded after submit, got %v", err)
	}

	// A fresh wizard starts over at step 1 with empty fields.
	fresh, err := svc.Open(ctx)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if fresh.Step != models.StepTypeSelect || fresh.Draft.PartnerType != "" ||
		fresh.Draft.Business.BusinessName != "" || len(fresh.Draft.Services) != 0 {
		t.Fatalf("fresh session is not empty: %+v", fresh)
	}
}

func TestSubmitRequiresFinalStep(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	sess, err := svc.Open(ctx)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := svc.Submit(ctx, sess.SessionID); err == nil {
		t.Fatalf("submit from step 1 accepted")
	}
	if len(repo.created) != 0 {
		t.Fatalf("collaborator invoked despite rejected submit")
	}
}

func TestSubmitRejectsDuplicateEmail(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()
	repo.existing["j@acme.lk"] = &models.Partner{ID: "p-0"}

	sess, err := svc.Open(ctx)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	id := sess.SessionID

	if _, err := svc.SelectType(ctx, id, models.PartnerMaterialSupplier); err != nil {
		t.Fatalf("select type: %v", err)
	}
	if _, err := svc.UpdateBusinessInfo(ctx, id, models.BusinessInfo{
		BusinessName: "Acme Co", OwnerName: "J Silva", Email: "j@acme.lk",
		Phone: "+94771234567", BRNumber: "BR/1/1", YearsInBusiness: 2, Description: "d",
	}); err != nil {
		t.Fatalf("business info: %v", err)
	}
	if _, err := svc.UpdateLocation(ctx, id, "addr", "Galle"); err != nil {
		t.Fatalf("location: %v", err)
	}
	if _, err := svc.ToggleService(ctx, id, "Sand Supply"); err != nil {
		t.Fatalf("service: %v", err)
	}
	provider := "SLIC"
	policy := "POL-1"
	expiry := time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC)
	if _, err := svc.UpdateInsurance(ctx, id, InsuranceUpdate{Provider: &provider, PolicyNumber: &policy, ExpiryDate: &expiry}); err != nil {
		t.Fatalf("insurance: %v", err)
	}
	for i := 0; i < 3; i++ {
		if _, err := svc.Next(ctx, id); err != nil {
			t.Fatalf("advance %d: %v", i, err)
		}
	}

	if _, err := svc.Submit(ctx, id); err != ErrDuplicateSubmission {
		t.Fatalf("expected duplicate-submission rejection, got %v", err)
	}
	if len(repo.created) != 0 {
		t.Fatalf("duplicate submission stored")
	}
}

func TestCancelDiscardsWithoutPayload(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	sess, err := svc.Open(ctx)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := svc.SelectType(ctx, sess.SessionID, models.PartnerVehicleOwner); err != nil {
		t.Fatalf("select type: %v", err)
	}
	if err := svc.Cancel(ctx, sess.SessionID); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if _, err := svc.Get(ctx, sess.SessionID); err != ErrSessionNotFound {
		t.Fatalf("expected session gone after cancel, got %v", err)
	}
	if len(repo.created) != 0 {
		t.Fatalf("cancel emitted a payload")
	}
}
