package registration

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"buildlanka/models"
)

func validBusinessInfo() models.BusinessInfo {
	return models.BusinessInfo{
		BusinessName:    "Acme Co",
		OwnerName:       "J Silva",
		Email:           "j@acme.lk",
		Phone:           "+94771234567",
		BRNumber:        "BR/1/1",
		YearsInBusiness: 5,
		Description:     "test",
	}
}

func completedSession(t *testing.T, partnerType models.PartnerType) *models.PartnerRegistrationSession {
	t.Helper()
	sess := NewSession("sess-1")
	if err := SelectType(sess, partnerType); err != nil {
		t.Fatalf("select type: %v", err)
	}
	ApplyBusinessInfo(sess, validBusinessInfo())
	if err := SetLocation(sess, "12 Galle Road", "Colombo"); err != nil {
		t.Fatalf("set location: %v", err)
	}
	if err := ToggleService(sess, ServiceOptions(partnerType)[0]); err != nil {
		t.Fatalf("toggle service: %v", err)
	}
	SetInsuranceProvider(sess, "Ceylinco")
	SetInsurancePolicyNumber(sess, "POL-991")
	SetInsuranceExpiry(sess, time.Date(2027, 3, 1, 0, 0, 0, 0, time.UTC))
	return sess
}

func TestPreviousClampsAtFirstStep(t *testing.T) {
	sess := NewSession("s")
	for i := 0; i < 5; i++ {
		Previous(sess)
	}
	if sess.Step != models.StepTypeSelect {
		t.Fatalf("expected step 1 after repeated Previous, got %d", sess.Step)
	}
}

func TestNextClampsAtLastStep(t *testing.T) {
	sess := completedSession(t, models.PartnerVehicleOwner)
	for sess.Step < models.StepMax {
		if err := Next(sess); err != nil {
			t.Fatalf("advance from step %d: %v", sess.Step, err)
		}
	}
	for i := 0; i < 5; i++ {
		if err := Next(sess); err != nil {
			t.Fatalf("Next past the last step must be a no-op, got %v", err)
		}
	}
	if sess.Step != models.StepDocuments {
		t.Fatalf("expected step 4 after repeated Next, got %d", sess.Step)
	}
}

func TestStepOneGateRequiresPartnerType(t *testing.T) {
	sess := NewSession("s")
	err := Next(sess)
	var gate StepGateError
	if !errors.As(err, &gate) || sess.Step != models.StepTypeSelect {
		t.Fatalf("expected step gate failure at step 1, got err=%v step=%d", err, sess.Step)
	}
	if err := SelectType(sess, models.PartnerVehicleOwner); err != nil {
		t.Fatalf("select type: %v", err)
	}
	if err := Next(sess); err != nil {
		t.Fatalf("Next after selecting type: %v", err)
	}
	if sess.Step != models.StepBusinessInfo {
		t.Fatalf("expected step 2, got %d", sess.Step)
	}
}

func TestSelectTypeIdempotentAndPreservesLaterData(t *testing.T) {
	sess := completedSession(t, models.PartnerVehicleOwner)
	servicesBefore := append([]string(nil), sess.Draft.Services...)

	if err := SelectType(sess, models.PartnerVehicleOwner); err != nil {
		t.Fatalf("re-select same type: %v", err)
	}
	if !reflect.DeepEqual(sess.Draft.Services, servicesBefore) {
		t.Fatalf("re-selecting the same type changed the draft")
	}

	// Switching types keeps the entered data; the stale service surfaces
	// at validation time instead.
	if err := SelectType(sess, models.PartnerMaterialSupplier); err != nil {
		t.Fatalf("switch type: %v", err)
	}
	if !reflect.DeepEqual(sess.Draft.Services, servicesBefore) {
		t.Fatalf("switching type cleared later-step data")
	}
	err := ValidateDraft(&sess.Draft)
	var invalid InvalidOptionError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected stale service to fail validation, got %v", err)
	}
}

func TestToggleServiceMembership(t *testing.T) {
	sess := NewSession("s")
	if err := ToggleService(sess, "Excavation"); err != ErrPartnerTypeRequired {
		t.Fatalf("expected partner-type guard, got %v", err)
	}
	if err := SelectType(sess, models.PartnerVehicleOwner); err != nil {
		t.Fatalf("select type: %v", err)
	}
	if err := ToggleService(sess, "Sand Supply"); err == nil {
		t.Fatalf("material-supplier service accepted for vehicle owner")
	}

	// on, off, on again: net one selection.
	for i := 0; i < 3; i++ {
		if err := ToggleService(sess, "Excavation"); err != nil {
			t.Fatalf("toggle %d: %v", i, err)
		}
	}
	if !reflect.DeepEqual(sess.Draft.Services, []string{"Excavation"}) {
		t.Fatalf("expected single selected service, got %v", sess.Draft.Services)
	}
}

func TestPhotoAppendAndRemoveByIndex(t *testing.T) {
	sess := NewSession("s")
	if err := AddPhotos(sess, models.FileRef{PublicID: "a"}); err != ErrPhotosNotAllowed {
		t.Fatalf("photos must be vehicle-owner only, got %v", err)
	}
	if err := SelectType(sess, models.PartnerVehicleOwner); err != nil {
		t.Fatalf("select type: %v", err)
	}
	if err := AddPhotos(sess,
		models.FileRef{PublicID: "a"},
		models.FileRef{PublicID: "b"},
		models.FileRef{PublicID: "c"},
	); err != nil {
		t.Fatalf("add photos: %v", err)
	}
	if err := RemovePhoto(sess, 1); err != nil {
		t.Fatalf("remove photo: %v", err)
	}
	var got []string
	for _, p := range sess.Draft.Photos {
		got = append(got, p.PublicID)
	}
	if !reflect.DeepEqual(got, []string{"a", "c"}) {
		t.Fatalf("expected [a c] after removing index 1, got %v", got)
	}
	if err := RemovePhoto(sess, 7); err != ErrPhotoIndexOutOfRange {
		t.Fatalf("expected index guard, got %v", err)
	}
}

func TestAttachDocumentReplacesSlot(t *testing.T) {
	sess := NewSession("s")
	if err := AttachDocument(sess, models.SlotInsurance, models.FileRef{PublicID: "old"}); err != nil {
		t.Fatalf("attach: %v", err)
	}
	if err := AttachDocument(sess, models.SlotInsurance, models.FileRef{PublicID: "new"}); err != nil {
		t.Fatalf("re-attach: %v", err)
	}
	if sess.Draft.Documents[models.SlotInsurance].PublicID != "new" {
		t.Fatalf("slot upload must replace the prior file")
	}
	if err := AttachDocument(sess, "passport", models.FileRef{}); err == nil {
		t.Fatalf("unknown document slot accepted")
	}
}

func TestSetLocationRejectsUnknownDistrict(t *testing.T) {
	sess := NewSession("s")
	if err := SetLocation(sess, "addr", "Atlantis"); err == nil {
		t.Fatalf("unknown district accepted")
	}
	if err := SetLocation(sess, "addr", "Nuwara Eliya"); err != nil {
		t.Fatalf("valid district rejected: %v", err)
	}
}

func TestStepTwoGateChecksBusinessInfo(t *testing.T) {
	sess := NewSession("s")
	if err := SelectType(sess, models.PartnerMaterialSupplier); err != nil {
		t.Fatalf("select type: %v", err)
	}
	if err := Next(sess); err != nil {
		t.Fatalf("to step 2: %v", err)
	}

	info := validBusinessInfo()
	info.Email = "not-an-email"
	ApplyBusinessInfo(sess, info)
	if err := Next(sess); err == nil || sess.Step != models.StepBusinessInfo {
		t.Fatalf("malformed email passed the step-2 gate (err=%v step=%d)", err, sess.Step)
	}

	ApplyBusinessInfo(sess, validBusinessInfo())
	if err := Next(sess); err != nil || sess.Step != models.StepLocationServices {
		t.Fatalf("valid business info blocked (err=%v step=%d)", err, sess.Step)
	}
}
