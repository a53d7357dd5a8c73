package registration

import (
	"time"

	"buildlanka/models"
)

// The wizard state machine. Every function here mutates only the session it
// is handed and performs no I/O, so the whole flow is testable without the
// session store or the HTTP layer.

// NewSession returns a fresh wizard session positioned on step 1 with an
// empty draft.
func NewSession(sessionID string) *models.PartnerRegistrationSession {
	now := time.Now()
	return &models.PartnerRegistrationSession{
		SessionID: sessionID,
		Step:      models.StepTypeSelect,
		Draft: models.PartnerDraft{
			Services:       []string{},
			Certifications: []string{},
			Documents:      map[models.DocumentSlot]models.FileRef{},
			Photos:         []models.FileRef{},
		},
		CreatedAt:     now,
		LastUpdatedAt: now,
	}
}

func touch(sess *models.PartnerRegistrationSession) {
	sess.LastUpdatedAt = time.Now()
}

// SelectType records the partner type chosen at step 1. Re-selecting the
// same type is a no-op. Switching types deliberately leaves any data already
// entered in later steps in place; stale services for the old type are
// caught by validation instead of being silently cleared.
func SelectType(sess *models.PartnerRegistrationSession, t models.PartnerType) error {
	if t != models.PartnerVehicleOwner && t != models.PartnerMaterialSupplier {
		return InvalidOptionError{Option: string(t)}
	}
	if sess.Draft.PartnerType == t {
		return nil
	}
	sess.Draft.PartnerType = t
	touch(sess)
	return nil
}

// Next advances the wizard one step if the current step's gate passes.
// Beyond the last step it is a clamp: no movement, no error.
func Next(sess *models.PartnerRegistrationSession) error {
	if sess.Step >= models.StepMax {
		return nil
	}
	if err := validateStep(sess.Step, &sess.Draft); err != nil {
		return err
	}
	sess.Step++
	touch(sess)
	return nil
}

// Previous moves the wizard one step back, clamping at the first step.
func Previous(sess *models.PartnerRegistrationSession) {
	if sess.Step <= models.StepMin {
		return
	}
	sess.Step--
	touch(sess)
}

// ApplyBusinessInfo replaces the step-2 block of the draft.
func ApplyBusinessInfo(sess *models.PartnerRegistrationSession, info models.BusinessInfo) {
	sess.Draft.Business = info
	touch(sess)
}

// SetLocation records the step-3 address and district.
func SetLocation(sess *models.PartnerRegistrationSession, address, district string) error {
	if !models.IsValidDistrict(district) {
		return InvalidOptionError{Option: district, PartnerType: sess.Draft.PartnerType}
	}
	sess.Draft.Address = address
	sess.Draft.District = district
	touch(sess)
	return nil
}

// ToggleService flips membership of a service in the draft's selected set.
// The service must come from the option list of the draft's partner type.
func ToggleService(sess *models.PartnerRegistrationSession, name string) error {
	if sess.Draft.PartnerType == "" {
		return ErrPartnerTypeRequired
	}
	if !validService(sess.Draft.PartnerType, name) {
		return InvalidOptionError{Option: name, PartnerType: sess.Draft.PartnerType}
	}
	sess.Draft.Services = toggle(sess.Draft.Services, name)
	touch(sess)
	return nil
}

// ToggleCertification flips membership of a certification in the draft.
func ToggleCertification(sess *models.PartnerRegistrationSession, name string) error {
	if !validCertification(name) {
		return InvalidOptionError{Option: name, PartnerType: sess.Draft.PartnerType}
	}
	sess.Draft.Certifications = toggle(sess.Draft.Certifications, name)
	touch(sess)
	return nil
}

// toggle removes name when present, preserving the order of the rest, and
// appends it otherwise.
func toggle(set []string, name string) []string {
	for i, s := range set {
		if s == name {
			return append(set[:i:i], set[i+1:]...)
		}
	}
	return append(set, name)
}

// SetInsuranceProvider sets the insurance provider name.
func SetInsuranceProvider(sess *models.PartnerRegistrationSession, provider string) {
	sess.Draft.Insurance.Provider = provider
	touch(sess)
}

// SetInsurancePolicyNumber sets the insurance policy number.
func SetInsurancePolicyNumber(sess *models.PartnerRegistrationSession, policyNumber string) {
	sess.Draft.Insurance.PolicyNumber = policyNumber
	touch(sess)
}

// SetInsuranceExpiry sets the insurance expiry date.
func SetInsuranceExpiry(sess *models.PartnerRegistrationSession, expiry time.Time) {
	sess.Draft.Insurance.ExpiryDate = expiry
	touch(sess)
}

// AttachDocument stores a file handle in one of the three document slots,
// replacing any file already held there.
func AttachDocument(sess *models.PartnerRegistrationSession, slot models.DocumentSlot, ref models.FileRef) error {
	if !models.ValidDocumentSlot(slot) {
		return InvalidOptionError{Option: string(slot), PartnerType: sess.Draft.PartnerType}
	}
	if sess.Draft.Documents == nil {
		sess.Draft.Documents = map[models.DocumentSlot]models.FileRef{}
	}
	sess.Draft.Documents[slot] = ref
	touch(sess)
	return nil
}

// AddPhotos appends vehicle photos to the draft. Only vehicle-owner drafts
// carry a photo list.
func AddPhotos(sess *models.PartnerRegistrationSession, refs ...models.FileRef) error {
	if sess.Draft.PartnerType != models.PartnerVehicleOwner {
		return ErrPhotosNotAllowed
	}
	sess.Draft.Photos = append(sess.Draft.Photos, refs...)
	touch(sess)
	return nil
}

// RemovePhoto deletes the photo at index; the photos after it shift down so
// the list stays gapless and ordered.
func RemovePhoto(sess *models.PartnerRegistrationSession, index int) error {
	if index < 0 || index >= len(sess.Draft.Photos) {
		return ErrPhotoIndexOutOfRange
	}
	photos := sess.Draft.Photos
	sess.Draft.Photos = append(photos[:index:index], photos[index+1:]...)
	touch(sess)
	return nil
}
