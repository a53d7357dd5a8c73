package registration

import (
	"fmt"

	"buildlanka/models"

	"github.com/go-playground/validator/v10"
)

// validate checks struct fields against the same `binding` tags the HTTP
// layer binds with, so step validation and request binding agree.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	return v
}

// validateStep is the per-step gate consulted by Next. The original flow
// leaned on form-level required attributes for steps 2 and 3; here every
// step carries an explicit programmatic check.
func validateStep(step int, draft *models.PartnerDraft) error {
	switch step {
	case models.StepTypeSelect:
		if draft.PartnerType == "" {
			return StepGateError{Step: step, Reason: "partner type must be selected"}
		}
	case models.StepBusinessInfo:
		if err := validate.Struct(draft.Business); err != nil {
			return StepGateError{Step: step, Reason: describeValidation(err)}
		}
	case models.StepLocationServices:
		if draft.Address == "" {
			return StepGateError{Step: step, Reason: "address is required"}
		}
		if !models.IsValidDistrict(draft.District) {
			return StepGateError{Step: step, Reason: "district must be selected"}
		}
		if len(draft.Services) == 0 {
			return StepGateError{Step: step, Reason: "at least one service must be selected"}
		}
		if err := validate.Struct(draft.Insurance); err != nil {
			return StepGateError{Step: step, Reason: describeValidation(err)}
		}
	}
	return nil
}

// ValidateDraft runs the full required-field check applied at submit time.
// Documents and photos stay optional; everything gathered in steps 1-3 must
// be present and, for services, consistent with the current partner type.
func ValidateDraft(draft *models.PartnerDraft) error {
	for step := models.StepMin; step < models.StepMax; step++ {
		if err := validateStep(step, draft); err != nil {
			return err
		}
	}
	// Catches services left over from a partner-type switch.
	for _, s := range draft.Services {
		if !validService(draft.PartnerType, s) {
			return InvalidOptionError{Option: s, PartnerType: draft.PartnerType}
		}
	}
	return nil
}

// describeValidation flattens a validator error into a short reason string.
func describeValidation(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return err.Error()
	}
	fe := verrs[0]
	return fmt.Sprintf("field %s failed %q validation", fe.Field(), fe.Tag())
}

// ValidDistrict is the validator rule backing the `district` binding tag
// used by the HTTP layer.
func ValidDistrict(fl validator.FieldLevel) bool {
	return models.IsValidDistrict(fl.Field().String())
}
