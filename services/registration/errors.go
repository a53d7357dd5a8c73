package registration

import (
	"errors"
	"fmt"

	"buildlanka/models"
)

// ErrSessionNotFound indicates the wizard session is absent or expired.
var ErrSessionNotFound = errors.New("registration session not found or expired")

// StepGateError indicates that advancing from a step failed its gate.
type StepGateError struct {
	Step   int
	Reason string
}

func (e StepGateError) Error() string {
	return fmt.Sprintf("cannot advance from step %d: %s", e.Step, e.Reason)
}

// InvalidOptionError indicates a service or certification outside the fixed
// option list for the draft's partner type.
type InvalidOptionError struct {
	Option      string
	PartnerType models.PartnerType
}

func (e InvalidOptionError) Error() string {
	return fmt.Sprintf("option %q is not offered for partner type %q", e.Option, e.PartnerType)
}

// ErrPartnerTypeRequired indicates an operation that needs the partner type
// before it has been selected.
var ErrPartnerTypeRequired = errors.New("partner type has not been selected yet")

// ErrPhotosNotAllowed indicates a photo operation on a non-vehicle-owner draft.
var ErrPhotosNotAllowed = errors.New("photo uploads are only available to vehicle owners")

// ErrPhotoIndexOutOfRange indicates a photo removal with a bad index.
var ErrPhotoIndexOutOfRange = errors.New("photo index out of range")

// ErrDuplicateSubmission indicates a partner with the same business email
// has already been submitted.
var ErrDuplicateSubmission = errors.New("a partner with this business email already exists")
