package registration

import "buildlanka/models"

// vehicleOwnerServices and materialSupplierServices are the two disjoint
// fixed option lists a partner picks services from; which list applies is
// decided by the draft's partner type.
var vehicleOwnerServices = []string{
	"Excavation",
	"Transport & Haulage",
	"Concrete Pumping",
	"Crane Lifting",
	"Land Clearing",
	"Road Construction",
}

var materialSupplierServices = []string{
	"Sand Supply",
	"Metal & Aggregate",
	"Bricks & Blocks",
	"Cement Supply",
	"Timber Supply",
	"Soil & Gravel",
}

// certificationOptions is the shared, optional certification list.
var certificationOptions = []string{
	"CIDA Registration",
	"ISO 9001",
	"Vehicle Insurance Certificate",
	"Environmental Clearance",
	"Mining & Excavation License",
}

// ServiceOptions returns the selectable services for a partner type. The
// result is a copy; callers may not mutate the option lists.
func ServiceOptions(t models.PartnerType) []string {
	switch t {
	case models.PartnerVehicleOwner:
		return append([]string(nil), vehicleOwnerServices...)
	case models.PartnerMaterialSupplier:
		return append([]string(nil), materialSupplierServices...)
	default:
		return nil
	}
}

// CertificationOptions returns the selectable certifications.
func CertificationOptions() []string {
	return append([]string(nil), certificationOptions...)
}

func validService(t models.PartnerType, name string) bool {
	for _, s := range ServiceOptions(t) {
		if s == name {
			return true
		}
	}
	return false
}

func validCertification(name string) bool {
	for _, c := range certificationOptions {
		if c == name {
			return true
		}
	}
	return false
}
