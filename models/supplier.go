package models

// Supplier is the contact and business-identity block embedded in every
// listing. It is owned by the listing copy; two listings naming the same
// business carry independent Supplier values.
type Supplier struct {
	Name          string  `bson:"name" json:"name"`
	Location      string  `bson:"location" json:"location"`
	District      string  `bson:"district" json:"district"`
	Phone         string  `bson:"phone" json:"phone"`
	Rating        float64 `bson:"rating" json:"rating"`                 // 0.0 - 5.0
	CompletedJobs int     `bson:"completedJobs" json:"completedJobs"`   // jobs or orders, depending on listing kind
}

// Districts is the fixed set of the 25 Sri Lankan administrative districts.
// Every district value accepted anywhere in the system must come from this set.
var Districts = []string{
	"Ampara", "Anuradhapura", "Badulla", "Batticaloa", "Colombo",
	"Galle", "Gampaha", "Hambantota", "Jaffna", "Kalutara",
	"Kandy", "Kegalle", "Kilinochchi", "Kurunegala", "Mannar",
	"Matale", "Matara", "Monaragala", "Mullaitivu", "Nuwara Eliya",
	"Polonnaruwa", "Puttalam", "Ratnapura", "Trincomalee", "Vavuniya",
}

// IsValidDistrict reports whether name is one of the 25 districts.
func IsValidDistrict(name string) bool {
	for _, d := range Districts {
		if d == name {
			return true
		}
	}
	return false
}
