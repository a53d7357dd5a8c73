package models

import "time"

// PartnerType distinguishes the two kinds of partner business.
type PartnerType string

const (
	PartnerVehicleOwner     PartnerType = "vehicle_owner"
	PartnerMaterialSupplier PartnerType = "material_supplier"
)

// Wizard steps, in order. StepTypeSelect is the entry step; there is no
// explicit "closed" step — a closed wizard is simply an absent session.
const (
	StepTypeSelect       = 1
	StepBusinessInfo     = 2
	StepLocationServices = 3
	StepDocuments        = 4

	StepMin = StepTypeSelect
	StepMax = StepDocuments
)

// BusinessInfo is the step-2 block of the registration draft.
type BusinessInfo struct {
	BusinessName    string `bson:"businessName" json:"businessName" binding:"required"`
	OwnerName       string `bson:"ownerName" json:"ownerName" binding:"required"`
	Email           string `bson:"email" json:"email" binding:"required,email"`
	Phone           string `bson:"phone" json:"phone" binding:"required"`
	BRNumber        string `bson:"brNumber" json:"brNumber" binding:"required"`
	YearsInBusiness int    `bson:"yearsInBusiness" json:"yearsInBusiness" binding:"min=0"`
	Description     string `bson:"description" json:"description" binding:"required"`
}

// InsuranceDetails is the nested insurance record edited at step 3.
type InsuranceDetails struct {
	Provider     string    `bson:"provider" json:"provider" binding:"required"`
	PolicyNumber string    `bson:"policyNumber" json:"policyNumber" binding:"required"`
	ExpiryDate   time.Time `bson:"expiryDate" json:"expiryDate" binding:"required"`
}

// DocumentSlot names the three single-file upload slots of step 4.
type DocumentSlot string

const (
	SlotBusinessLicense DocumentSlot = "businessLicense"
	SlotInsurance       DocumentSlot = "insurance"
	SlotBRCertificate   DocumentSlot = "brCertificate"
)

// ValidDocumentSlot reports whether slot is one of the three upload slots.
func ValidDocumentSlot(slot DocumentSlot) bool {
	return slot == SlotBusinessLicense || slot == SlotInsurance || slot == SlotBRCertificate
}

// FileRef is an opaque handle to an uploaded file. The bytes live in object
// storage; the draft only carries the reference and metadata.
type FileRef struct {
	PublicID    string `bson:"publicId" json:"publicId"`
	FileName    string `bson:"fileName" json:"fileName"`
	ContentType string `bson:"contentType" json:"contentType,omitempty"`
	Size        int64  `bson:"size" json:"size,omitempty"`
	URL         string `bson:"url" json:"url,omitempty"`
}

// PartnerDraft is the in-progress registration data, mutated step by step
// while the wizard is open and discarded on submit or cancel.
type PartnerDraft struct {
	PartnerType    PartnerType              `bson:"partnerType" json:"partnerType,omitempty"`
	Business       BusinessInfo             `bson:"business" json:"business"`
	Address        string                   `bson:"address" json:"address"`
	District       string                   `bson:"district" json:"district"`
	Services       []string                 `bson:"services" json:"services"`
	Certifications []string                 `bson:"certifications" json:"certifications"`
	Insurance      InsuranceDetails         `bson:"insurance" json:"insurance"`
	Documents      map[DocumentSlot]FileRef `bson:"documents" json:"documents"`
	Photos         []FileRef                `bson:"photos" json:"photos"`
}

// PartnerRegistrationSession holds all transient state of one open wizard.
type PartnerRegistrationSession struct {
	SessionID     string       `json:"sessionId"`
	Step          int          `json:"step"`
	Draft         PartnerDraft `json:"draft"`
	CreatedAt     time.Time    `json:"createdAt"`
	LastUpdatedAt time.Time    `json:"lastUpdatedAt"`
}

// Partner is the immutable payload assembled from a completed draft.
// Submissions start out pending until an operator reviews them.
type Partner struct {
	ID             string                   `bson:"id" json:"id"`
	Type           PartnerType              `bson:"type" json:"type"`
	Business       BusinessInfo             `bson:"business" json:"business"`
	Address        string                   `bson:"address" json:"address"`
	District       string                   `bson:"district" json:"district"`
	Services       []string                 `bson:"services" json:"services"`
	Certifications []string                 `bson:"certifications" json:"certifications"`
	Insurance      InsuranceDetails         `bson:"insurance" json:"insurance"`
	Documents      map[DocumentSlot]FileRef `bson:"documents" json:"documents"`
	Photos         []FileRef                `bson:"photos" json:"photos,omitempty"`
	Status         string                   `bson:"status" json:"status"`
	CreatedAt      time.Time                `bson:"createdAt" json:"createdAt"`
}

// Partner review statuses.
const (
	PartnerStatusPending  = "pending"
	PartnerStatusApproved = "approved"
	PartnerStatusRejected = "rejected"
)
