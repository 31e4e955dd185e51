package entity

import "time"

type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusApproved ApplicationStatus = "approved"
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusApproved, ApplicationStatusRejected:
		return true
	}
	return false
}

// MembershipTierGold is the only tier issued today.
const MembershipTierGold = "GOLD"

type MembershipApplication struct {
	ID                string            `json:"id"`
	FirstName         string            `json:"first_name" validate:"required"`
	LastName          string            `json:"last_name" validate:"required"`
	Email             string            `json:"email" validate:"required,email"`
	Phone             string            `json:"phone" validate:"required"`
	DateOfBirth       string            `json:"date_of_birth" validate:"required"`
	IDNumber          string            `json:"id_number" validate:"required"`
	Address           string            `json:"address,omitempty"`
	EmergencyContact  string            `json:"emergency_contact,omitempty"`
	EmergencyPhone    string            `json:"emergency_phone,omitempty"`
	MedicalConditions string            `json:"medical_conditions,omitempty"`
	PreferredProducts []string          `json:"preferred_products,omitempty"`
	IDDocumentURL     string            `json:"id_document_url,omitempty"`
	ProfilePictureURL string            `json:"profile_picture_url,omitempty"`
	Status            ApplicationStatus `json:"status"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
	ReviewedAt        *time.Time        `json:"reviewed_at,omitempty"`
	ReviewedBy        string            `json:"reviewed_by,omitempty"`
	Notes             string            `json:"notes,omitempty"`

	// Card fields, populated once on approval and immutable afterwards.
	MemberNumber   string     `json:"member_number,omitempty"`
	MembershipTier string     `json:"membership_tier,omitempty"`
	MemberSince    *time.Time `json:"member_since,omitempty"`
	ExpiryDate     *time.Time `json:"expiry_date,omitempty"`
	QRCodeData     string     `json:"qr_code_data,omitempty"`
	CardGenerated  bool       `json:"card_generated"`
}

// CardPayload is the data embedded in the scannable member card code. The
// field names match the storefront's card renderer.
type CardPayload struct {
	MemberID string `json:"memberId"`
	Issued   string `json:"issued"`
	Tier     string `json:"tier"`
}
