package models

import (
	"time"

	"github.com/google/uuid"
)

// Role is the fixed set of account roles. There is no role table: every
// authorization decision in the system reduces to landlord vs tenant.
type Role string

const (
	RoleTenant   Role = "tenant"
	RoleLandlord Role = "landlord"
)

// Valid reports whether the role is one of the two supported roles.
func (r Role) Valid() bool {
	return r == RoleTenant || r == RoleLandlord
}

// AuthProvider identifies how the account authenticates.
const (
	AuthProviderLocal  = "local"
	AuthProviderGoogle = "google"
)

type User struct {
	ID               uuid.UUID `json:"id" db:"id"`
	Name             string    `json:"name" db:"name"`
	Email            string    `json:"email" db:"email"`
	PasswordHash     string    `json:"-" db:"password_hash"`
	Role             Role      `json:"role" db:"role"`
	Phone            *string   `json:"phone" db:"phone"`
	ProfilePicture   *string   `json:"profile_picture" db:"profile_picture"`
	Occupation       *string   `json:"occupation" db:"occupation"`
	NextOfKin        *string   `json:"next_of_kin" db:"next_of_kin"`
	EmergencyContact *string   `json:"emergency_contact" db:"emergency_contact"`
	EmailVerified    bool      `json:"email_verified" db:"email_verified"`
	IdentityVerified bool      `json:"identity_verified" db:"identity_verified"`
	AuthProvider     string    `json:"auth_provider" db:"auth_provider"`
	SubaccountCode   *string   `json:"subaccount_code,omitempty" db:"subaccount_code"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time `json:"updated_at" db:"updated_at"`
}

// UserPatch carries profile fields for partial updates. A nil field means
// "leave unchanged"; a pointer to the empty string clears the field.
type UserPatch struct {
	Name             *string `json:"name"`
	Phone            *string `json:"phone"`
	ProfilePicture   *string `json:"profile_picture"`
	Occupation       *string `json:"occupation"`
	NextOfKin        *string `json:"next_of_kin"`
	EmergencyContact *string `json:"emergency_contact"`
}

// Apply merges the patch into u.
func (patch *UserPatch) Apply(u *User) {
	if patch.Name != nil {
		u.Name = *patch.Name
	}
	if patch.Phone != nil {
		u.Phone = patch.Phone
	}
	if patch.ProfilePicture != nil {
		u.ProfilePicture = patch.ProfilePicture
	}
	if patch.Occupation != nil {
		u.Occupation = patch.Occupation
	}
	if patch.NextOfKin != nil {
		u.NextOfKin = patch.NextOfKin
	}
	if patch.EmergencyContact != nil {
		u.EmergencyContact = patch.EmergencyContact
	}
}
