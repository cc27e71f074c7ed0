package patient

import (
	"time"

	"github.com/google/uuid"
)

// Patient maps to the patients table. It is the root of the clinical record:
// every other entity references a patient and has no independent existence.
type Patient struct {
	ID                    uuid.UUID `db:"id" json:"id"`
	FirstName             string    `db:"first_name" json:"first_name"`
	LastName              string    `db:"last_name" json:"last_name"`
	DateOfBirth           time.Time `db:"date_of_birth" json:"date_of_birth"`
	Gender                string    `db:"gender" json:"gender"`
	Phone                 *string   `db:"phone" json:"phone,omitempty"`
	Email                 *string   `db:"email" json:"email,omitempty"`
	Address               *string   `db:"address" json:"address,omitempty"`
	EmergencyContactName  *string   `db:"emergency_contact_name" json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone *string   `db:"emergency_contact_phone" json:"emergency_contact_phone,omitempty"`
	BloodType             *string   `db:"blood_type" json:"blood_type,omitempty"`
	Allergies             *string   `db:"allergies" json:"allergies,omitempty"`
	CreatedAt             time.Time `db:"created_at" json:"created_at"`
	UpdatedAt             time.Time `db:"updated_at" json:"updated_at"`
}

func (p *Patient) FullName() string {
	return p.FirstName + " " + p.LastName
}

// NewPatient is the insert shape. The store assigns the id and timestamps;
// keeping this type separate from Patient prevents reading an id before the
// row exists.
type NewPatient struct {
	FirstName             string
	LastName              string
	DateOfBirth           time.Time
	Gender                string
	Phone                 *string
	Email                 *string
	Address               *string
	EmergencyContactName  *string
	EmergencyContactPhone *string
	BloodType             *string
	Allergies             *string
}
