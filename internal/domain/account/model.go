// Package account manages the people using the compliance program: patients
// logging their own care, caregivers linked to a patient, and consultants
// reviewing progress.
package account

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Role identifies how an account participates in the program.
type Role string

const (
	RolePatient    Role = "patient"
	RoleCaregiver  Role = "caregiver"
	RoleConsultant Role = "consultant"
)

// ParseRole validates a role tag. Unknown tags are rejected rather than
// defaulted, so a typo in a signup request cannot silently grant the wrong
// access.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RolePatient, RoleCaregiver, RoleConsultant:
		return Role(s), nil
	default:
		return "", fmt.Errorf("invalid role: %q", s)
	}
}

// Account is one registered user.
type Account struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Password string    `json:"-"`
	Name     string    `json:"name"`
	Role     Role      `json:"role"`

	// PatientCode is the shareable SC-NNNN code identifying a patient.
	// Set only for patient accounts.
	PatientCode *string `json:"patient_code,omitempty"`

	// LinkedPatientCode ties a caregiver to the patient they assist.
	// Set only for caregiver accounts.
	LinkedPatientCode *string `json:"linked_patient_code,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// SignupRequest is the payload for account registration.
type SignupRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	Name        string `json:"name"`
	Role        string `json:"role"`
	PatientCode string `json:"patient_code,omitempty"`
}

// LoginRequest is the payload for authentication.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
