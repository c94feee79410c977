package models

import (
	"time"
)

// VerificationStatus is the state of a document review request
type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "Pending"
	VerificationApproved VerificationStatus = "Approved"
	VerificationRejected VerificationStatus = "Rejected"
)

// Terminal reports whether s admits no further transitions
func (s VerificationStatus) Terminal() bool {
	return s == VerificationApproved || s == VerificationRejected
}

// DocumentType enumerates the reviewable document kinds
type DocumentType string

const (
	DocInternationalPassport DocumentType = "International Passport"
	DocResidentPermit        DocumentType = "Resident Permit"
	DocDriversLicense        DocumentType = "Driver's License"
	DocStudentID             DocumentType = "Student ID"
)

// Valid reports whether d is a known document type
func (d DocumentType) Valid() bool {
	switch d {
	case DocInternationalPassport, DocResidentPermit, DocDriversLicense, DocStudentID:
		return true
	}
	return false
}

// Verification is a document review request owned by the verification
// store. UserID is a non-owning back-reference to the profile it verifies.
type Verification struct {
	ID           string             `json:"id" db:"id"`
	UserID       string             `json:"userId" db:"user_id"`
	Role         UserType           `json:"role" db:"role"`
	DocumentType DocumentType       `json:"documentType" db:"document_type"`
	DocumentURL  string             `json:"documentUrl" db:"document_url"`
	Status       VerificationStatus `json:"status" db:"status"`
	Metadata     Metadata           `json:"metadata,omitempty" db:"metadata"`
	CreatedAt    time.Time          `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time          `json:"updatedAt" db:"updated_at"`
}
