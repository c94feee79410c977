package constants

// NATS Subjects
const (
	// Profile events
	SubjectProfileUpdated     = "profile.updated"
	SubjectProfileTypeChanged = "profile.type_changed"

	// Verification events
	SubjectVerificationSubmitted = "verification.submitted"
	SubjectVerificationDecided   = "verification.decided"
)
