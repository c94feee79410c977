package models

// BioUpdate carries partial bio fields for a profile update. Email and
// username are accepted on the wire but never merged; they are immutable
// through this path.
type BioUpdate struct {
	Username  *string `json:"username,omitempty"`
	Email     *string `json:"email,omitempty"`
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	Phone     *Phone  `json:"phone,omitempty"`
}

// SettingsUpdate carries partial settings under account.settings
type SettingsUpdate struct {
	Notifications   *bool `json:"notifications,omitempty"`
	DriverAvailable *bool `json:"driverAvailable,omitempty"`
}

// UpdateProfileRequest is the partial update payload for a profile. A nil
// SavedLocations leaves the list untouched; a non-nil one replaces it after
// every entry passes location validation.
type UpdateProfileRequest struct {
	Bio            *BioUpdate      `json:"bio,omitempty"`
	Settings       *SettingsUpdate `json:"settings,omitempty"`
	SavedLocations []Location      `json:"savedLocations,omitempty"`
}

// UpdateTypeRequest carries a candidate extension block. The tag selects
// which fields are read; the rest are ignored.
type UpdateTypeRequest struct {
	Type UserType `json:"type"`

	// driver
	License *Media `json:"license,omitempty"`

	// vendor
	VendorType    VendorType `json:"vendorType,omitempty"`
	Name          string     `json:"name,omitempty"`
	Banner        *Media     `json:"banner,omitempty"`
	Email         *string    `json:"email,omitempty"`
	ContactNumber *Phone     `json:"contactNumber,omitempty"`
	Description   *string    `json:"description,omitempty"`
	Website       *string    `json:"website,omitempty"`
	Location      *Location  `json:"location,omitempty"`

	// customer and vendor
	Passport       *Media `json:"passport,omitempty"`
	ResidentPermit *Media `json:"residentPermit,omitempty"`

	// customer
	StudentID *Media `json:"studentId,omitempty"`
}

// UpdateVendorDataRequest shallow-merges into an existing vendor data
// record; nil fields are left untouched.
type UpdateVendorDataRequest struct {
	Schedule              *VendorSchedule    `json:"schedule,omitempty"`
	Tags                  map[string]float64 `json:"tags,omitempty"`
	AveragePrepTimeInMins *PrepTimeRange     `json:"averagePrepTimeInMins,omitempty"`
}

// SubmitVerificationRequest opens a document review for the caller
type SubmitVerificationRequest struct {
	Role         UserType     `json:"role"`
	DocumentType DocumentType `json:"documentType"`
	DocumentURL  string       `json:"documentUrl"`
	Metadata     Metadata     `json:"metadata,omitempty"`
}

// DecideVerificationRequest closes a review with a terminal status
type DecideVerificationRequest struct {
	Decision VerificationStatus `json:"decision"`
}

// PaginatedProfiles is the list envelope for profiles
type PaginatedProfiles struct {
	Items      []*UserProfile `json:"items"`
	Total      int64          `json:"total"`
	Page       int            `json:"page"`
	Limit      int            `json:"limit"`
	TotalPages int            `json:"totalPages"`
}

// PaginatedVerifications is the list envelope for verification requests
type PaginatedVerifications struct {
	Items      []*Verification `json:"items"`
	Total      int64           `json:"total"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	TotalPages int             `json:"totalPages"`
}
