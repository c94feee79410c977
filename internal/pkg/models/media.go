package models

// Media is a stored media reference returned by the media storage service
type Media struct {
	URL  string `json:"url"`
	Type string `json:"type"`
	Size int64  `json:"size,omitempty"`
}

// Phone is an international phone number split into code and number
type Phone struct {
	Code   string `json:"code"`
	Number string `json:"number"`
}

// Location is a GeoJSON-style point with address fields. Coordinates are
// [longitude, latitude].
type Location struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
	Address     string    `json:"address"`
	City        string    `json:"city"`
	State       string    `json:"state"`
	Country     string    `json:"country"`
}

// MediaSlot names a destination field for an uploaded media reference
type MediaSlot string

const (
	SlotProfilePhoto   MediaSlot = "PROFILE_PHOTO"
	SlotLicense        MediaSlot = "LICENSE"
	SlotPassport       MediaSlot = "PASSPORT"
	SlotStudentID      MediaSlot = "STUDENT_ID"
	SlotResidentPermit MediaSlot = "RESIDENT_PERMIT"
	SlotVendorBanner   MediaSlot = "VENDOR_BANNER"
)

// Valid reports whether s names a known media slot
func (s MediaSlot) Valid() bool {
	switch s {
	case SlotProfilePhoto, SlotLicense, SlotPassport, SlotStudentID, SlotResidentPermit, SlotVendorBanner:
		return true
	}
	return false
}

// MediaUpload carries an inbound file before it reaches the storage service
type MediaUpload struct {
	FileName    string
	ContentType string
	Data        []byte
}
