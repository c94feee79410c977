package models

// BusinessDay keys a vendor's weekly schedule
type BusinessDay string

const (
	DaySun BusinessDay = "sun"
	DayMon BusinessDay = "mon"
	DayTue BusinessDay = "tue"
	DayWed BusinessDay = "wed"
	DayThu BusinessDay = "thu"
	DayFri BusinessDay = "fri"
	DaySat BusinessDay = "sat"
)

// TimeOfDay is a wall-clock time inside a schedule entry
type TimeOfDay struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

// TimeRange is one open interval of a business day; nil entries in a
// schedule mean closed that day
type TimeRange struct {
	From TimeOfDay `json:"from"`
	To   TimeOfDay `json:"to"`
}

// VendorSchedule is a vendor's weekly opening schedule
type VendorSchedule struct {
	Timezone string                     `json:"timezone"`
	Schedule map[BusinessDay]*TimeRange `json:"schedule"`
}

// PrepTimeRange bounds a vendor's average preparation time in minutes
type PrepTimeRange struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// VendorData is the side-record that exists exactly when the profile's
// active tag is vendor.
type VendorData struct {
	Schedule              *VendorSchedule    `json:"schedule"`
	Tags                  map[string]float64 `json:"tags"`
	AveragePrepTimeInMins *PrepTimeRange     `json:"averagePrepTimeInMins"`
}

// NewVendorData returns the empty default written when a profile switches
// into the vendor tag: null schedule, empty tag map, null prep-time range.
func NewVendorData() *VendorData {
	return &VendorData{
		Tags: map[string]float64{},
	}
}
