package models

import (
	"time"
)

// UserType discriminates which extension block of a profile is active
type UserType string

const (
	UserTypeDriver   UserType = "driver"
	UserTypeVendor   UserType = "vendor"
	UserTypeCustomer UserType = "customer"
)

// Valid reports whether t is one of the known user types
func (t UserType) Valid() bool {
	switch t {
	case UserTypeDriver, UserTypeVendor, UserTypeCustomer:
		return true
	}
	return false
}

// RankingPeriod keys the fixed set of ranking counters on an account
type RankingPeriod string

const (
	RankingDaily   RankingPeriod = "daily"
	RankingWeekly  RankingPeriod = "weekly"
	RankingMonthly RankingPeriod = "monthly"
	RankingOverall RankingPeriod = "overall"
)

// RankingPeriods lists every ranking period in a stable order
var RankingPeriods = []RankingPeriod{RankingDaily, RankingWeekly, RankingMonthly, RankingOverall}

// Name holds the split display name parts of a profile
type Name struct {
	First string `json:"first"`
	Last  string `json:"last"`
	Full  string `json:"full"`
}

// Bio holds the identity-adjacent fields of a profile. Email and username
// are immutable through the profile update path.
type Bio struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Name     Name   `json:"name"`
	Photo    *Media `json:"photo"`
	Phone    *Phone `json:"phone"`
}

// Dates tracks creation and soft deletion as unix millisecond stamps
type Dates struct {
	CreatedAt int64  `json:"createdAt"`
	DeletedAt *int64 `json:"deletedAt"`
}

// Status holds connection references and the last mutation stamp
type Status struct {
	Connections   []string `json:"connections"`
	LastUpdatedAt int64    `json:"lastUpdatedAt"`
}

// Ranking is a single period counter on an account
type Ranking struct {
	Value         float64 `json:"value"`
	LastUpdatedAt int64   `json:"lastUpdatedAt"`
}

// Ratings aggregates rating stats for a profile
type Ratings struct {
	Total   float64 `json:"total"`
	Count   int64   `json:"count"`
	Average float64 `json:"average,omitempty"`
}

// Application is the at-most-one pending application on an account
type Application struct {
	Accepted bool   `json:"accepted"`
	Message  string `json:"message"`
}

// TripStats counts trips and outstanding debt against one counterparty
type TripStats struct {
	Trips int     `json:"trips"`
	Debt  float64 `json:"debt"`
}

// Settings is the per-account settings sub-record
type Settings struct {
	Notifications   bool `json:"notifications"`
	DriverAvailable bool `json:"driverAvailable"`
}

// Account groups the counters and preferences attached to a profile
type Account struct {
	Rankings       map[RankingPeriod]Ranking `json:"rankings"`
	Meta           map[string]float64        `json:"meta"`
	Ratings        Ratings                   `json:"ratings"`
	Application    *Application              `json:"application"`
	Trips          map[string]TripStats      `json:"trips"`
	Location       *Location                 `json:"location"`
	SavedLocations []Location                `json:"savedLocations"`
	Settings       Settings                  `json:"settings"`
}

// Verification status values denormalized onto a profile
const (
	ProfileUnverified = "Unverified"
)

// UserProfile is the canonical per-user record. The identity key is the
// externally supplied auth identity and is never reassigned. The nested
// blocks persist as jsonb columns.
type UserProfile struct {
	ID                 string      `json:"id" db:"id"`
	Bio                Bio         `json:"bio" db:"bio"`
	Dates              Dates       `json:"dates" db:"dates"`
	Status             Status      `json:"status" db:"status"`
	Account            Account     `json:"account" db:"account"`
	TypeData           TypeData    `json:"typeData" db:"type_data"`
	VendorData         *VendorData `json:"vendorData" db:"vendor_data"`
	VerificationStatus string      `json:"verificationStatus" db:"verification_status"`
}

// NewUserProfile builds the default profile for an identity: empty bio,
// current-time dates, zero-valued account and a customer extension block
// with all fields null.
func NewUserProfile(id string, now time.Time) *UserProfile {
	ts := now.UnixMilli()

	rankings := make(map[RankingPeriod]Ranking, len(RankingPeriods))
	for _, period := range RankingPeriods {
		rankings[period] = Ranking{Value: 0, LastUpdatedAt: ts}
	}

	return &UserProfile{
		ID: id,
		Dates: Dates{
			CreatedAt: ts,
		},
		Status: Status{
			Connections:   []string{},
			LastUpdatedAt: ts,
		},
		Account: Account{
			Rankings:       rankings,
			Meta:           map[string]float64{},
			Trips:          map[string]TripStats{},
			SavedLocations: []Location{},
		},
		TypeData:           TypeData{Data: CustomerTypeData{}},
		VerificationStatus: ProfileUnverified,
	}
}

// IsDeleted reports whether the profile has been soft deleted
func (p *UserProfile) IsDeleted() bool {
	return p.Dates.DeletedAt != nil
}

// Touch updates the status block's last mutation stamp
func (p *UserProfile) Touch(now time.Time) {
	p.Status.LastUpdatedAt = now.UnixMilli()
}
