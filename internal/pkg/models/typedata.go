package models

import (
	"encoding/json"
	"fmt"
)

// UserTypeData is the tagged union of per-type extension blocks. Exactly one
// variant is active on a profile at a time; switching tags replaces the
// whole block.
type UserTypeData interface {
	UserType() UserType
}

// DriverTypeData is the driver extension block
type DriverTypeData struct {
	License *Media `json:"license"`
}

func (DriverTypeData) UserType() UserType { return UserTypeDriver }

// VendorType categorizes what a vendor sells
type VendorType string

const (
	VendorTypeFoods VendorType = "foods"
	VendorTypeItems VendorType = "items"
)

// Valid reports whether v is a known vendor category
func (v VendorType) Valid() bool {
	return v == VendorTypeFoods || v == VendorTypeItems
}

// VendorTypeData is the vendor extension block
type VendorTypeData struct {
	VendorType     VendorType `json:"vendorType"`
	Name           string     `json:"name"`
	Banner         *Media     `json:"banner"`
	Email          *string    `json:"email"`
	ContactNumber  *Phone     `json:"contactNumber"`
	Description    *string    `json:"description"`
	Website        *string    `json:"website"`
	Location       Location   `json:"location"`
	Passport       *Media     `json:"passport"`
	ResidentPermit *Media     `json:"residentPermit"`
}

func (VendorTypeData) UserType() UserType { return UserTypeVendor }

// CustomerTypeData is the customer extension block; every field is optional
type CustomerTypeData struct {
	Passport       *Media `json:"passport"`
	StudentID      *Media `json:"studentId"`
	ResidentPermit *Media `json:"residentPermit"`
}

func (CustomerTypeData) UserType() UserType { return UserTypeCustomer }

// TypeData wraps the active variant so the discriminant tag is inlined into
// the JSON document the way the storage schema expects:
// {"type":"vendor","name":...}.
type TypeData struct {
	Data UserTypeData
}

type typeTag struct {
	Type UserType `json:"type"`
}

// MarshalJSON encodes the active variant with its tag inlined
func (t TypeData) MarshalJSON() ([]byte, error) {
	switch v := t.Data.(type) {
	case DriverTypeData:
		return json.Marshal(struct {
			typeTag
			DriverTypeData
		}{typeTag{UserTypeDriver}, v})
	case VendorTypeData:
		return json.Marshal(struct {
			typeTag
			VendorTypeData
		}{typeTag{UserTypeVendor}, v})
	case CustomerTypeData:
		return json.Marshal(struct {
			typeTag
			CustomerTypeData
		}{typeTag{UserTypeCustomer}, v})
	case nil:
		return []byte("null"), nil
	default:
		return nil, fmt.Errorf("unknown type data variant %T", t.Data)
	}
}

// UnmarshalJSON dispatches on the tag and decodes the matching variant
func (t *TypeData) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		t.Data = nil
		return nil
	}

	var tag typeTag
	if err := json.Unmarshal(data, &tag); err != nil {
		return fmt.Errorf("failed to read type data tag: %w", err)
	}

	switch tag.Type {
	case UserTypeDriver:
		var v DriverTypeData
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		t.Data = v
	case UserTypeVendor:
		var v VendorTypeData
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		t.Data = v
	case UserTypeCustomer:
		var v CustomerTypeData
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		t.Data = v
	default:
		return fmt.Errorf("unknown type data tag %q", tag.Type)
	}
	return nil
}

// Type returns the active discriminant tag, or "" when no variant is set
func (t TypeData) Type() UserType {
	if t.Data == nil {
		return ""
	}
	return t.Data.UserType()
}
