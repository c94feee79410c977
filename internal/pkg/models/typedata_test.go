package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeDataMarshal_InlinesTag(t *testing.T) {
	td := TypeData{Data: VendorTypeData{
		VendorType: VendorTypeFoods,
		Name:       "Warung Sedap",
	}}

	data, err := json.Marshal(td)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "vendor", decoded["type"])
	assert.Equal(t, "Warung Sedap", decoded["name"])
	assert.Equal(t, "foods", decoded["vendorType"])
}

func TestTypeDataUnmarshal_DispatchesOnTag(t *testing.T) {
	var td TypeData
	err := json.Unmarshal([]byte(`{"type":"driver","license":{"url":"https://cdn.example.com/l.png","type":"image/png"}}`), &td)
	require.NoError(t, err)

	assert.Equal(t, UserTypeDriver, td.Type())
	driver, ok := td.Data.(DriverTypeData)
	require.True(t, ok)
	require.NotNil(t, driver.License)
	assert.Equal(t, "https://cdn.example.com/l.png", driver.License.URL)
}

func TestTypeDataUnmarshal_UnknownTagRejected(t *testing.T) {
	var td TypeData
	err := json.Unmarshal([]byte(`{"type":"admin"}`), &td)
	assert.Error(t, err)
}

func TestTypeDataRoundTrip_Customer(t *testing.T) {
	original := TypeData{Data: CustomerTypeData{
		StudentID: &Media{URL: "https://cdn.example.com/sid.png", Type: "image/png"},
	}}

	data, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded TypeData
	require.NoError(t, json.Unmarshal(data, &decoded))

	customer, ok := decoded.Data.(CustomerTypeData)
	require.True(t, ok)
	require.NotNil(t, customer.StudentID)
	assert.Equal(t, original.Data, decoded.Data)
}

func TestTypeDataMarshal_NullWhenUnset(t *testing.T) {
	data, err := json.Marshal(TypeData{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))

	var td TypeData
	require.NoError(t, json.Unmarshal([]byte("null"), &td))
	assert.Nil(t, td.Data)
}
