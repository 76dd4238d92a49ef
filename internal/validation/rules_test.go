package validation_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viewlist/viewlist-api/internal/validation"
)

func validCompanyBody() map[string]any {
	return map[string]any{
		"name":    "Acme Traders",
		"gstNo":   "27ABCDE1234F1Z5",
		"email":   "acme@example.com",
		"phone":   "9876543210",
		"address": "12 Industrial Estate",
		"city":    "Mumbai",
		"state":   "Maharashtra",
		"pincode": "400001",
		"status":  "active",
	}
}

func TestCompanyCreate_Valid(t *testing.T) {
	out, ferr := validation.CompanyCreate.Validate(validCompanyBody())
	require.Nil(t, ferr)
	assert.Equal(t, "Acme Traders", out["name"])
}

func TestCompanyCreate_FirstErrorWins(t *testing.T) {
	// Both name and gstNo are invalid; only name (declared first) is reported.
	body := validCompanyBody()
	body["name"] = "A"
	body["gstNo"] = "bad"

	_, ferr := validation.CompanyCreate.Validate(body)
	require.NotNil(t, ferr)
	assert.Equal(t, "name", ferr.Field)
	assert.Equal(t, "Company name must be at least 2 characters long", ferr.Message)
	assert.Equal(t, "A", ferr.Value)
}

func TestCompanyCreate_GSTPattern(t *testing.T) {
	body := validCompanyBody()
	body["gstNo"] = "27ABCDE1234F1X5" // 13th char must be Z

	_, ferr := validation.CompanyCreate.Validate(body)
	require.NotNil(t, ferr)
	assert.Equal(t, "gstNo", ferr.Field)
	assert.Equal(t, "GST number must be in valid format (e.g., 27ABCDE1234F1Z5)", ferr.Message)
}

func TestCompanyCreate_InvalidPincode(t *testing.T) {
	body := validCompanyBody()
	body["pincode"] = "040001" // leading zero not allowed

	_, ferr := validation.CompanyCreate.Validate(body)
	require.NotNil(t, ferr)
	assert.Equal(t, "pincode", ferr.Field)
	assert.Equal(t, "Pincode must be a valid 6-digit Indian postal code", ferr.Message)
}

func TestCompanyCreate_InvalidStatus(t *testing.T) {
	body := validCompanyBody()
	body["status"] = "archived"

	_, ferr := validation.CompanyCreate.Validate(body)
	require.NotNil(t, ferr)
	assert.Equal(t, "status", ferr.Field)
	assert.Equal(t, "Status must be either active or inactive", ferr.Message)
}

func TestCompanyCreate_OptionalEmailNullAndEmpty(t *testing.T) {
	// null and "" both count as absent for optional fields.
	for _, v := range []any{nil, ""} {
		body := validCompanyBody()
		body["email"] = v
		out, ferr := validation.CompanyCreate.Validate(body)
		require.Nil(t, ferr)
		_, present := out["email"]
		assert.False(t, present)
	}
}

func TestCompanyCreate_RequiredMissing(t *testing.T) {
	body := validCompanyBody()
	delete(body, "name")

	_, ferr := validation.CompanyCreate.Validate(body)
	require.NotNil(t, ferr)
	assert.Equal(t, "name", ferr.Field)
	assert.Equal(t, "Company name is required", ferr.Message)
}

func TestCompanyCreate_NonStringValue(t *testing.T) {
	body := validCompanyBody()
	body["name"] = 42.0

	_, ferr := validation.CompanyCreate.Validate(body)
	require.NotNil(t, ferr)
	assert.Equal(t, "name", ferr.Field)
}

func TestCompanyCreate_UnknownFieldsStripped(t *testing.T) {
	body := validCompanyBody()
	body["rogue"] = "value"

	out, ferr := validation.CompanyCreate.Validate(body)
	require.Nil(t, ferr)
	_, present := out["rogue"]
	assert.False(t, present)
}

func TestLengthBounds_CountCharactersNotBytes(t *testing.T) {
	// A single Devanagari character is 3 bytes but 1 character; it must
	// fail the 2-character minimum.
	body := validCompanyBody()
	body["name"] = "न"

	_, ferr := validation.CompanyCreate.Validate(body)
	require.NotNil(t, ferr)
	assert.Equal(t, "name", ferr.Field)
	assert.Equal(t, "Company name must be at least 2 characters long", ferr.Message)

	// 100 multibyte characters (300 bytes) sit exactly on the maximum.
	body = validCompanyBody()
	body["name"] = strings.Repeat("न", 100)

	_, ferr = validation.CompanyCreate.Validate(body)
	assert.Nil(t, ferr)

	body["name"] = strings.Repeat("न", 101)
	_, ferr = validation.CompanyCreate.Validate(body)
	require.NotNil(t, ferr)
	assert.Equal(t, "Company name must not exceed 100 characters", ferr.Message)
}

func TestCompanyUpdate_EmptyBodyRejected(t *testing.T) {
	_, ferr := validation.CompanyUpdate.Validate(map[string]any{})
	require.NotNil(t, ferr)
	assert.Equal(t, "At least one field must be provided for update", ferr.Message)
}

func TestItemCreate_HSNTooShort(t *testing.T) {
	body := map[string]any{
		"name":    "Steel Rod",
		"hsnCode": "7",
		"status":  "active",
	}
	_, ferr := validation.ItemCreate.Validate(body)
	require.NotNil(t, ferr)
	assert.Equal(t, "hsnCode", ferr.Field)
	assert.Equal(t, "HSN code must be at least 2 characters long", ferr.Message)
}

func TestSalesCreate_UnitEnum(t *testing.T) {
	body := map[string]any{
		"companyId": "00000000-0000-0000-0000-000000000001",
		"itemId":    "00000000-0000-0000-0000-000000000002",
		"unit":      "TONNE",
	}
	_, ferr := validation.SalesCreate.Validate(body)
	require.NotNil(t, ferr)
	assert.Equal(t, "unit", ferr.Field)
	assert.Contains(t, ferr.Message, "Unit must be one of")
}

func TestSalesCreate_EmptyCompanyID(t *testing.T) {
	body := map[string]any{
		"companyId": "",
		"itemId":    "00000000-0000-0000-0000-000000000002",
		"unit":      "PCS",
	}
	_, ferr := validation.SalesCreate.Validate(body)
	require.NotNil(t, ferr)
	assert.Equal(t, "companyId", ferr.Field)
	assert.Equal(t, "Company ID cannot be empty", ferr.Message)
}

func TestUserRegister_ShortPassword(t *testing.T) {
	body := map[string]any{
		"name":     "Asha",
		"email":    "asha@example.com",
		"password": "12345",
	}
	_, ferr := validation.UserRegister.Validate(body)
	require.NotNil(t, ferr)
	assert.Equal(t, "password", ferr.Field)
	assert.Equal(t, "Password must be at least 6 characters long", ferr.Message)
}

func TestUserLogin_InvalidEmail(t *testing.T) {
	body := map[string]any{
		"email":    "not-an-email",
		"password": "secret1",
	}
	_, ferr := validation.UserLogin.Validate(body)
	require.NotNil(t, ferr)
	assert.Equal(t, "email", ferr.Field)
	assert.Equal(t, "Please provide a valid email address", ferr.Message)
}

func TestUserChangePassword_MissingCurrent(t *testing.T) {
	body := map[string]any{
		"newPassword": "secret1",
	}
	_, ferr := validation.UserChangePassword.Validate(body)
	require.NotNil(t, ferr)
	assert.Equal(t, "currentPassword", ferr.Field)
	assert.Equal(t, "Current password is required", ferr.Message)
}
