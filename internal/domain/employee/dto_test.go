package employee

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-portal-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestUpdateProfileRequest_Apply(t *testing.T) {
	original := Employee{
		ID:         1,
		Name:       "Sarah Johnson",
		Email:      "sarah.johnson@company.com",
		Phone:      "+1 (555) 123-4567",
		Department: "Engineering",
		Address:    strPtr("12 Elm St"),
	}

	req := UpdateProfileRequest{
		Phone:                strPtr("+1 (555) 000-1111"),
		EmergencyContactName: strPtr("Michael Johnson"),
	}
	got := original
	req.Apply(&got)

	assert.Equal(t, "+1 (555) 000-1111", got.Phone)
	require.NotNil(t, got.EmergencyContactName)
	assert.Equal(t, "Michael Johnson", *got.EmergencyContactName)
	assert.Equal(t, original.Name, got.Name)
	assert.Equal(t, original.Email, got.Email)
	assert.Equal(t, original.Address, got.Address)
	assert.Equal(t, "Engineering", got.Department)

	// The merged record must not alias the request.
	*req.EmergencyContactName = "changed"
	assert.Equal(t, "Michael Johnson", *got.EmergencyContactName)
}

func TestUpdateProfileRequest_ApplyClearsWithEmptyString(t *testing.T) {
	e := Employee{Address: strPtr("12 Elm St")}
	UpdateProfileRequest{Address: strPtr("")}.Apply(&e)
	require.NotNil(t, e.Address)
	assert.Equal(t, "", *e.Address)
}

func TestUpdateProfileRequest_Validate(t *testing.T) {
	assert.NoError(t, (&UpdateProfileRequest{}).Validate())
	assert.True(t, UpdateProfileRequest{}.IsEmpty())

	ok := UpdateProfileRequest{Name: strPtr("Sam"), Email: strPtr(" sam@example.com "), Phone: strPtr("555-123-4567")}
	assert.NoError(t, ok.Validate())
	assert.False(t, ok.IsEmpty())

	bad := UpdateProfileRequest{
		Name:                  strPtr("  "),
		Email:                 strPtr("not-an-email"),
		Phone:                 strPtr("12"),
		EmergencyContactPhone: strPtr("abc"),
	}
	err := bad.Validate()
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	m := verrs.ToMap()
	assert.Contains(t, m, "name")
	assert.Contains(t, m, "email")
	assert.Contains(t, m, "phone")
	assert.Contains(t, m, "emergency_contact_phone")
}

func TestNewEmployeeResponse(t *testing.T) {
	e := Employee{
		ID:                           3,
		Name:                         "Ana",
		JoinDate:                     time.Date(2021, 6, 14, 0, 0, 0, 0, time.UTC),
		EmergencyContactRelationship: strPtr("Sister"),
	}
	got := NewEmployeeResponse(e)
	assert.Equal(t, "2021-06-14", got.JoinDate)
	assert.Equal(t, strPtr("Sister"), got.EmergencyContact.Relationship)
}
