package employee

import (
	"strings"

	"github.com/cmlabs-hris/hris-portal-go/internal/pkg/validator"
)

// UpdateProfileRequest is a partial profile update. A nil field is left
// unchanged; a non-nil field overwrites the stored value.
type UpdateProfileRequest struct {
	Name                         *string `json:"name,omitempty"`
	Email                        *string `json:"email,omitempty"`
	Phone                        *string `json:"phone,omitempty"`
	Address                      *string `json:"address,omitempty"`
	EmergencyContactName         *string `json:"emergency_contact_name,omitempty"`
	EmergencyContactRelationship *string `json:"emergency_contact_relationship,omitempty"`
	EmergencyContactPhone        *string `json:"emergency_contact_phone,omitempty"`
}

func (r *UpdateProfileRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil {
		if validator.IsEmpty(*r.Name) {
			errs = append(errs, validator.ValidationError{
				Field:   "name",
				Message: "name must not be empty",
			})
		}
		if len(*r.Name) > 255 {
			errs = append(errs, validator.ValidationError{
				Field:   "name",
				Message: "name must not exceed 255 characters",
			})
		}
	}

	if r.Email != nil && !validator.IsValidEmail(strings.TrimSpace(*r.Email)) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	if r.Phone != nil && !validator.IsValidPhoneNumber(*r.Phone) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone",
			Message: "phone must contain 7-15 digits",
		})
	}

	if r.EmergencyContactPhone != nil && *r.EmergencyContactPhone != "" &&
		!validator.IsValidPhoneNumber(*r.EmergencyContactPhone) {
		errs = append(errs, validator.ValidationError{
			Field:   "emergency_contact_phone",
			Message: "emergency_contact_phone must contain 7-15 digits",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// IsEmpty reports whether the request carries no field.
func (r UpdateProfileRequest) IsEmpty() bool {
	return r.Name == nil && r.Email == nil && r.Phone == nil && r.Address == nil &&
		r.EmergencyContactName == nil && r.EmergencyContactRelationship == nil &&
		r.EmergencyContactPhone == nil
}

// Apply merges the present fields into e.
func (r UpdateProfileRequest) Apply(e *Employee) {
	if r.Name != nil {
		e.Name = strings.TrimSpace(*r.Name)
	}
	if r.Email != nil {
		e.Email = strings.TrimSpace(*r.Email)
	}
	if r.Phone != nil {
		e.Phone = *r.Phone
	}
	if r.Address != nil {
		e.Address = copyString(r.Address)
	}
	if r.EmergencyContactName != nil {
		e.EmergencyContactName = copyString(r.EmergencyContactName)
	}
	if r.EmergencyContactRelationship != nil {
		e.EmergencyContactRelationship = copyString(r.EmergencyContactRelationship)
	}
	if r.EmergencyContactPhone != nil {
		e.EmergencyContactPhone = copyString(r.EmergencyContactPhone)
	}
}

func copyString(s *string) *string {
	v := *s
	return &v
}

// EmployeeFilter narrows List. Department matches exactly when set.
type EmployeeFilter struct {
	Department *string
}

type EmergencyContactResponse struct {
	Name         *string `json:"name"`
	Relationship *string `json:"relationship"`
	Phone        *string `json:"phone"`
}

type EmployeeResponse struct {
	ID               int64                    `json:"id"`
	Name             string                   `json:"name"`
	Email            string                   `json:"email"`
	Phone            string                   `json:"phone"`
	Department       string                   `json:"department"`
	Role             string                   `json:"role"`
	JoinDate         string                   `json:"join_date"`
	Address          *string                  `json:"address"`
	EmergencyContact EmergencyContactResponse `json:"emergency_contact"`
}

func NewEmployeeResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:         e.ID,
		Name:       e.Name,
		Email:      e.Email,
		Phone:      e.Phone,
		Department: e.Department,
		Role:       e.Role,
		JoinDate:   e.JoinDate.Format(validator.DateLayout),
		Address:    e.Address,
		EmergencyContact: EmergencyContactResponse{
			Name:         e.EmergencyContactName,
			Relationship: e.EmergencyContactRelationship,
			Phone:        e.EmergencyContactPhone,
		},
	}
}

func NewEmployeeResponses(employees []Employee) []EmployeeResponse {
	out := make([]EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		out = append(out, NewEmployeeResponse(e))
	}
	return out
}
