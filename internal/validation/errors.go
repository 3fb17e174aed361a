package validation

import "strings"

// Kind identifies which rule a value broke.
type Kind string

const (
	NameLengthInvalid          Kind = "name_length_invalid"
	EmailFormatInvalid         Kind = "email_format_invalid"
	AddressRequired            Kind = "address_required"
	AddressTooLong             Kind = "address_too_long"
	PasswordLengthInvalid      Kind = "password_length_invalid"
	PasswordMissingUppercase   Kind = "password_missing_uppercase"
	PasswordMissingSpecialChar Kind = "password_missing_special_char"
	RatingOutOfRange           Kind = "rating_out_of_range"
	RoleInvalid                Kind = "role_invalid"
	OwnerInvalid               Kind = "owner_invalid"
	OwnerHasStore              Kind = "owner_has_store"
	Required                   Kind = "required"
)

var messages = map[Kind]string{
	NameLengthInvalid:          "Name must be between 20 and 60 characters",
	EmailFormatInvalid:         "Please enter a valid email address",
	AddressRequired:            "Address is required",
	AddressTooLong:             "Address must not exceed 400 characters",
	PasswordLengthInvalid:      "Password must be between 8 and 16 characters",
	PasswordMissingUppercase:   "Password must contain at least one uppercase letter",
	PasswordMissingSpecialChar: "Password must contain at least one special character (!@#$%^&*)",
	RatingOutOfRange:           "Rating must be between 1 and 5",
	RoleInvalid:                "Role must be one of admin, user, store_owner",
	OwnerInvalid:               "Owner must be an existing store owner",
	OwnerHasStore:              "This owner already has a store",
	Required:                   "This field is required",
}

// Message returns the text shown next to the offending form field.
func (k Kind) Message() string {
	if m, ok := messages[k]; ok {
		return m
	}
	return string(k)
}

// FieldError is a single failed rule.
type FieldError struct {
	Field string
	Kind  Kind
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Kind.Message()
}

// Errors is the set of failures for one submission, at most one per field.
type Errors []*FieldError

func (e Errors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fe.Error())
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// For returns the failure reported for field, if any.
func (e Errors) For(field string) (*FieldError, bool) {
	for _, fe := range e {
		if fe.Field == field {
			return fe, true
		}
	}
	return nil, false
}

// Collect drops nil results and returns the rest as Errors, or nil when every
// check passed.
func Collect(results ...*FieldError) error {
	var errs Errors
	for _, fe := range results {
		if fe != nil {
			errs = append(errs, fe)
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}
