// Package validation holds the field rules for signup, user and store forms
// and for rating values. All functions are pure: they take one value and
// return nil or a *FieldError describing the first rule that failed.
package validation

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/dmitrijs2005/storerating/internal/models"
)

const (
	NameMinLength     = 20
	NameMaxLength     = 60
	AddressMaxLength  = 400
	PasswordMinLength = 8
	PasswordMaxLength = 16

	passwordSpecialChars = "!@#$%^&*"
)

// Field names as reported in FieldError.Field.
const (
	FieldName     = "name"
	FieldEmail    = "email"
	FieldAddress  = "address"
	FieldPassword = "password"
	FieldRating   = "rating"
	FieldRole     = "role"
	FieldOwnerID  = "owner_id"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func ValidateName(name string) *FieldError {
	n := utf8.RuneCountInString(name)
	if n < NameMinLength || n > NameMaxLength {
		return &FieldError{Field: FieldName, Kind: NameLengthInvalid}
	}
	return nil
}

func ValidateEmail(email string) *FieldError {
	if !emailRegex.MatchString(email) {
		return &FieldError{Field: FieldEmail, Kind: EmailFormatInvalid}
	}
	return nil
}

func ValidateAddress(address string) *FieldError {
	if address == "" {
		return &FieldError{Field: FieldAddress, Kind: AddressRequired}
	}
	if utf8.RuneCountInString(address) > AddressMaxLength {
		return &FieldError{Field: FieldAddress, Kind: AddressTooLong}
	}
	return nil
}

// ValidatePassword checks length, then uppercase, then special character and
// reports only the first failing condition.
func ValidatePassword(password string) *FieldError {
	n := utf8.RuneCountInString(password)
	if n < PasswordMinLength || n > PasswordMaxLength {
		return &FieldError{Field: FieldPassword, Kind: PasswordLengthInvalid}
	}
	if !strings.ContainsFunc(password, func(r rune) bool { return r >= 'A' && r <= 'Z' }) {
		return &FieldError{Field: FieldPassword, Kind: PasswordMissingUppercase}
	}
	if !strings.ContainsAny(password, passwordSpecialChars) {
		return &FieldError{Field: FieldPassword, Kind: PasswordMissingSpecialChar}
	}
	return nil
}

func ValidateRating(value int) *FieldError {
	if value < models.MinRating || value > models.MaxRating {
		return &FieldError{Field: FieldRating, Kind: RatingOutOfRange}
	}
	return nil
}

func ValidateRole(role string) *FieldError {
	if _, err := models.ParseRole(role); err != nil {
		return &FieldError{Field: FieldRole, Kind: RoleInvalid}
	}
	return nil
}

// ValidateRequired rejects blank values for field.
func ValidateRequired(field, value string) *FieldError {
	if strings.TrimSpace(value) == "" {
		return &FieldError{Field: field, Kind: Required}
	}
	return nil
}

// ValidateUser runs the signup rules over every field of in and collects the
// failures. Role is not checked here; see ValidateRole.
func ValidateUser(in models.UserInput) error {
	return Collect(
		ValidateName(in.Name),
		ValidateEmail(in.Email),
		ValidateAddress(in.Address),
		ValidatePassword(in.Password),
	)
}

// ValidateStore checks a store candidate. OwnerID is only checked for
// presence; whether it names a store owner is up to the caller.
func ValidateStore(in models.StoreInput) error {
	nameErr := ValidateRequired(FieldName, in.Name)
	emailErr := ValidateRequired(FieldEmail, in.Email)
	if emailErr == nil {
		emailErr = ValidateEmail(in.Email)
	}
	return Collect(
		nameErr,
		emailErr,
		ValidateAddress(in.Address),
		ValidateRequired(FieldOwnerID, in.OwnerID),
	)
}

// FieldErrors extracts the per-field failures from err, if it carries any.
func FieldErrors(err error) (Errors, bool) {
	var errs Errors
	if errors.As(err, &errs) {
		return errs, true
	}
	var fe *FieldError
	if errors.As(err, &fe) {
		return Errors{fe}, true
	}
	return nil, false
}
