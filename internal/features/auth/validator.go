package auth

import (
	"errors"
	"regexp"
	"strings"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidateName validates the account display name
func ValidateName(name string) error {
	name = strings.TrimSpace(name)
	if len(name) < 2 {
		return errors.New("name must be at least 2 characters long")
	}
	if len(name) > 50 {
		return errors.New("name cannot exceed 50 characters")
	}
	return nil
}

// ValidateEmail validates the email format
func ValidateEmail(email string) error {
	if !emailRegex.MatchString(strings.TrimSpace(email)) {
		return errors.New("please enter a valid email")
	}
	return nil
}

// ValidatePassword validates the password strength
func ValidatePassword(password string) error {
	if len(password) < 6 {
		return errors.New("password must be at least 6 characters long")
	}
	return nil
}

// ValidateRegisterRequest validates all fields in RegisterRequest
func ValidateRegisterRequest(req *RegisterRequest) error {
	if err := ValidateName(req.Name); err != nil {
		return err
	}
	if err := ValidateEmail(req.Email); err != nil {
		return err
	}
	return ValidatePassword(req.Password)
}

// ValidateUpdateProfileRequest validates the non-empty fields in UpdateProfileRequest
func ValidateUpdateProfileRequest(req *UpdateProfileRequest) error {
	if req.Name != "" {
		if err := ValidateName(req.Name); err != nil {
			return err
		}
	}
	if len(req.Bio) > 500 {
		return errors.New("bio cannot exceed 500 characters")
	}
	return nil
}
