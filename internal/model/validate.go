package model

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// emailPattern is a deliberately loose format check: something before
// an @, something after, with a dot in the domain.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ValidateName checks an entity name. maxLen bounds its length in
// runes; zero means unbounded.
func ValidateName(name string, maxLen int) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("name must not be blank")
	}
	if maxLen > 0 && utf8.RuneCountInString(name) > maxLen {
		return fmt.Errorf("name must be at most %d characters", maxLen)
	}
	return nil
}

// ValidateItem checks item fields before persistence. Numeric bounds
// are re-checked here even though callers validate at the input
// boundary.
func ValidateItem(item Item, requireDescription bool) error {
	if strings.TrimSpace(item.Name) == "" {
		return errors.New("name must not be blank")
	}
	if requireDescription && strings.TrimSpace(item.Description) == "" {
		return errors.New("description must not be blank")
	}
	if item.Value < 0 {
		return errors.New("value must not be negative")
	}
	if item.Quantity < 0 {
		return errors.New("quantity must not be negative")
	}
	return nil
}

// ValidateUser checks registration fields. The password is the
// plaintext candidate, never the stored hash.
func ValidateUser(name, email, password string) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("name must not be blank")
	}
	if strings.TrimSpace(email) == "" {
		return errors.New("email must not be blank")
	}
	if !emailPattern.MatchString(email) {
		return errors.New("email is not valid")
	}
	if strings.TrimSpace(password) == "" {
		return errors.New("password must not be blank")
	}
	return nil
}
