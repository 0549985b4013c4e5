// Package validation holds the field rules of the login and entry forms and
// the per-field touched state that decides when a message is shown.
package validation

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"ticktock/models"
)

const (
	MinHours = 0.5
	MaxHours = 24.0

	minDescriptionLength = 5
	minPasswordLength    = 6
)

const (
	MsgInvalidEmail        = "Please enter a valid email address"
	MsgPasswordTooShort    = "Password must be at least 6 characters"
	MsgRememberMe          = "You must accept to remember your session"
	MsgProjectRequired     = "Project is required"
	MsgWorkTypeRequired    = "Type of work is required"
	MsgDescriptionTooShort = "Description must be at least 5 characters"
	MsgHoursOutOfRange     = "Hours must be between 0.5 and 24"
	MsgDateRequired        = "Date is required"
	MsgDateFormat          = "Date must be in YYYY-MM-DD format"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Rule returns the message for a failing value, or "" when the value passes.
type Rule[T any] func(T) string

// Chain runs rules in order and stops at the first failure.
func Chain[T any](rules ...Rule[T]) Rule[T] {
	return func(v T) string {
		for _, r := range rules {
			if msg := r(v); msg != "" {
				return msg
			}
		}
		return ""
	}
}

func Required(label string) Rule[string] {
	return func(v string) string {
		if strings.TrimSpace(v) == "" {
			return label + " is required"
		}
		return ""
	}
}

func Email(v string) string {
	if strings.TrimSpace(v) != "" && !emailPattern.MatchString(v) {
		return MsgInvalidEmail
	}
	return ""
}

func Password(v string) string {
	if strings.TrimSpace(v) != "" && utf8.RuneCountInString(v) < minPasswordLength {
		return MsgPasswordTooShort
	}
	return ""
}

func RememberMe(required bool) Rule[bool] {
	return func(checked bool) string {
		if required && !checked {
			return MsgRememberMe
		}
		return ""
	}
}

func Project(v string) string {
	if v == "" {
		return MsgProjectRequired
	}
	return ""
}

func WorkType(v string) string {
	if v == "" {
		return MsgWorkTypeRequired
	}
	return ""
}

func Description(v string) string {
	if utf8.RuneCountInString(strings.TrimSpace(v)) < minDescriptionLength {
		return MsgDescriptionTooShort
	}
	return ""
}

func Hours(v string) string {
	h, ok := ParseHours(v)
	if !ok || h < MinHours || h > MaxHours {
		return MsgHoursOutOfRange
	}
	return ""
}

func Date(v string) string {
	if strings.TrimSpace(v) == "" {
		return MsgDateRequired
	}
	if _, err := time.Parse(models.DateLayout, v); err != nil {
		return MsgDateFormat
	}
	return ""
}

// ParseHours reads a decimal hour value. Empty and non-numeric input is rejected.
func ParseHours(v string) (float64, bool) {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0, false
	}
	h, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(h) {
		return 0, false
	}
	return h, true
}

func FormatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', -1, 64)
}

// TextKind selects the extra rule a text input applies after the required check.
type TextKind int

const (
	KindText TextKind = iota
	KindEmail
	KindPassword
)

// TextInput builds the rule of a generic text field.
func TextInput(kind TextKind, label string, required bool) Rule[string] {
	var rules []Rule[string]
	if required {
		rules = append(rules, Required(label))
	}
	switch kind {
	case KindEmail:
		rules = append(rules, Email)
	case KindPassword:
		rules = append(rules, Password)
	}
	return Chain(rules...)
}
