// Package validate implements declarative request validation: handlers
// build a list of per-field rules which is evaluated before any storage
// access, and all failing fields are reported back together in one 400
// response.
package validate

import (
	"regexp"
	"strings"
)

// FieldError describes a single failed predicate, reported verbatim to
// the client.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"msg"`
}

// Rule binds one predicate to one field.  When is an optional gate: a
// rule with a When that returns false is skipped, which is how optional
// update fields are expressed.
type Rule struct {
	Field   string
	Message string
	Valid   func() bool
	When    func() bool
}

// Run evaluates every rule and returns the aggregated failure set.  An
// empty slice means the request passed.
func Run(rules ...Rule) []FieldError {
	var errs []FieldError
	for _, r := range rules {
		if r.When != nil && !r.When() {
			continue
		}
		if !r.Valid() {
			errs = append(errs, FieldError{Field: r.Field, Message: r.Message})
		}
	}
	return errs
}

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	// Vietnamese mobile numbers: leading 0 or +84 then a valid carrier
	// prefix and eight digits.
	vnMobileRe = regexp.MustCompile(`^(0|\+84)(3|5|7|8|9)[0-9]{8}$`)
)

// NonEmpty reports whether s contains anything besides whitespace.
func NonEmpty(s string) bool { return strings.TrimSpace(s) != "" }

// IsEmail reports whether s looks like an email address.
func IsEmail(s string) bool { return emailRe.MatchString(strings.TrimSpace(s)) }

// IsVNMobile reports whether s is a valid Vietnamese mobile number.
func IsVNMobile(s string) bool { return vnMobileRe.MatchString(strings.TrimSpace(s)) }

// MinLen reports whether s has at least n characters.
func MinLen(s string, n int) bool { return len(s) >= n }

// InRange reports whether lo <= n <= hi.
func InRange(n, lo, hi int) bool { return n >= lo && n <= hi }
