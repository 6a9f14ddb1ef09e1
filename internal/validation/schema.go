// Package validation evaluates declarative field rules against request input.
// A Schema is an ordered list of rules; Apply sanitises the bound values in
// place and reports every violated rule, never stopping at the first one.
package validation

import (
	"fmt"
	"regexp"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/dictionary-api/internal/domain"
)

// LettersAndSpaces matches ASCII letters and spaces only.
var LettersAndSpaces = regexp.MustCompile(`^[A-Za-z ]+$`)

// Rule declares the constraints of a single field.
type Rule struct {
	Field    string
	Required bool
	// MinLen and MaxLen bound the rune length after sanitisation; zero disables a bound.
	MinLen   int
	MaxLen   int
	Pattern  *regexp.Regexp
	UUID     bool
	Sanitize bool
}

// Schema is an ordered set of rules. Errors are reported in schema order.
type Schema []Rule

// Apply evaluates the schema against values, keyed by field name.
// Fields with Sanitize set are rewritten through domain.SanitizeText before
// any check runs. Fields missing from values are treated as empty.
func (s Schema) Apply(values map[string]*string) []domain.FieldError {
	var errs []domain.FieldError

	for _, rule := range s {
		ptr, ok := values[rule.Field]
		if !ok {
			ptr = new(string)
		}
		if rule.Sanitize {
			*ptr = domain.SanitizeText(*ptr)
		}
		errs = append(errs, rule.check(*ptr)...)
	}

	return errs
}

// Validate is Apply wrapped into a *domain.ValidationError, or nil when clean.
func (s Schema) Validate(values map[string]*string) error {
	if errs := s.Apply(values); len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (r Rule) check(v string) []domain.FieldError {
	var errs []domain.FieldError
	fail := func(msg string) {
		errs = append(errs, domain.FieldError{Field: r.Field, Message: msg, Value: v})
	}

	if r.Required && v == "" {
		fail(fmt.Sprintf("%s is required", r.Field))
	}

	n := utf8.RuneCountInString(v)
	switch {
	case r.MinLen > 0 && r.MaxLen > 0 && (n < r.MinLen || n > r.MaxLen):
		fail(fmt.Sprintf("%s must be between %d and %d characters", r.Field, r.MinLen, r.MaxLen))
	case r.MinLen > 0 && r.MaxLen == 0 && n < r.MinLen:
		fail(fmt.Sprintf("%s must be at least %d characters", r.Field, r.MinLen))
	case r.MaxLen > 0 && r.MinLen == 0 && n > r.MaxLen:
		fail(fmt.Sprintf("%s must be at most %d characters", r.Field, r.MaxLen))
	}

	if r.Pattern != nil && !r.Pattern.MatchString(v) {
		fail(fmt.Sprintf("%s may contain only letters and spaces", r.Field))
	}

	if r.UUID && !IsUUID(v) {
		fail(fmt.Sprintf("%s must be a valid UUID", r.Field))
	}

	return errs
}

// IsUUID reports whether s is a UUID in canonical 8-4-4-4-12 hex form.
// Braced and urn-prefixed forms accepted by uuid.Parse are rejected.
func IsUUID(s string) bool {
	if len(s) != 36 {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}
