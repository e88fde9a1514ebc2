// Package forms validates contact form submissions.
package forms

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/portfolio/backend/internal/model"
)

const (
	minNameLen    = 2
	minMessageLen = 10
)

// emailPattern accepts the usual local@domain.tld shape. It is a sanity
// check on user input, not a full RFC 5322 parser.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Validation messages, one per rule.
const (
	msgNameRequired    = "This field is required."
	msgNameTooShort    = "Please enter your full name."
	msgEmailRequired   = "This field is required."
	msgEmailInvalid    = "Enter a valid email address."
	msgSubjectRequired = "This field is required."
	msgMessageRequired = "This field is required."
	msgMessageTooShort = "Please provide a more detailed message (at least 10 characters)."
)

// FieldErrors maps a field name to its validation error messages.
type FieldErrors map[string][]string

func (fe FieldErrors) add(field, msg string) {
	fe[field] = append(fe[field], msg)
}

// Has reports whether the field has at least one error.
func (fe FieldErrors) Has(field string) bool {
	return len(fe[field]) > 0
}

// ValidateContact checks a raw submission and either returns the
// normalized message content or a non-empty FieldErrors. Every failing
// field is reported; validation never stops at the first error.
// The returned ContactMessage carries only the submitted fields; identity,
// timestamps and flags are assigned at persistence time.
func ValidateContact(values url.Values) (*model.ContactMessage, FieldErrors) {
	errs := FieldErrors{}

	name := strings.TrimSpace(values.Get("name"))
	switch {
	case name == "":
		errs.add("name", msgNameRequired)
	case len([]rune(name)) < minNameLen:
		errs.add("name", msgNameTooShort)
	}

	email := strings.TrimSpace(values.Get("email"))
	switch {
	case email == "":
		errs.add("email", msgEmailRequired)
	case !emailPattern.MatchString(email):
		errs.add("email", msgEmailInvalid)
	}

	subject := strings.TrimSpace(values.Get("subject"))
	if subject == "" {
		errs.add("subject", msgSubjectRequired)
	}

	message := strings.TrimSpace(values.Get("message"))
	switch {
	case message == "":
		errs.add("message", msgMessageRequired)
	case len([]rune(message)) < minMessageLen:
		errs.add("message", msgMessageTooShort)
	}

	if len(errs) > 0 {
		return nil, errs
	}

	return &model.ContactMessage{
		Name:    name,
		Email:   email,
		Subject: subject,
		Message: message,
		Phone:   strings.TrimSpace(values.Get("phone")),
		Company: strings.TrimSpace(values.Get("company")),
	}, nil
}
