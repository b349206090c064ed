package signup

import (
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
)

type Field string

const (
	FieldEmail    Field = "email"
	FieldPassword Field = "password"
)

type CheckKind string

const (
	KindRequired  CheckKind = "required"
	KindMatch     CheckKind = "match"
	KindMinLength CheckKind = "min_length"
)

// ValuePlaceholder is replaced with the checked value when a message is built.
const ValuePlaceholder = "{value}"

const (
	emailPattern     = `^\w+@\w+\.\w{2,}$`
	upperCasePattern = `[A-Z]`
	lowerCasePattern = `[a-z]`
	digitPattern     = `[0-9]`

	passwordMinLength = 8
)

const (
	MsgEmailEmpty       = "Email must not be empty"
	MsgEmailInvalid     = "'" + ValuePlaceholder + "' is an invalid email address"
	MsgPasswordEmpty    = "Password must not be empty"
	MsgPasswordUpper    = "Password requires at least one upper-case letter"
	MsgPasswordLower    = "Password requires at least one lower-case letter"
	MsgPasswordDigit    = "Password requires at least one digit"
	MsgPasswordTooShort = "Password must be at least eight characters long"
)

var patterns = map[string]*regexp.Regexp{
	emailPattern:     regexp.MustCompile(emailPattern),
	upperCasePattern: regexp.MustCompile(upperCasePattern),
	lowerCasePattern: regexp.MustCompile(lowerCasePattern),
	digitPattern:     regexp.MustCompile(digitPattern),
}

// Check is a single rule applied to one field. Every kind treats an empty
// value as a violation; Halt skips the remaining checks of the same field
// once this one has failed.
type Check struct {
	Field     Field     `json:"field"`
	Kind      CheckKind `json:"kind"`
	Pattern   string    `json:"pattern,omitempty"`
	MinLength int       `json:"minLength,omitempty"`
	Message   string    `json:"message"`
	Severity  Severity  `json:"severity"`
	Halt      bool      `json:"halt,omitempty"`
}

func (c Check) message(value string) string {
	return strings.ReplaceAll(c.Message, ValuePlaceholder, value)
}

func (c Check) rules(value string) []validation.Rule {
	msg := c.message(value)
	required := validation.Required.Error(msg)
	switch c.Kind {
	case KindRequired:
		return []validation.Rule{required}
	case KindMatch:
		return []validation.Rule{required, validation.Match(patterns[c.Pattern]).Error(msg)}
	case KindMinLength:
		return []validation.Rule{required, validation.RuneLength(c.MinLength, 0).Error(msg)}
	default:
		panic("unknown check kind: " + string(c.Kind))
	}
}

// RuleSet is an ordered list of checks. It is serialized into the sign-up page
// so the browser evaluates the same table the server does.
type RuleSet struct {
	Name   string  `json:"name"`
	Checks []Check `json:"checks"`
}

func (rs RuleSet) Validate(s Submission) Result {
	result := Result{}
	halted := make(map[Field]bool)
	for _, check := range rs.Checks {
		if halted[check.Field] {
			continue
		}
		value := s.value(check.Field)
		if err := validation.Validate(value, check.rules(value)...); err != nil {
			result = append(result, Message{Text: err.Error(), Severity: check.Severity})
			if check.Halt {
				halted[check.Field] = true
			}
		}
	}
	return result
}

func notEmpty(field Field, msg string) Check {
	return Check{Field: field, Kind: KindRequired, Message: msg, Severity: SeverityDanger, Halt: true}
}

func emailFormat() Check {
	return Check{
		Field:    FieldEmail,
		Kind:     KindMatch,
		Pattern:  emailPattern,
		Message:  MsgEmailInvalid,
		Severity: SeverityDanger,
	}
}

func passwordComposition(severity Severity) []Check {
	match := func(pattern, msg string) Check {
		return Check{Field: FieldPassword, Kind: KindMatch, Pattern: pattern, Message: msg, Severity: severity}
	}
	return []Check{
		match(upperCasePattern, MsgPasswordUpper),
		match(lowerCasePattern, MsgPasswordLower),
		match(digitPattern, MsgPasswordDigit),
	}
}

func passwordLength() Check {
	return Check{
		Field:     FieldPassword,
		Kind:      KindMinLength,
		MinLength: passwordMinLength,
		Message:   MsgPasswordTooShort,
		Severity:  SeverityDanger,
	}
}

// ServerRules is the authoritative rule set applied to posted forms. Empty
// fields are not special-cased: they fail the format and composition checks.
func ServerRules() RuleSet {
	checks := []Check{emailFormat()}
	checks = append(checks, passwordComposition(SeverityDanger)...)
	checks = append(checks, passwordLength())
	return RuleSet{Name: "server", Checks: checks}
}

// ClientRules is the rule set evaluated in the browser while the user types.
func ClientRules() RuleSet {
	checks := []Check{
		notEmpty(FieldEmail, MsgEmailEmpty),
		emailFormat(),
		notEmpty(FieldPassword, MsgPasswordEmpty),
	}
	checks = append(checks, passwordComposition(SeverityWarning)...)
	checks = append(checks, passwordLength())
	return RuleSet{Name: "client", Checks: checks}
}

func ValidateServer(s Submission) Result {
	return ServerRules().Validate(s)
}

func ValidateClient(s Submission) Result {
	return ClientRules().Validate(s)
}
