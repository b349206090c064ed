package signup

import "strings"

// SuccessNotice is flashed on the home page after an accepted submission.
const SuccessNotice = "Signed up successfully!"

type Submission struct {
	Email    string
	Password string
}

func (s Submission) value(f Field) string {
	switch f {
	case FieldEmail:
		return s.Email
	case FieldPassword:
		return s.Password
	default:
		panic("unknown sign-up field: " + string(f))
	}
}

type Severity string

const (
	SeverityWarning Severity = "warning"
	SeverityDanger  Severity = "danger"
)

type Message struct {
	Text     string   `json:"text"`
	Severity Severity `json:"severity"`
}

// Result lists messages in rule evaluation order. An empty result means the
// submission is valid.
type Result []Message

func (r Result) IsValid() bool {
	return len(r) == 0
}

func (r Result) Texts() []string {
	texts := make([]string, 0, len(r))
	for _, m := range r {
		texts = append(texts, m.Text)
	}
	return texts
}

func (r Result) String() string {
	return strings.Join(r.Texts(), "; ")
}
