package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	ds "signupsite/internal/core/domain/signup"
)

//go:embed templates
var templatesFS embed.FS

type Page string

const (
	PageHome   Page = "index"
	PageSignUp Page = "sign-up"
)

var pages = []Page{PageHome, PageSignUp}

type HomeData struct {
	Flash []string
}

type SignUpData struct {
	Email  string
	Errors ds.Result
	Live   ds.Result
	Rules  ds.RuleSet
}

// NewSignUpData prepares the sign-up form. Live holds what the browser would
// show for the current field values before the first keystroke; the password
// is never echoed back, so it is evaluated as empty.
func NewSignUpData(email string, errors ds.Result) SignUpData {
	rules := ds.ClientRules()
	return SignUpData{
		Email:  email,
		Errors: errors,
		Live:   rules.Validate(ds.Submission{Email: email}),
		Rules:  rules,
	}
}

// Views holds one template set per page, each composed of the base layout,
// the partials and the page itself.
type Views struct {
	pages map[Page]*template.Template
}

func New() (*Views, error) {
	v := &Views{pages: make(map[Page]*template.Template, len(pages))}
	for _, page := range pages {
		t, err := template.New(string(page)).ParseFS(
			templatesFS,
			"templates/layout/*.html",
			"templates/partials/*.html",
			fmt.Sprintf("templates/%s.html", page),
		)
		if err != nil {
			return nil, fmt.Errorf("could not parse %q page: %w", page, err)
		}
		v.pages[page] = t
	}
	return v, nil
}

func (v *Views) Render(page Page, data interface{}) ([]byte, error) {
	t, ok := v.pages[page]
	if !ok {
		return nil, fmt.Errorf("unknown page %q", page)
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "base", data); err != nil {
		return nil, fmt.Errorf("could not render %q page: %w", page, err)
	}
	return buf.Bytes(), nil
}

type Renderer interface {
	Render(page Page, data interface{}) ([]byte, error)
}
