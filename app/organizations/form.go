package organizations

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"net/url"
	"strings"

	"github.com/orgdirectory/organizations/models"
)

// ErrFormNotValid is returned by Save when the form was not validated first.
var ErrFormNotValid = errors.New("organization form is not valid")

const requiredFieldMessage = "This field is required."

// Field is a single text input of a form.
type Field struct {
	Name   string
	Label  string
	Value  string
	Attrs  map[string]string
	Errors []string
}

// ID is the DOM id of the rendered input.
func (f Field) ID() string {
	return "id_" + f.Name
}

// decorate applies the widget styling shared by every form field.
func decorate(fields []*Field) {
	for _, f := range fields {
		if f.Attrs == nil {
			f.Attrs = map[string]string{}
		}
		f.Attrs["class"] = "form-control"
	}
}

type OrganizationCreator interface {
	CreateOrganization(name string) (*models.Organization, error)
}

// OrganizationForm maps a submitted payload to a new organization.
type OrganizationForm struct {
	data    url.Values
	bound   bool
	checked bool
	valid   bool
	cleaned map[string]string

	Name *Field
}

// NewOrganizationForm builds the form. A nil payload gives an unbound form.
func NewOrganizationForm(data url.Values) *OrganizationForm {
	f := &OrganizationForm{
		data:  data,
		bound: data != nil,
		Name: &Field{
			Name:  "name",
			Label: "Name",
			Attrs: map[string]string{"placeholder": "Organization name"},
		},
	}
	if f.bound {
		f.Name.Value = data.Get("name")
	}
	decorate(f.Fields())
	return f
}

func (f *OrganizationForm) Fields() []*Field {
	return []*Field{f.Name}
}

// IsValid reports whether a bound form carries a non-blank name.
// Surrounding whitespace is trimmed first, so a whitespace-only name is
// rejected and a valid name is saved trimmed.
func (f *OrganizationForm) IsValid() bool {
	if !f.bound {
		return false
	}
	if f.checked {
		return f.valid
	}
	f.checked = true
	f.cleaned = map[string]string{}

	name := strings.TrimSpace(f.data.Get("name"))
	if name == "" {
		f.Name.Errors = append(f.Name.Errors, requiredFieldMessage)
		return false
	}
	f.cleaned["name"] = name
	f.valid = true
	return true
}

// Save persists the cleaned data. IsValid must have returned true.
func (f *OrganizationForm) Save(store OrganizationCreator) (*models.Organization, error) {
	if !f.checked || !f.valid {
		return nil, ErrFormNotValid
	}
	return store.CreateOrganization(f.cleaned["name"])
}

// Render returns the form fields as HTML paragraphs.
func (f *OrganizationForm) Render() (template.HTML, error) {
	return renderFields(fieldsTemplate, f.Fields())
}

func renderFields(tmpl *template.Template, fields []*Field) (template.HTML, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, fields); err != nil {
		return "", fmt.Errorf("render form fields: %w", err)
	}
	return template.HTML(buf.String()), nil
}

var fieldsTemplate = template.Must(template.New("fields").Parse(
	`{{range .}}<p>{{range .Errors}}<span class="error">{{.}}</span>{{end}}` +
		`<label for="{{.ID}}">{{.Label}}:</label> ` +
		`<input type="text" name="{{.Name}}"{{if .Value}} value="{{.Value}}"{{end}}` +
		`{{range $k, $v := .Attrs}} {{$k}}="{{$v}}"{{end}} required id="{{.ID}}"></p>{{end}}`,
))
