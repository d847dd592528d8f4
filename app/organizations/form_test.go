package organizations

import (
	"errors"
	"html/template"
	"net/url"
	"testing"

	"github.com/orgdirectory/organizations/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrganizationFormRender(t *testing.T) {
	rendered, err := NewOrganizationForm(nil).Render()
	require.NoError(t, err)
	html := string(rendered)

	assert.Contains(t, html, `id="id_name"`)
	assert.Contains(t, html, `name="name"`)
	assert.Contains(t, html, `placeholder="Organization name"`)
	assert.Contains(t, html, `class="form-control"`)
	assert.Contains(t, html, `<label for="id_name">Name:</label>`)
}

func TestOrganizationFormRenderBound(t *testing.T) {
	form := NewOrganizationForm(url.Values{"name": {""}})
	assert.False(t, form.IsValid())

	rendered, err := form.Render()
	require.NoError(t, err)
	html := string(rendered)

	assert.Contains(t, html, "This field is required.")
}

func TestDecorateAppliesToEveryField(t *testing.T) {
	fields := []*Field{
		{Name: "name"},
		{Name: "alias", Attrs: map[string]string{"placeholder": "Alias"}},
	}

	decorate(fields)

	for _, f := range fields {
		assert.Equal(t, "form-control", f.Attrs["class"], f.Name)
	}
	assert.Equal(t, "Alias", fields[1].Attrs["placeholder"])
}

func TestOrganizationFormIsValid(t *testing.T) {
	testCases := []struct {
		name     string
		data     url.Values
		expected bool
	}{
		{name: "Unbound", data: nil, expected: false},
		{name: "Missing name", data: url.Values{}, expected: false},
		{name: "Empty name", data: url.Values{"name": {""}}, expected: false},
		{name: "Blank name", data: url.Values{"name": {"   "}}, expected: false},
		{name: "Valid name", data: url.Values{"name": {"TDD Organization"}}, expected: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			form := NewOrganizationForm(tc.data)
			assert.Equal(t, tc.expected, form.IsValid())
			// repeated calls are stable
			assert.Equal(t, tc.expected, form.IsValid())
		})
	}
}

func TestOrganizationFormSave(t *testing.T) {
	t.Run("Saves trimmed name", func(t *testing.T) {
		repo := models.NewMemoryOrganizationsRepository()
		form := NewOrganizationForm(url.Values{"name": {"  TDD Organization  "}})
		require.True(t, form.IsValid())

		organization, err := form.Save(repo)

		require.NoError(t, err)
		assert.Equal(t, "TDD Organization", organization.Name)
		assert.Equal(t, 1, repo.Count())
	})

	t.Run("Refuses to save before validation", func(t *testing.T) {
		repo := models.NewMemoryOrganizationsRepository()
		form := NewOrganizationForm(url.Values{"name": {"Acme"}})

		_, err := form.Save(repo)

		assert.ErrorIs(t, err, ErrFormNotValid)
		assert.Equal(t, 0, repo.Count())
	})

	t.Run("Refuses to save invalid form", func(t *testing.T) {
		repo := models.NewMemoryOrganizationsRepository()
		form := NewOrganizationForm(url.Values{"name": {""}})
		assert.False(t, form.IsValid())

		_, err := form.Save(repo)

		assert.ErrorIs(t, err, ErrFormNotValid)
		assert.Equal(t, 0, repo.Count())
	})

	t.Run("Propagates store errors", func(t *testing.T) {
		repo := &MockOrganizationRepo{CreateErr: errors.New("insert failed")}
		form := NewOrganizationForm(url.Values{"name": {"Acme"}})
		require.True(t, form.IsValid())

		_, err := form.Save(repo)

		assert.EqualError(t, err, "insert failed")
		assert.Equal(t, "Acme", repo.LastCreated)
	})
}

func TestRenderFieldsReturnsTemplateErrors(t *testing.T) {
	broken := template.Must(template.New("fields").Parse(`{{range .}}{{.Missing}}{{end}}`))

	html, err := renderFields(broken, NewOrganizationForm(nil).Fields())

	assert.Error(t, err)
	assert.Empty(t, html)
}
