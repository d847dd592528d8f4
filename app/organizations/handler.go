package organizations

import (
	"embed"
	"errors"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/orgdirectory/organizations/models"
)

//go:embed templates/*.html
var templatesFS embed.FS

var (
	homeTemplate   = parsePage("templates/home.html")
	createTemplate = parsePage("templates/create.html")
)

func parsePage(page string) *template.Template {
	return template.Must(template.ParseFS(templatesFS, "templates/base.html", page))
}

type HomePage struct {
	Organizations []models.Organization
}

type CreatePage struct {
	Form *OrganizationForm
}

type OrganizationProvider interface {
	GetAllOrganizations() ([]models.Organization, error)
	CreateOrganization(name string) (*models.Organization, error)
}

// maxFormMemory bounds the part of a multipart body kept in memory.
const maxFormMemory = 1 << 20

type OrganizationHandler struct {
	repo   OrganizationProvider
	logger *slog.Logger
}

func NewOrganizationHandler(r OrganizationProvider, logger *slog.Logger) *OrganizationHandler {
	return &OrganizationHandler{repo: r, logger: logger}
}

// HandleHome lists every organization.
func (h *OrganizationHandler) HandleHome(w http.ResponseWriter, r *http.Request) {
	organizations, err := h.repo.GetAllOrganizations()
	if err != nil {
		h.logger.Error("failed to fetch organizations", "error", err)
		http.Error(w, "failed to fetch organizations", http.StatusInternalServerError)
		return
	}

	h.render(w, homeTemplate, HomePage{Organizations: organizations})
}

// HandleCreateForm shows an empty creation form.
func (h *OrganizationHandler) HandleCreateForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, createTemplate, CreatePage{Form: NewOrganizationForm(nil)})
}

// HandleCreate saves a valid submission. Invalid submissions are dropped and
// the client is sent back home either way.
func (h *OrganizationHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	// urlencoded bodies are already parsed when ErrNotMultipart comes back
	if err := r.ParseMultipartForm(maxFormMemory); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		h.logger.Warn("malformed organization form", "error", err)
	}

	form := NewOrganizationForm(r.PostForm)
	if form.IsValid() {
		organization, err := form.Save(h.repo)
		if err != nil {
			h.logger.Error("failed to create organization", "error", err)
			http.Error(w, "Failed to create organization", http.StatusInternalServerError)
			return
		}
		h.logger.Info("organization created", "id", organization.ID, "name", organization.Name)
	} else {
		h.logger.Debug("organization form rejected", "errors", form.Name.Errors)
	}

	http.Redirect(w, r, "/", http.StatusFound)
}

func (h *OrganizationHandler) render(w http.ResponseWriter, tmpl *template.Template, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.ExecuteTemplate(w, "base", data); err != nil {
		h.logger.Error("failed to render template", "template", tmpl.Name(), "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
