package views

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/example/rms/internal/models"
)

//go:embed templates/*.html
var files embed.FS

// Page names understood by Render.
const (
	PageIndex      = "index.html"
	PageCustomers  = "customers.html"
	PageComplaints = "complaints.html"
)

const timestampLayout = "2006-01-02 15:04:05"

// Renderer renders the embedded HTML pages.
type Renderer struct {
	pages *template.Template
}

// New parses every embedded page.
func New() (*Renderer, error) {
	pages, err := template.New("pages").Funcs(template.FuncMap{
		"timestamp": timestamp,
		"optional":  optional,
	}).ParseFS(files, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{pages: pages}, nil
}

// Index renders the complaint submission form.
func (r *Renderer) Index(w io.Writer) error {
	return r.pages.ExecuteTemplate(w, PageIndex, map[string]interface{}{
		"IssueTypes": models.IssueTypes,
	})
}

// Customers renders the customer table.
func (r *Renderer) Customers(w io.Writer, customers []models.Customer) error {
	return r.pages.ExecuteTemplate(w, PageCustomers, map[string]interface{}{
		"Customers": customers,
	})
}

// Complaints renders the joined complaint table.
func (r *Renderer) Complaints(w io.Writer, complaints []models.ComplaintView) error {
	return r.pages.ExecuteTemplate(w, PageComplaints, map[string]interface{}{
		"Complaints": complaints,
	})
}

func timestamp(v interface{}) string {
	switch t := v.(type) {
	case time.Time:
		return t.Format(timestampLayout)
	case *time.Time:
		if t == nil {
			return ""
		}
		return t.Format(timestampLayout)
	default:
		return ""
	}
}

func optional(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
