package handlers

import (
	"html/template"
	"log"
	"net/http"
	"strconv"
	"strings"

	"library-circulation/internal/flash"
)

// TemplateData holds the data passed to every template.
type TemplateData map[string]interface{}

// NewTemplateData creates template data pre-populated with the flash
// messages for this page view.
func NewTemplateData(flashes []flash.Message) TemplateData {
	data := make(TemplateData)
	data["Flashes"] = flashes
	return data
}

// Set sets a value in the template data.
func (t TemplateData) Set(key string, value interface{}) TemplateData {
	t[key] = value
	return t
}

// loadTemplate parses a template file, logging instead of failing so a
// missing file surfaces at render time.
func loadTemplate(path string) *template.Template {
	tmpl, err := template.ParseFiles(path)
	if err != nil {
		log.Printf("Error loading template %s: %v", path, err)
		return nil
	}
	return tmpl
}

// render executes a template, falling back to a plain error when the
// template failed to load.
func render(w http.ResponseWriter, tmpl *template.Template, data TemplateData) {
	if tmpl == nil {
		http.Error(w, "Template not loaded", http.StatusInternalServerError)
		return
	}
	if err := tmpl.Execute(w, data); err != nil {
		log.Printf("Error rendering template: %v", err)
	}
}

// formInt reads a form field as an integer. Empty, whitespace-only or
// unparsable values count as absent.
func formInt(r *http.Request, key string) (int64, bool) {
	value := strings.TrimSpace(r.FormValue(key))
	if value == "" {
		return 0, false
	}

	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, false
	}

	return n, true
}
