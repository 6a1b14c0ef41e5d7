package templ

import (
	"fmt"
	"io"
	"sync"
	"text/template"

	"github.com/rs/zerolog/log"
)

//goland:noinspection SpellCheckingInspection I swear it's correct!!
const option = "missingkey=error"

// TemplateRenderer parses and executes factory source templates.
// It caches parsed templates for reuse, since a factory renders the same
// content on every invocation.
type TemplateRenderer struct {
	cache sync.Map // map[string]*template.Template
}

// NewTemplateRenderer creates a new TemplateRenderer.
func NewTemplateRenderer() *TemplateRenderer {
	return &TemplateRenderer{}
}

// Check parses content without executing it.
func (r *TemplateRenderer) Check(content string) error {
	_, err := r.getTemplate(content)
	return err
}

// Render parses and executes a template with the given data.
func (r *TemplateRenderer) Render(w io.Writer, content string, data any) error {
	tmpl, err := r.getTemplate(content)
	if err != nil {
		return err
	}
	// note to ourselves: trace may log sensitive data in this case
	log.Trace().Msgf("rendering content with data: %#v", data)
	if err := tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("executing template: %w", err)
	}
	return nil
}

func (r *TemplateRenderer) getTemplate(content string) (*template.Template, error) {
	if cached, ok := r.cache.Load(content); ok {
		return cached.(*template.Template), nil
	}

	tmpl, err := template.New("gqlmerge").
		Option(option).
		Parse(content)
	if err != nil {
		return nil, fmt.Errorf("parsing template: %w", err)
	}

	r.cache.Store(content, tmpl)
	return tmpl, nil
}
