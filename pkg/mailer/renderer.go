package mailer

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"strings"
	"sync"
	texttemplate "text/template"
)

// Renderer executes email templates stored in a filesystem.
//
// A template named "welcome" is read from "welcome.html" (required) and
// "welcome.txt" (optional plain text alternative). The HTML file may start
// with YAML frontmatter; its Subject field is itself a text template.
type Renderer struct {
	fs fs.FS

	// Caches parsed templates, never rendered output.
	cache map[string]*compiledTemplate
	mu    sync.RWMutex
}

type compiledTemplate struct {
	subject *texttemplate.Template // nil when frontmatter has no Subject
	html    *template.Template
	text    *texttemplate.Template // nil when no .txt file exists
}

// Rendered is the output of a single Render call.
type Rendered struct {
	Subject string
	HTML    string
	Text    string
}

// NewRenderer creates a renderer reading templates from filesystem.
func NewRenderer(filesystem fs.FS) *Renderer {
	return &Renderer{
		fs:    filesystem,
		cache: make(map[string]*compiledTemplate),
	}
}

// Render executes the named template set against data.
func (r *Renderer) Render(name string, data any) (*Rendered, error) {
	compiled, err := r.getTemplate(name)
	if err != nil {
		return nil, err
	}

	out := &Rendered{}

	if compiled.subject != nil {
		var buf bytes.Buffer
		if err := compiled.subject.Execute(&buf, data); err != nil {
			return nil, fmt.Errorf("%w: subject: %v", ErrRenderFailed, err)
		}
		out.Subject = strings.TrimSpace(buf.String())
	}

	var html bytes.Buffer
	if err := compiled.html.Execute(&html, data); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrRenderFailed, name, err)
	}
	out.HTML = html.String()

	if compiled.text != nil {
		var text bytes.Buffer
		if err := compiled.text.Execute(&text, data); err != nil {
			return nil, fmt.Errorf("%w: %s text: %v", ErrRenderFailed, name, err)
		}
		out.Text = text.String()
	}

	return out, nil
}

// getTemplate returns a cached template set or parses and caches it.
func (r *Renderer) getTemplate(name string) (*compiledTemplate, error) {
	r.mu.RLock()
	if cached, ok := r.cache[name]; ok {
		r.mu.RUnlock()
		return cached, nil
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()

	// Double-check after acquiring write lock
	if cached, ok := r.cache[name]; ok {
		return cached, nil
	}

	compiled, err := r.parse(name)
	if err != nil {
		return nil, err
	}
	r.cache[name] = compiled
	return compiled, nil
}

func (r *Renderer) parse(name string) (*compiledTemplate, error) {
	content, err := fs.ReadFile(r.fs, path.Clean(name+".html"))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrTemplateNotFound, name, err)
	}

	parsed, err := ParseTemplate(content)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", err, name)
	}

	compiled := &compiledTemplate{}

	if subject, ok := parsed.Metadata["Subject"].(string); ok && subject != "" {
		compiled.subject, err = texttemplate.New(name + ".subject").Parse(subject)
		if err != nil {
			return nil, fmt.Errorf("%w: subject: %v", ErrRenderFailed, err)
		}
	}

	compiled.html, err = template.New(name + ".html").Parse(parsed.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrRenderFailed, name, err)
	}

	text, err := fs.ReadFile(r.fs, path.Clean(name+".txt"))
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// plain text body is optional
	case err != nil:
		return nil, fmt.Errorf("%w: %s.txt: %v", ErrTemplateNotFound, name, err)
	default:
		compiled.text, err = texttemplate.New(name + ".txt").Parse(string(text))
		if err != nil {
			return nil, fmt.Errorf("%w: %s text: %v", ErrRenderFailed, name, err)
		}
	}

	return compiled, nil
}
