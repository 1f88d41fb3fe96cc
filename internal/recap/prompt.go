package recap

import (
	"fmt"
	"strings"
	"text/template"
)

// Binding is one named value substituted into a prompt template.
type Binding struct {
	Label string
	Value string
}

// Prompt is a chat request: a system persona plus a user message rendered
// from a template and its ordered bindings.
type Prompt struct {
	System      string
	Template    *template.Template
	Bindings    []Binding
	MaxTokens   int
	Temperature float32
}

// Render executes the template. A template that references a label with no
// binding is an error rather than an empty substitution.
func (p Prompt) Render() (string, error) {
	if p.Template == nil {
		return "", fmt.Errorf("prompt has no template")
	}
	values := make(map[string]string, len(p.Bindings))
	for _, b := range p.Bindings {
		values[b.Label] = b.Value
	}
	var sb strings.Builder
	if err := p.Template.Execute(&sb, values); err != nil {
		return "", fmt.Errorf("rendering %s prompt: %w", p.Template.Name(), err)
	}
	return sb.String(), nil
}

// Value returns the bound value for label.
func (p Prompt) Value(label string) (string, bool) {
	for _, b := range p.Bindings {
		if b.Label == label {
			return b.Value, true
		}
	}
	return "", false
}

func newTemplate(name, text string) *template.Template {
	return template.Must(template.New(name).Option("missingkey=error").Parse(text))
}
