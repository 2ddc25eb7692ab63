package suite

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"ngrun/internal/domain"
)

// Preamble is written before the suite element.
const Preamble = `<!DOCTYPE suite SYSTEM "http://testng.org/testng-1.0.dtd">`

// Verbosity is the TestNG verbose level written into every suite.
const Verbosity = "2"

// Generator renders suite descriptors and writes them into a project's
// settings directory.
type Generator struct{}

// NewGenerator creates a new Generator
func NewGenerator() *Generator {
	return &Generator{}
}

// Build returns the element tree selecting the whole class, or only the given
// methods in order. Duplicate methods are kept.
func (g *Generator) Build(name, className string, methods []string) *Element {
	class := NewElement("class", Attr{"name", className})
	if len(methods) > 0 {
		includes := NewElement("methods")
		for _, m := range methods {
			includes.Append(NewElement("include", Attr{"name", m}))
		}
		class.Append(includes)
	}

	return NewElement("suite", Attr{"name", name}, Attr{"verbose", Verbosity}).
		Append(NewElement("test", Attr{"name", name}).
			Append(NewElement("classes").
				Append(class)))
}

// Render returns the complete descriptor document.
func (g *Generator) Render(name, className string, methods []string) []byte {
	var buf bytes.Buffer
	buf.WriteString(Preamble)
	buf.WriteByte('\n')
	_, _ = g.Build(name, className, methods).WriteTo(&buf)
	buf.WriteByte('\n')
	return buf.Bytes()
}

// ValidateName rejects configuration names that cannot be used as a file name
// inside the settings directory.
func ValidateName(name string) error {
	if name == "" || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return fmt.Errorf("%w: unusable suite name %q", domain.ErrInvalidTarget, name)
	}
	return nil
}

// Generate writes <settings_dir>/<name>_suite.xml, replacing any previous file,
// and returns the runner arguments for it. The settings directory must exist.
func (g *Generator) Generate(name string, project *domain.Project, className string, methods []string) (domain.LaunchSpec, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	if className == "" {
		return nil, fmt.Errorf("%w: empty class name", domain.ErrInvalidTarget)
	}

	path := project.SuitePath(name)
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}

	if err := os.WriteFile(path, g.Render(name, className, methods), 0644); err != nil {
		return nil, fmt.Errorf("write suite file %s: %w", path, err)
	}

	return LaunchSpecFor(path), nil
}
