package domain

import (
	"strings"
	"time"
)

// ValuePlaceholder is replaced by the concrete value when an argument is built.
const ValuePlaceholder = "{value}"

// ProgramArgument describes one argument the runner accepts.
type ProgramArgument struct {
	Label       string
	Description string
	Template    string
}

// Build substitutes value into the argument template.
func (a ProgramArgument) Build(value string) Argument {
	return Argument{
		Label:       a.Label,
		Description: a.Description,
		Value:       strings.ReplaceAll(a.Template, ValuePlaceholder, value),
	}
}

// Argument is a built ProgramArgument.
type Argument struct {
	Label       string `json:"label"`
	Description string `json:"description"`
	Value       string `json:"value"`
}

// LaunchSpec is the argument list passed to the runner main class.
type LaunchSpec []Argument

// Values returns the rendered argument strings in order.
func (l LaunchSpec) Values() []string {
	values := make([]string, len(l))
	for i, a := range l {
		values[i] = a.Value
	}
	return values
}

// RunConfig bundles everything needed to launch one test run.
type RunConfig struct {
	Name      string     `json:"name"`
	Provider  string     `json:"provider"`
	MainClass string     `json:"main_class"`
	Target    RunTarget  `json:"target"`
	SuitePath string     `json:"suite_path"`
	Args      LaunchSpec `json:"args"`
	Source    string     `json:"source,omitempty"`
	Line      int        `json:"line,omitempty"`
	CreatedAt time.Time  `json:"created_at"`

	Project *Project `json:"-"`
}
