package domain

import (
	"fmt"
	"regexp"
)

// MatchKind classifies a single line of Java source.
type MatchKind int

const (
	NoMatch MatchKind = iota
	ClassMatch
	MethodMatch
)

func (k MatchKind) String() string {
	switch k {
	case ClassMatch:
		return "class"
	case MethodMatch:
		return "method"
	default:
		return "none"
	}
}

// IdentifierPattern is a Java identifier: letters, digits, underscore and
// currency symbols, not starting with a digit.
const IdentifierPattern = `[\p{L}_\p{Sc}][\p{L}\p{N}_\p{Sc}]*`

var (
	identifierRe = regexp.MustCompile(`^` + IdentifierPattern + `$`)
	classNameRe  = regexp.MustCompile(`^` + IdentifierPattern + `(?:\.` + IdentifierPattern + `)*$`)
)

// IsIdentifier reports whether s is a single valid identifier.
func IsIdentifier(s string) bool {
	return identifierRe.MatchString(s)
}

// RunTarget identifies what the runner executes: a whole class, or the
// listed methods of that class.
type RunTarget struct {
	ClassName string   `json:"class_name"`
	Methods   []string `json:"methods,omitempty"`
}

// Validate checks the class name and every method name.
func (t RunTarget) Validate() error {
	if !classNameRe.MatchString(t.ClassName) {
		return fmt.Errorf("%w: invalid class name %q", ErrInvalidTarget, t.ClassName)
	}
	for _, m := range t.Methods {
		if !IsIdentifier(m) {
			return fmt.Errorf("%w: invalid method name %q", ErrInvalidTarget, m)
		}
	}
	return nil
}

// IsWholeClass reports whether no method selection is present.
func (t RunTarget) IsWholeClass() bool {
	return len(t.Methods) == 0
}

// Name returns the configuration name for the target: the class name, or
// class$method qualified by the first selected method.
func (t RunTarget) Name() string {
	if t.IsWholeClass() {
		return t.ClassName
	}
	return t.ClassName + "$" + t.Methods[0]
}
