package resolver

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/java"

	"ngrun/internal/domain"
)

// SourceResolver reads the package declaration of a Java file and combines it
// with the file's base name.
type SourceResolver struct{}

// NewSourceResolver creates a new SourceResolver
func NewSourceResolver() *SourceResolver {
	return &SourceResolver{}
}

// ClassName implements domain.ClassResolver
func (r *SourceResolver) ClassName(sourceFile string) (string, error) {
	source, err := os.ReadFile(sourceFile)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrClassResolution, err)
	}

	pkg, err := r.PackageName(source)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", domain.ErrClassResolution, sourceFile, err)
	}
	if pkg == "" {
		return "", fmt.Errorf("%w: %s declares no package", domain.ErrClassResolution, sourceFile)
	}

	base := strings.TrimSuffix(filepath.Base(sourceFile), filepath.Ext(sourceFile))
	return pkg + "." + base, nil
}

// PackageName returns the package declared in source, or "" for the default package.
func (r *SourceResolver) PackageName(source []byte) (string, error) {
	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(java.GetLanguage())

	tree, err := parser.ParseCtx(context.Background(), nil, source)
	if err != nil {
		return "", fmt.Errorf("parse: %w", err)
	}
	defer tree.Close()

	root := tree.RootNode()
	for i := 0; i < int(root.NamedChildCount()); i++ {
		child := root.NamedChild(i)
		if child.Type() != "package_declaration" {
			continue
		}
		for j := 0; j < int(child.NamedChildCount()); j++ {
			n := child.NamedChild(j)
			switch n.Type() {
			case "scoped_identifier", "identifier":
				return strings.Join(strings.Fields(n.Content(source)), ""), nil
			}
		}
	}
	return "", nil
}
