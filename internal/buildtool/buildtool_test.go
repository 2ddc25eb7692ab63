package buildtool

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ngrun/internal/domain"
)

func TestNew(t *testing.T) {
	tool, err := New("", "", nil)
	require.NoError(t, err)
	assert.Equal(t, KindMaven, tool.Name())

	tool, err = New(KindStatic, "", []string{"lib/a.jar"})
	require.NoError(t, err)
	assert.Equal(t, KindStatic, tool.Name())

	_, err = New("gradle", "", nil)
	assert.Error(t, err)
}

func TestStatic_Classpath(t *testing.T) {
	project := &domain.Project{Root: "/project"}
	abs := filepath.Join(string(filepath.Separator), "opt", "testng.jar")

	cp, err := NewStatic([]string{"target/classes", " ", abs}).Classpath(context.Background(), project)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/project", "target", "classes")+string(os.PathListSeparator)+abs, cp)

	_, err = NewStatic(nil).Classpath(context.Background(), project)
	assert.Error(t, err)
}

func TestMaven_Args(t *testing.T) {
	m := NewMaven("", nil)
	assert.Equal(t, "mvn", m.bin)
	assert.Equal(t, []string{
		"-q",
		"dependency:build-classpath",
		"-Dmdep.includeScope=test",
		"-Dmdep.outputFile=/tmp/cp.txt",
	}, m.Args("/tmp/cp.txt"))
}

func TestMaven_ClasspathFailsWithoutBinary(t *testing.T) {
	m := NewMaven(filepath.Join(t.TempDir(), "no-such-mvn"), nil)
	_, err := m.Classpath(context.Background(), &domain.Project{Root: t.TempDir()})
	assert.Error(t, err)
}
