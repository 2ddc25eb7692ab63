package resolver

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ngrun/internal/domain"
)

func writeJava(t *testing.T, dir, rel, content string) string {
	t.Helper()
	path := filepath.Join(dir, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

type failing struct{ err error }

func (f failing) ClassName(string) (string, error) { return "", f.err }

func TestPathResolver_ClassName(t *testing.T) {
	dir := t.TempDir()
	root := filepath.Join(dir, "src", "test", "java")
	file := writeJava(t, root, "com/x/FooTest.java", "")
	r := NewPathResolver([]string{filepath.Join(dir, "src", "main", "java"), root})

	t.Run("file below a source root", func(t *testing.T) {
		name, err := r.ClassName(file)
		require.NoError(t, err)
		assert.Equal(t, "com.x.FooTest", name)
	})

	t.Run("file outside every root", func(t *testing.T) {
		outside := writeJava(t, dir, "Other.java", "")
		_, err := NewPathResolver([]string{root}).ClassName(outside)
		assert.ErrorIs(t, err, domain.ErrClassResolution)
	})

	t.Run("not a java file", func(t *testing.T) {
		_, err := r.ClassName(filepath.Join(root, "com", "x", "notes.txt"))
		assert.ErrorIs(t, err, domain.ErrClassResolution)
	})

	t.Run("invalid package segment", func(t *testing.T) {
		bad := writeJava(t, root, "com/my-pkg/FooTest.java", "")
		_, err := r.ClassName(bad)
		assert.ErrorIs(t, err, domain.ErrClassResolution)
	})
}

func TestSourceResolver_ClassName(t *testing.T) {
	dir := t.TempDir()
	r := NewSourceResolver()

	t.Run("reads the package declaration", func(t *testing.T) {
		file := writeJava(t, dir, "anywhere/FooTest.java", `package com.example.app;

import org.testng.annotations.Test;

public class FooTest {
    @Test
    public void testBar() {
    }
}
`)
		name, err := r.ClassName(file)
		require.NoError(t, err)
		assert.Equal(t, "com.example.app.FooTest", name)
	})

	t.Run("single segment package", func(t *testing.T) {
		file := writeJava(t, dir, "Single.java", "package tests;\npublic class Single {}\n")
		name, err := r.ClassName(file)
		require.NoError(t, err)
		assert.Equal(t, "tests.Single", name)
	})

	t.Run("default package fails", func(t *testing.T) {
		file := writeJava(t, dir, "Bare.java", "public class Bare {}\n")
		_, err := r.ClassName(file)
		assert.ErrorIs(t, err, domain.ErrClassResolution)
	})

	t.Run("missing file fails", func(t *testing.T) {
		_, err := r.ClassName(filepath.Join(dir, "Missing.java"))
		assert.ErrorIs(t, err, domain.ErrClassResolution)
	})
}

func TestNew(t *testing.T) {
	dir := t.TempDir()
	root := filepath.Join(dir, "src")
	bare := writeJava(t, root, "pkg/Bare.java", "public class Bare {}\n")

	t.Run("source falls back to path", func(t *testing.T) {
		r, err := New(KindSource, []string{root})
		require.NoError(t, err)
		name, err := r.ClassName(bare)
		require.NoError(t, err)
		assert.Equal(t, "pkg.Bare", name)
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := New("magic", nil)
		assert.Error(t, err)
	})

	t.Run("failure keeps every resolver's error", func(t *testing.T) {
		first := errors.New("parse failed")
		second := errors.New("not below any source root")
		_, err := Chain{failing{first}, failing{second}}.ClassName(bare)
		assert.ErrorIs(t, err, first)
		assert.ErrorIs(t, err, second)
		assert.Contains(t, err.Error(), "parse failed")
	})

	t.Run("missing file reports the read error", func(t *testing.T) {
		r, err := New(KindSource, []string{root})
		require.NoError(t, err)
		_, err = r.ClassName(filepath.Join(dir, "elsewhere", "Missing.java"))
		assert.ErrorIs(t, err, domain.ErrClassResolution)
		assert.Contains(t, err.Error(), "Missing.java")
	})

	t.Run("empty chain", func(t *testing.T) {
		_, err := Chain{}.ClassName(bare)
		assert.ErrorIs(t, err, domain.ErrClassResolution)
	})
}
