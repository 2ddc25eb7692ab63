package storage

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ngrun/internal/config"
	"ngrun/internal/domain"
)

func newStorage(t *testing.T) (*JSONStorage, *config.Config) {
	t.Helper()
	cfg := config.New()
	cfg.ProjectPath = t.TempDir()
	return NewJSONStorage(cfg), cfg
}

func TestJSONStorage_LoadMissingFile(t *testing.T) {
	st, _ := newStorage(t)
	saved, err := st.Load()
	require.NoError(t, err)
	assert.Empty(t, saved.Configs)
}

func TestJSONStorage_SaveAndFind(t *testing.T) {
	st, cfg := newStorage(t)
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	require.NoError(t, st.Save(&domain.RunConfig{
		Name:      "com.x.FooTest$testBar",
		Provider:  "TestNGTest",
		Target:    domain.RunTarget{ClassName: "com.x.FooTest", Methods: []string{"testBar"}},
		CreatedAt: created,
	}))
	require.NoError(t, st.Save(&domain.RunConfig{
		Name:   "com.x.BarTest",
		Target: domain.RunTarget{ClassName: "com.x.BarTest"},
	}))

	_, err := os.Stat(cfg.GetSavedConfigsPath())
	require.NoError(t, err)

	saved, err := st.Load()
	require.NoError(t, err)
	require.Len(t, saved.Configs, 2)
	assert.Equal(t, "com.x.BarTest", saved.Configs[0].Name)

	found, err := st.Find("com.x.FooTest$testBar")
	require.NoError(t, err)
	assert.Equal(t, []string{"testBar"}, found.Target.Methods)
	assert.True(t, created.Equal(found.CreatedAt))

	_, err = st.Find("com.x.Missing")
	assert.ErrorIs(t, err, domain.ErrConfigNotFound)
}

func TestJSONStorage_SaveReplacesSameName(t *testing.T) {
	st, _ := newStorage(t)

	require.NoError(t, st.Save(&domain.RunConfig{Name: "com.x.FooTest", Line: 3}))
	require.NoError(t, st.Save(&domain.RunConfig{Name: "com.x.FooTest", Line: 7}))

	saved, err := st.Load()
	require.NoError(t, err)
	require.Len(t, saved.Configs, 1)
	assert.Equal(t, 7, saved.Configs[0].Line)
}

func TestJSONStorage_CorruptFile(t *testing.T) {
	st, cfg := newStorage(t)
	require.NoError(t, cfg.EnsureSettingsDir())
	require.NoError(t, os.WriteFile(cfg.GetSavedConfigsPath(), []byte("{not json"), 0644))

	_, err := st.Load()
	assert.Error(t, err)
}
