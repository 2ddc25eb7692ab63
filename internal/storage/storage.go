package storage

import (
	"ngrun/internal/config"
	"ngrun/internal/domain"
)

// Storage persists created run configurations so they can be listed and restored.
type Storage interface {
	// Save records cfg, replacing any configuration with the same name.
	Save(cfg *domain.RunConfig) error
	Load() (*domain.SavedConfigs, error)
	Find(name string) (*domain.RunConfig, error)
}

// JSONStorage stores configurations in a JSON file in the settings directory.
type JSONStorage struct {
	cfg *config.Config
}

// NewJSONStorage returns a Storage that reads/writes the config's saved configurations path.
func NewJSONStorage(cfg *config.Config) *JSONStorage {
	return &JSONStorage{cfg: cfg}
}
