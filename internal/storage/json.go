package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"ngrun/internal/domain"
)

// Save writes cfg into the saved configurations file.
func (s *JSONStorage) Save(cfg *domain.RunConfig) error {
	saved, err := s.Load()
	if err != nil {
		return err
	}

	replaced := false
	for i := range saved.Configs {
		if saved.Configs[i].Name == cfg.Name {
			saved.Configs[i] = *cfg
			replaced = true
			break
		}
	}
	if !replaced {
		saved.Configs = append(saved.Configs, *cfg)
	}
	sort.Slice(saved.Configs, func(i, j int) bool {
		return saved.Configs[i].Name < saved.Configs[j].Name
	})

	data, err := json.MarshalIndent(saved, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal configurations: %w", err)
	}

	path := s.cfg.GetSavedConfigsPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create settings dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write configurations: %w", err)
	}
	return nil
}

// Load reads the saved configurations. A missing file yields an empty set.
func (s *JSONStorage) Load() (*domain.SavedConfigs, error) {
	path := s.cfg.GetSavedConfigsPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &domain.SavedConfigs{}, nil
		}
		return nil, fmt.Errorf("read configurations file: %w", err)
	}
	var saved domain.SavedConfigs
	if err := json.Unmarshal(data, &saved); err != nil {
		return nil, fmt.Errorf("parse configurations: %w", err)
	}
	return &saved, nil
}

// Find returns the saved configuration with the given name.
func (s *JSONStorage) Find(name string) (*domain.RunConfig, error) {
	saved, err := s.Load()
	if err != nil {
		return nil, err
	}
	for i := range saved.Configs {
		if saved.Configs[i].Name == name {
			return &saved.Configs[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrConfigNotFound, name)
}
