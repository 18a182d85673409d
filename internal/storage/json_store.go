package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/bodysoul/internal/constants"
	"github.com/julianstephens/bodysoul/internal/models"
)

// JSONStore keeps every record in one JSON object keyed by record name, the way a browser
// key-value store would. The profile lives under constants.ProfileKey and each setting under
// its own key.
type JSONStore struct {
	path    string
	records map[string]json.RawMessage
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Keep existing records when re-initializing
	if _, err := os.Stat(s.path); err == nil {
		if err := s.Load(); err != nil {
			return err
		}
	} else {
		s.records = make(map[string]json.RawMessage)
	}

	if _, ok := s.records[models.SettingDarkMode]; !ok {
		if err := s.SaveSettings(models.DefaultSettings()); err != nil {
			return fmt.Errorf("failed to save default settings: %w", err)
		}
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return ErrNotInitialized
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	records := make(map[string]json.RawMessage)
	if err := json.Unmarshal(data, &records); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}
	s.records = records

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) LoadProfile() (*models.UserProfile, error) {
	if s.records == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	raw, ok := s.records[constants.ProfileKey]
	if !ok || string(raw) == "null" {
		return nil, ErrProfileNotFound
	}
	return DecodeProfile(raw)
}

func (s *JSONStore) SaveProfile(p *models.UserProfile) error {
	if s.records == nil {
		return fmt.Errorf("storage not loaded")
	}

	data, err := EncodeProfile(p)
	if err != nil {
		return err
	}
	s.records[constants.ProfileKey] = data
	return s.save()
}

func (s *JSONStore) DeleteProfile() error {
	if s.records == nil {
		return fmt.Errorf("storage not loaded")
	}

	delete(s.records, constants.ProfileKey)
	return s.save()
}

func (s *JSONStore) GetSettings() (models.Settings, error) {
	if s.records == nil {
		return models.Settings{}, fmt.Errorf("storage not loaded")
	}

	values := make(map[string]string)
	for key := range models.DefaultSettings().ToMap() {
		raw, ok := s.records[key]
		if !ok {
			continue
		}
		var value string
		if err := json.Unmarshal(raw, &value); err != nil {
			return models.Settings{}, fmt.Errorf("parsing %s: %w", key, err)
		}
		values[key] = value
	}

	if len(values) == 0 {
		return models.Settings{}, errors.New("settings not found")
	}
	return models.SettingsFromMap(values)
}

func (s *JSONStore) SaveSettings(settings models.Settings) error {
	if s.records == nil {
		return fmt.Errorf("storage not loaded")
	}

	for key, value := range settings.ToMap() {
		data, err := json.Marshal(value)
		if err != nil {
			return err
		}
		s.records[key] = data
	}
	return s.save()
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
