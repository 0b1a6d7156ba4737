package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/framely/framely/internal/constants"
	"github.com/framely/framely/internal/covers"
	"github.com/framely/framely/internal/models"
)

type Store struct {
	Version     int                      `json:"version"`
	Settings    models.Settings          `json:"settings"`
	Habits      []models.Habit           `json:"habits"`
	Completions []models.CompletionEvent `json:"completions"`
	Covers      models.CoverState        `json:"covers"`
}

type JSONStore struct {
	path  string
	store *Store
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func defaultSettings() models.Settings {
	return models.Settings{
		DefaultColor: "#4A90D9",
		StatsDays:    constants.DefaultStatsDays,
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.store = &Store{
		Version:  1,
		Settings: defaultSettings(),
		Covers:   covers.NewState(),
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'framely init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.store = &Store{}
	if err := json.Unmarshal(data, s.store); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	if s.store.Covers.CoveredDates == nil {
		s.store.Covers.CoveredDates = []string{}
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) GetSettings() (models.Settings, error) {
	if s.store == nil {
		return models.Settings{}, fmt.Errorf("storage not loaded")
	}
	return s.store.Settings, nil
}

func (s *JSONStore) SaveSettings(settings models.Settings) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.Settings = settings
	return s.save()
}

func (s *JSONStore) LoadHabits() ([]models.Habit, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	return append([]models.Habit(nil), s.store.Habits...), nil
}

func (s *JSONStore) SaveHabits(habits []models.Habit) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.Habits = append([]models.Habit(nil), habits...)
	return s.save()
}

func (s *JSONStore) LoadCompletions() ([]models.CompletionEvent, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	return append([]models.CompletionEvent(nil), s.store.Completions...), nil
}

func (s *JSONStore) SaveCompletions(events []models.CompletionEvent) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.Completions = append([]models.CompletionEvent(nil), events...)
	return s.save()
}

func (s *JSONStore) LoadCoverState() (models.CoverState, error) {
	if s.store == nil {
		return models.CoverState{}, fmt.Errorf("storage not loaded")
	}
	return s.store.Covers.Clone(), nil
}

func (s *JSONStore) SaveCoverState(state models.CoverState) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.Covers = state.Clone()
	return s.save()
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
