package storage

import "github.com/framely/framely/internal/models"

// Provider persists the three engine records plus user settings. The engine
// never touches storage directly: the caller loads a snapshot, runs
// transitions, and saves the result. Each Load returns a documented default
// when no data exists.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Habits
	LoadHabits() ([]models.Habit, error)
	SaveHabits([]models.Habit) error

	// Completions
	LoadCompletions() ([]models.CompletionEvent, error)
	SaveCompletions([]models.CompletionEvent) error

	// Cover state
	LoadCoverState() (models.CoverState, error)
	SaveCoverState(models.CoverState) error

	// Utils
	GetConfigPath() string
}
