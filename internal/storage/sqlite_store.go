package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	_ "modernc.org/sqlite"

	"github.com/framely/framely/internal/covers"
	"github.com/framely/framely/internal/migration"
	"github.com/framely/framely/internal/models"
	"github.com/framely/framely/migrations"
)

type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if err := s.runMigrations(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	// Seed defaults if this is a fresh database
	if _, err := s.GetSettings(); err != nil {
		if err := s.SaveSettings(defaultSettings()); err != nil {
			return fmt.Errorf("failed to save default settings: %w", err)
		}
	}
	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM cover_state").Scan(&count); err != nil {
		return fmt.Errorf("failed to check cover state: %w", err)
	}
	if count == 0 {
		if err := s.SaveCoverState(covers.NewState()); err != nil {
			return fmt.Errorf("failed to seed cover state: %w", err)
		}
	}

	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'framely init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	return s.newRunner().ValidateVersion()
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) newRunner() *migration.Runner {
	return migration.NewRunner(s.db, migrations.SQLiteFS())
}

func (s *SQLiteStore) runMigrations() error {
	_, err := s.newRunner().Apply(nil)
	return err
}

func (s *SQLiteStore) GetSettings() (models.Settings, error) {
	rows, err := s.db.Query("SELECT key, value FROM settings")
	if err != nil {
		return models.Settings{}, err
	}
	defer rows.Close()

	settings := models.Settings{}
	count := 0
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return models.Settings{}, err
		}
		switch key {
		case "default_color":
			settings.DefaultColor = value
		case "stats_days":
			n, err := strconv.Atoi(value)
			if err != nil {
				return models.Settings{}, fmt.Errorf("parsing stats_days: %w", err)
			}
			settings.StatsDays = n
		}
		count++
	}

	if count == 0 {
		return models.Settings{}, fmt.Errorf("settings not found")
	}

	return settings, nil
}

func (s *SQLiteStore) SaveSettings(settings models.Settings) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare("INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	if _, err := stmt.Exec("default_color", settings.DefaultColor); err != nil {
		return err
	}
	if _, err := stmt.Exec("stats_days", strconv.Itoa(settings.StatsDays)); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *SQLiteStore) LoadHabits() ([]models.Habit, error) {
	rows, err := s.db.Query(`
		SELECT id, title, description, created_at, color, reminders,
		       frequency_type, frequency_days, pause_start, pause_end
		FROM habits`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var habits []models.Habit
	for rows.Next() {
		var h models.Habit
		var createdAt, reminders, freqDays string
		var pauseStart, pauseEnd sql.NullString

		err := rows.Scan(
			&h.ID, &h.Title, &h.Description, &createdAt, &h.Color, &reminders,
			&h.Frequency.Type, &freqDays, &pauseStart, &pauseEnd,
		)
		if err != nil {
			return nil, err
		}

		h.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at: %w", err)
		}
		if err := json.Unmarshal([]byte(reminders), &h.Reminders); err != nil {
			return nil, fmt.Errorf("failed to parse reminders: %w", err)
		}
		if err := json.Unmarshal([]byte(freqDays), &h.Frequency.Days); err != nil {
			return nil, fmt.Errorf("failed to parse frequency days: %w", err)
		}
		if pauseStart.Valid {
			h.PauseStart = pauseStart.String
		}
		if pauseEnd.Valid {
			h.PauseEnd = pauseEnd.String
		}

		habits = append(habits, h)
	}

	return habits, rows.Err()
}

func (s *SQLiteStore) SaveHabits(habits []models.Habit) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM habits"); err != nil {
		return err
	}

	stmt, err := tx.Prepare(`
		INSERT INTO habits (
			id, title, description, created_at, color, reminders,
			frequency_type, frequency_days, pause_start, pause_end
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, h := range habits {
		reminders, err := json.Marshal(h.Reminders)
		if err != nil {
			return fmt.Errorf("failed to marshal reminders: %w", err)
		}
		freqDays, err := json.Marshal(h.Frequency.Days)
		if err != nil {
			return fmt.Errorf("failed to marshal frequency days: %w", err)
		}

		var pauseStart, pauseEnd sql.NullString
		if h.PauseStart != "" {
			pauseStart = sql.NullString{String: h.PauseStart, Valid: true}
		}
		if h.PauseEnd != "" {
			pauseEnd = sql.NullString{String: h.PauseEnd, Valid: true}
		}

		_, err = stmt.Exec(
			h.ID, h.Title, h.Description, h.CreatedAt.UTC().Format(time.RFC3339), h.Color, string(reminders),
			h.Frequency.Type, string(freqDays), pauseStart, pauseEnd,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) LoadCompletions() ([]models.CompletionEvent, error) {
	rows, err := s.db.Query("SELECT id, habit_id, day, created_at FROM completions ORDER BY day")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []models.CompletionEvent
	for rows.Next() {
		var e models.CompletionEvent
		var createdAt string
		if err := rows.Scan(&e.ID, &e.HabitID, &e.Day, &createdAt); err != nil {
			return nil, err
		}
		e.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at: %w", err)
		}
		events = append(events, e)
	}

	return events, rows.Err()
}

func (s *SQLiteStore) SaveCompletions(events []models.CompletionEvent) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM completions"); err != nil {
		return err
	}

	stmt, err := tx.Prepare("INSERT INTO completions (id, habit_id, day, created_at) VALUES (?, ?, ?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, e := range events {
		if _, err := stmt.Exec(e.ID, e.HabitID, e.Day, e.CreatedAt.UTC().Format(time.RFC3339)); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) LoadCoverState() (models.CoverState, error) {
	row := s.db.QueryRow(`
		SELECT covers_remaining, covered_dates, last_cover_grant_month, last_evaluation_date
		FROM cover_state WHERE id = 1`)

	var state models.CoverState
	var coveredDates string
	var grantMonth, evalDate sql.NullString

	err := row.Scan(&state.CoversRemaining, &coveredDates, &grantMonth, &evalDate)
	if err != nil {
		if err == sql.ErrNoRows {
			return covers.NewState(), nil
		}
		return models.CoverState{}, err
	}

	if err := json.Unmarshal([]byte(coveredDates), &state.CoveredDates); err != nil {
		return models.CoverState{}, fmt.Errorf("failed to parse covered dates: %w", err)
	}
	if state.CoveredDates == nil {
		state.CoveredDates = []string{}
	}
	if grantMonth.Valid {
		state.LastCoverGrantMonth = grantMonth.String
	}
	if evalDate.Valid {
		state.LastEvaluationDate = evalDate.String
	}

	return state, nil
}

func (s *SQLiteStore) SaveCoverState(state models.CoverState) error {
	coveredDates, err := json.Marshal(state.CoveredDates)
	if err != nil {
		return fmt.Errorf("failed to marshal covered dates: %w", err)
	}

	var grantMonth, evalDate sql.NullString
	if state.LastCoverGrantMonth != "" {
		grantMonth = sql.NullString{String: state.LastCoverGrantMonth, Valid: true}
	}
	if state.LastEvaluationDate != "" {
		evalDate = sql.NullString{String: state.LastEvaluationDate, Valid: true}
	}

	_, err = s.db.Exec(`
		INSERT OR REPLACE INTO cover_state (id, covers_remaining, covered_dates, last_cover_grant_month, last_evaluation_date)
		VALUES (1, ?, ?, ?, ?)`,
		state.CoversRemaining, string(coveredDates), grantMonth, evalDate,
	)
	return err
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}

// GetDB exposes the handle for diagnostics and backups.
func (s *SQLiteStore) GetDB() *sql.DB {
	return s.db
}
