package validation

import (
	"testing"

	"github.com/framely/framely/internal/models"
)

func TestValidateFrequency(t *testing.T) {
	cases := []struct {
		name    string
		freq    models.Frequency
		wantErr bool
	}{
		{"everyday", models.Frequency{Type: models.FrequencyEveryday}, false},
		{"every other day", models.Frequency{Type: models.FrequencyEveryOtherDay}, false},
		{"specific weekdays", models.Frequency{Type: models.FrequencySpecific, Days: []int{1, 3, 5}}, false},
		{"everyday with days", models.Frequency{Type: models.FrequencyEveryday, Days: []int{1}}, true},
		{"specific without days", models.Frequency{Type: models.FrequencySpecific}, true},
		{"weekday out of range", models.Frequency{Type: models.FrequencySpecific, Days: []int{7}}, true},
		{"negative weekday", models.Frequency{Type: models.FrequencySpecific, Days: []int{-1}}, true},
		{"duplicate weekday", models.Frequency{Type: models.FrequencySpecific, Days: []int{2, 2}}, true},
		{"empty type", models.Frequency{}, true},
		{"unknown type", models.Frequency{Type: "fortnightly"}, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := ValidateFrequency(c.freq)
			if c.wantErr && err == nil {
				t.Errorf("expected error for %+v", c.freq)
			}
			if !c.wantErr && err != nil {
				t.Errorf("unexpected error for %+v: %v", c.freq, err)
			}
		})
	}
}

func TestValidateHabit(t *testing.T) {
	valid := models.Habit{
		ID:        "h1",
		Title:     "Read",
		Frequency: models.Frequency{Type: models.FrequencyEveryday},
	}
	if err := ValidateHabit(valid); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	noTitle := valid
	noTitle.Title = ""
	if err := ValidateHabit(noTitle); err == nil {
		t.Error("expected error for missing title")
	}

	halfPause := valid
	halfPause.PauseStart = "2025-12-20"
	if err := ValidateHabit(halfPause); err == nil {
		t.Error("expected error for pause start without end")
	}

	invertedPause := valid
	invertedPause.PauseStart = "2025-12-25"
	invertedPause.PauseEnd = "2025-12-20"
	if err := ValidateHabit(invertedPause); err == nil {
		t.Error("expected error for inverted pause window")
	}

	pausedOK := valid
	pausedOK.PauseStart = "2025-12-20"
	pausedOK.PauseEnd = "2025-12-25"
	if err := ValidateHabit(pausedOK); err != nil {
		t.Errorf("unexpected error for valid pause window: %v", err)
	}
}
