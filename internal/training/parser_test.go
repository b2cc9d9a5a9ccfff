package training

import (
	"testing"
)

func TestParseEntry_Cardio(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		wantName     string
		wantDuration int
	}{
		{"minutes short unit", "бег 50мин", "бег", 50},
		{"minutes with space", "бег 50 минут", "бег", 50},
		{"single letter unit", "ходьба 30м", "ходьба", 30},
		{"hours", "ходьба 1 час", "ходьба", 60},
		{"hours short unit", "велосипед 2ч", "велосипед", 120},
		{"fractional hours", "бег 1,5 часа", "бег", 90},
		{"trailing text ignored", "бег 50 мин в парке", "бег", 50},
		{"multiword name", "быстрая ходьба 40 мин", "быстрая ходьба", 40},
		{"huge value clamped", "бег 999999999999 ч", "бег", maxDurationMinutes},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := ParseEntry(tt.input)
			if entry == nil {
				t.Fatalf("ParseEntry(%q) = nil, ожидалось кардио", tt.input)
			}
			if entry.Kind != EntryCardio {
				t.Fatalf("Kind = %v, ожидалось EntryCardio", entry.Kind)
			}
			if entry.Name != tt.wantName {
				t.Errorf("Name = %q, ожидалось %q", entry.Name, tt.wantName)
			}
			if entry.Duration != tt.wantDuration {
				t.Errorf("Duration = %d, ожидалось %d", entry.Duration, tt.wantDuration)
			}
		})
	}
}

func TestParseEntry_Strength(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantName   string
		wantWeight float64
		wantReps   int
		wantSets   int
	}{
		{"full format", "жим лежа 90 15х4", "жим лежа", 90, 15, 4},
		{"with kg suffix", "жим лежа 90кг 15х4", "жим лежа", 90, 15, 4},
		{"latin x", "жим 90 15x4", "жим", 90, 15, 4},
		{"multiplication sign", "жим 90 15×4", "жим", 90, 15, 4},
		{"asterisk", "жим 90 15*4", "жим", 90, 15, 4},
		{"no sets defaults to one", "жим 90 15", "жим", 90, 15, 1},
		{"decimal comma weight", "гантели 22,5 12х3", "гантели", 22.5, 12, 3},
		{"decimal dot weight", "гантели 22.5 12х3", "гантели", 22.5, 12, 3},
		{"zero weight bodyweight", "отжимания 0 20х3", "отжимания", 0, 20, 3},
		{"multiword name", "жим гантелей сидя 25 10х4", "жим гантелей сидя", 25, 10, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := ParseEntry(tt.input)
			if entry == nil {
				t.Fatalf("ParseEntry(%q) = nil, ожидалось силовое", tt.input)
			}
			if entry.Kind != EntryStrength {
				t.Fatalf("Kind = %v, ожидалось EntryStrength", entry.Kind)
			}
			if entry.Name != tt.wantName {
				t.Errorf("Name = %q, ожидалось %q", entry.Name, tt.wantName)
			}
			if entry.Weight != tt.wantWeight {
				t.Errorf("Weight = %v, ожидалось %v", entry.Weight, tt.wantWeight)
			}
			if entry.Reps != tt.wantReps {
				t.Errorf("Reps = %d, ожидалось %d", entry.Reps, tt.wantReps)
			}
			if entry.Sets != tt.wantSets {
				t.Errorf("Sets = %d, ожидалось %d", entry.Sets, tt.wantSets)
			}
		})
	}
}

func TestParseEntry_NoMatch(t *testing.T) {
	inputs := []string{
		"приседания",
		"жим",
		"",
		"просто какой-то текст",
	}

	for _, input := range inputs {
		if entry := ParseEntry(input); entry != nil {
			t.Errorf("ParseEntry(%q) = %+v, ожидался nil", input, entry)
		}
	}
}

func TestParseRepsSets(t *testing.T) {
	tests := []struct {
		input    string
		wantReps int
		wantSets int
		wantOK   bool
	}{
		{"15x3", 15, 3, true},
		{"15х3", 15, 3, true}, // кириллическая х
		{"15×3", 15, 3, true},
		{"15*3", 15, 3, true},
		{"15-3", 15, 3, true},
		{"15 x 3", 15, 3, true},
		{"12", 12, 1, true},
		{"abc", 0, 0, false},
		{"15x", 0, 0, false},
		{"", 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			reps, sets, ok := ParseRepsSets(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("ParseRepsSets(%q) ok = %v, ожидалось %v", tt.input, ok, tt.wantOK)
			}
			if reps != tt.wantReps || sets != tt.wantSets {
				t.Errorf("ParseRepsSets(%q) = %d, %d, ожидалось %d, %d",
					tt.input, reps, sets, tt.wantReps, tt.wantSets)
			}
		})
	}
}

func TestParseWeight(t *testing.T) {
	tests := []struct {
		input  string
		want   float64
		wantOK bool
	}{
		{"90", 90, true},
		{"22,5", 22.5, true},
		{"22.5", 22.5, true},
		{"90кг", 90, true},
		{"90 кг", 90, true},
		{"0", 0, true},
		{"не число", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseWeight(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("ParseWeight(%q) ok = %v, ожидалось %v", tt.input, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("ParseWeight(%q) = %v, ожидалось %v", tt.input, got, tt.want)
			}
		})
	}
}
