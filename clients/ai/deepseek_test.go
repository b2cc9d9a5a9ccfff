package ai

import (
	"context"
	"errors"
	"testing"
)

func TestChat_Unconfigured(t *testing.T) {
	c := NewClient("")
	_, err := c.GenerateExercises(context.Background(), []string{"грудь"}, 5)
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("err = %v, ожидалось ErrUnavailable", err)
	}

	var nilClient *Client
	_, err = nilClient.Chat(context.Background(), nil, 0.7, 100)
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("nil клиент: err = %v, ожидалось ErrUnavailable", err)
	}
}

func TestMuscleGroups(t *testing.T) {
	want := []string{"chest", "back", "shoulders", "biceps", "triceps", "legs", "abs", "glutes"}
	for _, key := range want {
		if _, ok := MuscleGroups[key]; !ok {
			t.Errorf("нет группы мышц %q", key)
		}
	}
	if len(MuscleGroups) != len(want) {
		t.Errorf("групп мышц %d, ожидалось %d", len(MuscleGroups), len(want))
	}
}
