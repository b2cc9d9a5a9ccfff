package bot

import "testing"

func TestToggleMuscleKey(t *testing.T) {
	tests := []struct {
		name string
		in   string
		key  string
		want string
	}{
		{"добавление в пустой выбор", "", "chest", "chest"},
		{"добавление второго ключа", "back", "chest", "back,chest"},
		{"повторное нажатие снимает выбор", "back,chest", "chest", "back"},
		{"снятие последнего ключа", "chest", "chest", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := toggleMuscleKey(tt.in, tt.key); got != tt.want {
				t.Errorf("toggleMuscleKey(%q, %q) = %q, ожидалось %q", tt.in, tt.key, got, tt.want)
			}
		})
	}
}

func TestParseMuscles(t *testing.T) {
	selected := parseMuscles("back, chest,legs")
	for _, key := range []string{"back", "chest", "legs"} {
		if !selected[key] {
			t.Errorf("ключ %s не распознан", key)
		}
	}
	if len(selected) != 3 {
		t.Errorf("выбрано %d ключей, ожидалось 3", len(selected))
	}
	if len(parseMuscles("")) != 0 {
		t.Error("пустая строка дала непустой выбор")
	}
}
