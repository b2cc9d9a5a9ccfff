package dialog

import (
	"errors"
	"testing"
)

func TestAdvance_LogFlow(t *testing.T) {
	st := State{Step: StepLogWeight, ExerciseID: 42}

	st, outcome, err := Advance(st, "90")
	if err != nil {
		t.Fatalf("шаг веса: %v", err)
	}
	if outcome != nil {
		t.Fatal("диалог завершился раньше времени")
	}
	if st.Step != StepLogReps || st.Weight != 90 {
		t.Fatalf("после веса: %+v", st)
	}

	st, outcome, err = Advance(st, "15х4")
	if err != nil {
		t.Fatalf("шаг повторов: %v", err)
	}
	if outcome == nil {
		t.Fatal("диалог не завершился")
	}
	if outcome.ExerciseID != 42 || outcome.Weight != 90 || outcome.Reps != 15 || outcome.Sets != 4 {
		t.Fatalf("итог: %+v", outcome)
	}
	if st.Step != StepNone {
		t.Fatalf("состояние не сброшено: %+v", st)
	}
}

func TestAdvance_CustomFlow(t *testing.T) {
	st := State{Step: StepCustomWeight, Name: "жим узким хватом"}

	st, _, err := Advance(st, "60кг")
	if err != nil {
		t.Fatalf("шаг веса: %v", err)
	}
	if st.Step != StepCustomReps {
		t.Fatalf("после веса: %+v", st)
	}

	_, outcome, err := Advance(st, "12")
	if err != nil {
		t.Fatalf("шаг повторов: %v", err)
	}
	if outcome.Name != "жим узким хватом" || outcome.Weight != 60 || outcome.Reps != 12 || outcome.Sets != 1 {
		t.Fatalf("итог: %+v", outcome)
	}
}

func TestAdvance_BadInput(t *testing.T) {
	tests := []struct {
		name    string
		st      State
		input   string
		wantErr error
	}{
		{"weight not a number", State{Step: StepLogWeight}, "тяжело", ErrBadWeight},
		{"weight negative", State{Step: StepLogWeight}, "-5", ErrBadWeight},
		{"weight over limit", State{Step: StepLogWeight}, "1001", ErrBadWeight},
		{"reps not a number", State{Step: StepLogReps, Weight: 90}, "много", ErrBadReps},
		{"reps zero", State{Step: StepLogReps, Weight: 90}, "0", ErrBadReps},
		{"reps over limit", State{Step: StepLogReps, Weight: 90}, "1001", ErrBadReps},
		{"sets over limit", State{Step: StepLogReps, Weight: 90}, "10х21", ErrBadReps},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, outcome, err := Advance(tt.st, tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, ожидалось %v", err, tt.wantErr)
			}
			if outcome != nil {
				t.Fatal("ошибка ввода не должна завершать диалог")
			}
			if next != tt.st {
				t.Fatalf("состояние изменилось: %+v", next)
			}
		})
	}
}

func TestAdvance_ZeroWeightBodyweight(t *testing.T) {
	st := State{Step: StepLogWeight, ExerciseID: 7}

	st, _, err := Advance(st, "0")
	if err != nil {
		t.Fatalf("нулевой вес должен приниматься: %v", err)
	}

	_, outcome, err := Advance(st, "20х3")
	if err != nil {
		t.Fatalf("шаг повторов: %v", err)
	}
	if outcome.Weight != 0 || outcome.Reps != 20 || outcome.Sets != 3 {
		t.Fatalf("итог: %+v", outcome)
	}
}

func TestStore(t *testing.T) {
	store := NewStore()

	if st := store.Get(1); st.Step != StepNone {
		t.Fatalf("для нового пользователя ожидалось StepNone, получено %v", st.Step)
	}

	store.Set(1, State{Step: StepLogWeight, ExerciseID: 5})
	store.Set(2, State{Step: StepAccessCode})

	if st := store.Get(1); st.Step != StepLogWeight || st.ExerciseID != 5 {
		t.Fatalf("состояние пользователя 1: %+v", st)
	}
	if st := store.Get(2); st.Step != StepAccessCode {
		t.Fatalf("состояние пользователя 2: %+v", st)
	}

	store.Clear(1)
	if st := store.Get(1); st.Step != StepNone {
		t.Fatalf("после Clear ожидалось StepNone, получено %v", st.Step)
	}

	// запись нулевого состояния равносильна сбросу
	store.Set(2, State{})
	if st := store.Get(2); st.Step != StepNone {
		t.Fatalf("после Set(State{}) ожидалось StepNone, получено %v", st.Step)
	}
}
