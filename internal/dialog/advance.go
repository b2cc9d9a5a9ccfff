package dialog

import (
	"errors"

	"github.com/amzubkov/tg-gym/internal/training"
)

// Пределы значений при записи подхода. Нулевой вес означает
// упражнение с собственным весом.
const (
	MaxWeight   = 1000
	MaxReps     = 1000
	MaxSets     = 20
	MaxDuration = 1440 // минут кардио за одну запись, сутки
)

// Ошибки ввода. Диалог остаётся на текущем шаге, пользователю
// показывается подсказка.
var (
	ErrBadWeight = errors.New("dialog: некорректный вес")
	ErrBadReps   = errors.New("dialog: некорректные повторы")
)

// Outcome готовая запись подхода по завершении диалога.
type Outcome struct {
	ExerciseID int64
	Name       string
	Weight     float64
	Reps       int
	Sets       int
}

// Advance обрабатывает текстовый ввод на текущем шаге диалога записи
// подхода. Возвращает следующее состояние и, когда диалог завершён,
// готовую запись. При ошибке ввода состояние не меняется.
func Advance(st State, input string) (State, *Outcome, error) {
	switch st.Step {
	case StepLogWeight, StepCustomWeight:
		weight, ok := training.ParseWeight(input)
		if !ok || weight < 0 || weight > MaxWeight {
			return st, nil, ErrBadWeight
		}
		next := st
		next.Weight = weight
		if st.Step == StepLogWeight {
			next.Step = StepLogReps
		} else {
			next.Step = StepCustomReps
		}
		return next, nil, nil

	case StepLogReps, StepCustomReps:
		reps, sets, ok := training.ParseRepsSets(input)
		if !ok || reps < 1 || reps > MaxReps || sets < 1 || sets > MaxSets {
			return st, nil, ErrBadReps
		}
		outcome := &Outcome{
			ExerciseID: st.ExerciseID,
			Name:       st.Name,
			Weight:     st.Weight,
			Reps:       reps,
			Sets:       sets,
		}
		return State{}, outcome, nil
	}

	return st, nil, nil
}
