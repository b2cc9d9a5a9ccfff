package bot

import (
	"errors"
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/amzubkov/tg-gym/internal/dialog"
)

func today() string {
	return time.Now().Format("2006-01-02")
}

// startLogging начинает пошаговую запись подхода: сперва вес
// (быстрые кнопки по типу веса упражнения или ввод с клавиатуры),
// потом повторы×подходы.
func (b *Bot) startLogging(cb *tgbotapi.CallbackQuery, parts []string) {
	if len(parts) < 2 {
		return
	}
	exerciseID := parseID(parts[1])
	chatID := cb.Message.Chat.ID

	exercise, err := b.repo.Exercise.GetByID(exerciseID)
	if err != nil {
		b.answerCallback(cb, "Упражнение не найдено", true)
		return
	}

	hint := ""
	if last, err := b.repo.Workout.GetLastWorkout(cb.From.ID, exerciseID); err == nil && len(last) > 0 {
		hint = fmt.Sprintf("\n\n💡 В прошлый раз: %s кг × %d", formatWeight(last[0].Weight), last[0].Reps)
	}

	b.sessions.Set(chatID, dialog.State{
		Step:       dialog.StepLogWeight,
		ExerciseID: exerciseID,
		Name:       exercise.Name,
	})

	text := fmt.Sprintf("💪 %s\n\nВведи вес (кг) или выбери:%s", exercise.Name, hint)
	b.editOrSend(cb, text, weightKeyboard(exercise.WeightType))
	b.answerCallback(cb, "", false)
}

// handleQuickWeight нажатие быстрой кнопки веса, callback "w:{вес}"
func (b *Bot) handleQuickWeight(cb *tgbotapi.CallbackQuery, parts []string) {
	if len(parts) < 2 {
		return
	}
	chatID := cb.Message.Chat.ID
	state := b.sessions.Get(chatID)

	if state.Step != dialog.StepLogWeight && state.Step != dialog.StepCustomWeight {
		b.answerCallback(cb, "Сначала выбери упражнение", true)
		return
	}

	next, _, err := dialog.Advance(state, parts[1])
	if err != nil {
		b.answerCallback(cb, "Некорректный вес", true)
		return
	}

	b.sessions.Set(chatID, next)
	b.editOrSend(cb, repsPrompt(next), cancelKeyboard())
	b.answerCallback(cb, "", false)
}

// handleLogInput текстовый ввод в диалоге записи подхода
func (b *Bot) handleLogInput(message *tgbotapi.Message, state dialog.State) {
	chatID := message.Chat.ID

	next, outcome, err := dialog.Advance(state, message.Text)
	switch {
	case errors.Is(err, dialog.ErrBadWeight):
		b.sendMessage(chatID, fmt.Sprintf("Введи корректный вес (число от 0 до %d):", dialog.MaxWeight))
		return
	case errors.Is(err, dialog.ErrBadReps):
		b.sendMessage(chatID, "Введи повторы×подходы, например 15х4 или просто 15:")
		return
	}

	if outcome == nil {
		b.sessions.Set(chatID, next)
		b.sendWithKeyboard(chatID, repsPrompt(next), cancelKeyboard())
		return
	}

	b.sessions.Clear(chatID)
	if err := b.repo.Workout.LogSets(message.From.ID, outcome.ExerciseID, outcome.Weight, outcome.Reps, outcome.Sets, today()); err != nil {
		b.sendError(chatID, "Не получилось сохранить, попробуй ещё раз", err)
		return
	}

	b.sendWithKeyboard(chatID, loggedText(outcome), backToExerciseKeyboard(outcome.ExerciseID))
}

func repsPrompt(st dialog.State) string {
	return fmt.Sprintf("💪 %s\nВес: %s кг\n\nВведи повторы×подходы:\nНапример: 15x3 или 12",
		st.Name, formatWeight(st.Weight))
}

func loggedText(outcome *dialog.Outcome) string {
	setsText := ""
	if outcome.Sets > 1 {
		setsText = fmt.Sprintf(" × %d подходов", outcome.Sets)
	}
	return fmt.Sprintf("✅ Записано!\n\n💪 %s\n%s кг × %d%s",
		outcome.Name, formatWeight(outcome.Weight), outcome.Reps, setsText)
}
