package bot

import (
	"errors"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/amzubkov/tg-gym/internal/dialog"
	"github.com/amzubkov/tg-gym/internal/models"
	"github.com/amzubkov/tg-gym/internal/training"
)

func addMoreKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		row(btn("➕ Ещё упражнение", "custom")),
		row(btn("✅ Закончить день", "custom_finish")),
	)
}

// startCustomMode режим свободной записи: одна строка полного формата
// или пошаговый ввод
func (b *Bot) startCustomMode(cb *tgbotapi.CallbackQuery) {
	chatID := cb.Message.Chat.ID
	b.sessions.Set(chatID, dialog.State{Step: dialog.StepCustomName})

	b.editOrSend(cb,
		"Напиши что сделал сегодня, например:\n"+
			"жим лежа 90 15х4 или бег 1 час\n\n"+
			"Или просто название упражнения.",
		tgbotapi.NewInlineKeyboardMarkup(
			row(btn("📜 История", "custom_history")),
			row(btn("« Назад", "main")),
		))
	b.answerCallback(cb, "", false)
}

func (b *Bot) finishCustomMode(cb *tgbotapi.CallbackQuery) {
	chatID := cb.Message.Chat.ID
	b.sessions.Clear(chatID)

	summary := b.todaySummary(cb.From.ID)
	text := mainMenuText
	if summary != "" {
		text = "Сегодня записано:\n" + summary + "\n" + mainMenuText
	}
	b.editOrSend(cb, text, b.mainMenuKeyboard(cb.From.ID))
	b.answerCallback(cb, "", false)
}

func (b *Bot) todaySummary(userID int64) string {
	logs, err := b.repo.Workout.GetTodayCustom(userID, today())
	if err != nil || len(logs) == 0 {
		return ""
	}

	var sb strings.Builder
	for _, l := range logs {
		if l.DurationMinutes > 0 {
			fmt.Fprintf(&sb, "• %s — %s\n", l.Name, formatDuration(l.DurationMinutes))
		} else {
			fmt.Fprintf(&sb, "• %s — %s кг × %d\n", l.Name, formatWeight(l.Weight), l.Reps)
		}
	}
	return sb.String()
}

// handleCustomName первая строка свободной записи: полный формат
// сохраняется сразу, иначе имя запоминается и начинается пошаговый ввод
func (b *Bot) handleCustomName(message *tgbotapi.Message) {
	chatID := message.Chat.ID
	userID := message.From.ID
	text := strings.TrimSpace(message.Text)

	if text == "" {
		b.sendMessage(chatID, "Напиши название упражнения:")
		return
	}

	entry := training.ParseEntry(text)

	if entry != nil && entry.Kind == training.EntryCardio {
		if entry.Duration < 1 || entry.Duration > dialog.MaxDuration {
			b.sendMessage(chatID, "Слишком большие значения, проверь ввод:")
			return
		}
		if err := b.repo.Workout.LogCustomCardio(userID, entry.Name, entry.Duration, today()); err != nil {
			b.sendError(chatID, "Не получилось сохранить, попробуй ещё раз", err)
			return
		}
		b.sessions.Clear(chatID)
		b.sendWithKeyboard(chatID,
			fmt.Sprintf("✅ %s — %s", entry.Name, formatDuration(entry.Duration)),
			addMoreKeyboard())
		return
	}

	if entry != nil && entry.Kind == training.EntryStrength {
		if entry.Sets > dialog.MaxSets || entry.Reps > dialog.MaxReps || entry.Weight > dialog.MaxWeight {
			b.sendMessage(chatID, "Слишком большие значения, проверь ввод:")
			return
		}
		if err := b.repo.Workout.LogCustomSets(userID, entry.Name, entry.Weight, entry.Reps, entry.Sets, today()); err != nil {
			b.sendError(chatID, "Не получилось сохранить, попробуй ещё раз", err)
			return
		}
		b.sessions.Clear(chatID)
		setsText := ""
		if entry.Sets > 1 {
			setsText = fmt.Sprintf(" × %d подходов", entry.Sets)
		}
		b.sendWithKeyboard(chatID,
			fmt.Sprintf("✅ %s — %s кг × %d%s", entry.Name, formatWeight(entry.Weight), entry.Reps, setsText),
			addMoreKeyboard())
		return
	}

	// Только название, спрашиваем вес
	b.sessions.Set(chatID, dialog.State{Step: dialog.StepCustomWeight, Name: text})
	b.sendWithKeyboard(chatID,
		fmt.Sprintf("💪 %s\n\nВведи вес (кг) или выбери:\n(0 для упражнений без веса)", text),
		weightKeyboard(models.WeightTypeDumbbell))
}

// handleCustomInput шаги веса и повторов пошагового свободного ввода
func (b *Bot) handleCustomInput(message *tgbotapi.Message, state dialog.State) {
	chatID := message.Chat.ID

	next, outcome, err := dialog.Advance(state, message.Text)
	switch {
	case errors.Is(err, dialog.ErrBadWeight):
		b.sendMessage(chatID, "Введи число (вес в кг):")
		return
	case errors.Is(err, dialog.ErrBadReps):
		b.sendMessage(chatID, "Формат: 15x3 или 12")
		return
	}

	if outcome == nil {
		b.sessions.Set(chatID, next)
		b.sendWithKeyboard(chatID, repsPrompt(next), cancelKeyboard())
		return
	}

	b.sessions.Clear(chatID)
	if err := b.repo.Workout.LogCustomSets(message.From.ID, outcome.Name, outcome.Weight, outcome.Reps, outcome.Sets, today()); err != nil {
		b.sendError(chatID, "Не получилось сохранить, попробуй ещё раз", err)
		return
	}

	b.sendWithKeyboard(chatID, loggedText(outcome), addMoreKeyboard())
}
