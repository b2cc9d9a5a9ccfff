package bot

import (
	"fmt"
	"log"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/amzubkov/tg-gym/internal/models"
)

// showHistory история упражнения: последние пять тренировок по датам
// и сдвиг рабочего веса с первой из них
func (b *Bot) showHistory(cb *tgbotapi.CallbackQuery, parts []string) {
	if len(parts) < 2 {
		return
	}
	exerciseID := parseID(parts[1])

	exercise, err := b.repo.Exercise.GetByID(exerciseID)
	if err != nil {
		b.answerCallback(cb, "Упражнение не найдено", true)
		return
	}

	history, err := b.repo.Workout.GetHistory(cb.From.ID, exerciseID, 50)
	if err != nil {
		b.answerCallback(cb, "Ошибка, попробуй позже", true)
		log.Printf("Ошибка истории [user=%d exercise=%d]: %v", cb.From.ID, exerciseID, err)
		return
	}

	if len(history) == 0 {
		b.answerCallback(cb, "История пуста", true)
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "📈 История: %s\n\n", exercise.Name)

	dates := lastDates(history, 5)
	for _, date := range dates {
		fmt.Fprintf(&sb, "📅 %s\n", date)
		for _, l := range history {
			if l.Date != date {
				continue
			}
			fmt.Fprintf(&sb, "  %d) %s кг × %d\n", l.SetNum, formatWeight(l.Weight), l.Reps)
		}
		sb.WriteString("\n")
	}

	if len(dates) >= 2 {
		first := maxWeightOn(history, dates[len(dates)-1])
		last := maxWeightOn(history, dates[0])
		switch {
		case last > first:
			fmt.Fprintf(&sb, "📊 Прогресс: +%s кг с первой тренировки!", formatWeight(last-first))
		case last == first:
			fmt.Fprintf(&sb, "📊 Стабильный вес: %s кг", formatWeight(last))
		}
	}

	b.editOrSend(cb, sb.String(), backToExerciseKeyboard(exerciseID))
	b.answerCallback(cb, "", false)
}

func maxWeightOn(history []models.WorkoutLog, date string) float64 {
	var max float64
	for _, l := range history {
		if l.Date == date && l.Weight > max {
			max = l.Weight
		}
	}
	return max
}

// showCustomHistory последние записи своих упражнений по датам
func (b *Bot) showCustomHistory(cb *tgbotapi.CallbackQuery) {
	logs, err := b.repo.Workout.GetCustomHistory(cb.From.ID, 50)
	if err != nil {
		b.answerCallback(cb, "Ошибка, попробуй позже", true)
		log.Printf("Ошибка истории своих [user=%d]: %v", cb.From.ID, err)
		return
	}

	if len(logs) == 0 {
		b.answerCallback(cb, "Записей пока нет", true)
		return
	}

	var sb strings.Builder
	sb.WriteString("📜 Свои упражнения\n\n")

	prevDate := ""
	for _, l := range logs {
		if l.Date != prevDate {
			if prevDate != "" {
				sb.WriteString("\n")
			}
			fmt.Fprintf(&sb, "📅 %s\n", l.Date)
			prevDate = l.Date
		}
		if l.DurationMinutes > 0 {
			fmt.Fprintf(&sb, "  • %s — %s\n", l.Name, formatDuration(l.DurationMinutes))
		} else {
			fmt.Fprintf(&sb, "  • %s — %s кг × %d\n", l.Name, formatWeight(l.Weight), l.Reps)
		}
	}

	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		row(btn("➕ Записать", "custom")),
		row(btn("« В меню", "main")),
	)
	b.editOrSend(cb, sb.String(), keyboard)
	b.answerCallback(cb, "", false)
}

// showStats общая статистика пользователя
func (b *Bot) showStats(cb *tgbotapi.CallbackQuery) {
	stats, err := b.repo.Workout.GetUserStats(cb.From.ID)
	if err != nil {
		b.answerCallback(cb, "Ошибка, попробуй позже", true)
		log.Printf("Ошибка статистики [user=%d]: %v", cb.From.ID, err)
		return
	}

	text := fmt.Sprintf("📊 Твоя статистика:\n\nТренировок: %d\nВсего подходов: %d",
		stats.TotalWorkouts, stats.TotalSets)
	b.editOrSend(cb, text, b.mainMenuKeyboard(cb.From.ID))
	b.answerCallback(cb, "", false)
}
