package bot

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/amzubkov/tg-gym/internal/models"
	"github.com/amzubkov/tg-gym/internal/repository"
)

func (b *Bot) showPrograms(cb *tgbotapi.CallbackQuery) {
	programs, err := b.repo.Program.GetAll()
	if err != nil {
		b.answerCallback(cb, "Ошибка, попробуй позже", true)
		log.Printf("Ошибка списка программ: %v", err)
		return
	}

	if len(programs) == 0 {
		b.answerCallback(cb, "Пока нет программ", true)
		return
	}

	b.editOrSend(cb, "Выбери программу:", programsKeyboard(programs, "main"))
	b.answerCallback(cb, "", false)
}

func (b *Bot) showProgramDays(cb *tgbotapi.CallbackQuery, parts []string) {
	if len(parts) < 2 {
		return
	}
	programID := parseID(parts[1])

	program, err := b.repo.Program.GetByID(programID)
	if err != nil {
		b.answerCallback(cb, "Программа не найдена", true)
		return
	}

	days, err := b.repo.Program.GetDays(programID)
	if err != nil || len(days) == 0 {
		b.answerCallback(cb, "В программе пока нет дней", true)
		return
	}

	b.editOrSend(cb, fmt.Sprintf("📋 %s\n\nВыбери день:", program.Name), daysKeyboard(days))
	b.answerCallback(cb, "", false)
}

func (b *Bot) showDayExercises(cb *tgbotapi.CallbackQuery, parts []string) {
	if len(parts) < 2 {
		return
	}
	dayID := parseID(parts[1])

	day, err := b.repo.Program.GetDay(dayID)
	if err != nil {
		b.answerCallback(cb, "День не найден", true)
		return
	}

	program, err := b.repo.Program.GetByID(day.ProgramID)
	if err != nil {
		b.answerCallback(cb, "Программа не найдена", true)
		return
	}

	exercises, err := b.repo.Exercise.GetByDay(dayID)
	if err != nil || len(exercises) == 0 {
		b.answerCallback(cb, "В этом дне пока нет упражнений", true)
		return
	}

	text := fmt.Sprintf("📋 %s — %s\n\nВыбери упражнение:",
		program.Name, dayTitle(day.DayNumber, day.Name))
	b.editOrSend(cb, text, exercisesKeyboard(exercises, dayID, program.ID))
	b.answerCallback(cb, "", false)
}

// showExercise карточка упражнения: описание, теги, последние
// тренировки и картинка, если есть. Формат callback: exercise:{id}:{dayID},
// dayID=0 — просмотр вне контекста дня (из тегов).
func (b *Bot) showExercise(cb *tgbotapi.CallbackQuery, parts []string) {
	if len(parts) < 2 {
		return
	}
	exerciseID := parseID(parts[1])

	var dayID int64
	if len(parts) > 2 {
		dayID = parseID(parts[2])
	}

	exercise, err := b.repo.Exercise.GetByID(exerciseID)
	if err != nil {
		b.answerCallback(cb, "Упражнение не найдено", true)
		return
	}

	// Вне контекста дня берём первый день с этим упражнением
	if dayID == 0 {
		if days, err := b.repo.Exercise.GetDays(exerciseID); err == nil && len(days) > 0 {
			dayID = days[0].ID
		}
	}

	// Следующее упражнение дня для быстрого перехода
	var nextID int64
	if dayID != 0 {
		if exercises, err := b.repo.Exercise.GetByDay(dayID); err == nil {
			for i, ex := range exercises {
				if ex.ID == exerciseID && i+1 < len(exercises) {
					nextID = exercises[i+1].ID
					break
				}
			}
		}
	}

	text := b.exerciseCard(cb.From.ID, exercise)
	keyboard := exerciseDetailKeyboard(exerciseID, dayID, nextID, b.isAdmin(cb.From.ID))

	if exercise.ImageFileID != "" {
		b.sendExercisePhoto(cb, exercise.ImageFileID, text, keyboard)
	} else {
		b.editOrSend(cb, text, keyboard)
	}
	b.answerCallback(cb, "", false)
}

// exerciseCard собирает текст карточки: имя, теги, описание и
// последние две тренировки с группировкой одинаковых подходов.
func (b *Bot) exerciseCard(userID int64, exercise *models.Exercise) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "💪 %s\n", exercise.Name)

	if tags, err := b.repo.Exercise.GetTags(exercise.ID); err == nil && len(tags) > 0 {
		hashed := make([]string, len(tags))
		for i, t := range tags {
			hashed[i] = "#" + t
		}
		sb.WriteString("🏷 " + strings.Join(hashed, " ") + "\n")
	}

	if exercise.Description != "" {
		sb.WriteString("\n" + exercise.Description + "\n")
	}

	history, err := b.repo.Workout.GetHistory(userID, exercise.ID, 50)
	if err != nil || len(history) == 0 {
		return sb.String()
	}

	sb.WriteString("\n📊 История:\n")
	for _, date := range lastDates(history, 2) {
		sb.WriteString("  " + shortDate(date) + ": " + summarizeSets(history, date) + "\n")
	}
	return sb.String()
}

// lastDates возвращает до n последних дат из истории (история
// отсортирована по дате по убыванию)
func lastDates(history []models.WorkoutLog, n int) []string {
	var dates []string
	for _, log := range history {
		if len(dates) > 0 && dates[len(dates)-1] == log.Date {
			continue
		}
		if len(dates) == n {
			break
		}
		dates = append(dates, log.Date)
	}
	return dates
}

// summarizeSets сводит подходы одной даты: "90кг ×15×3, 80кг ×12"
func summarizeSets(history []models.WorkoutLog, date string) string {
	type group struct {
		weight float64
		reps   int
		count  int
	}
	var groups []group
	for _, log := range history {
		if log.Date != date {
			continue
		}
		merged := false
		for i := range groups {
			if groups[i].weight == log.Weight && groups[i].reps == log.Reps {
				groups[i].count++
				merged = true
				break
			}
		}
		if !merged {
			groups = append(groups, group{weight: log.Weight, reps: log.Reps, count: 1})
		}
	}

	parts := make([]string, len(groups))
	for i, g := range groups {
		s := fmt.Sprintf("%sкг ×%d", formatWeight(g.weight), g.reps)
		if g.count > 1 {
			s += fmt.Sprintf("×%d", g.count)
		}
		parts[i] = s
	}
	return strings.Join(parts, ", ")
}

func shortDate(date string) string {
	if d, err := time.Parse("2006-01-02", date); err == nil {
		return d.Format("02.01")
	}
	return date
}

// sendExercisePhoto заменяет текущее сообщение на фото с подписью
func (b *Bot) sendExercisePhoto(cb *tgbotapi.CallbackQuery, fileID, caption string, keyboard tgbotapi.InlineKeyboardMarkup) {
	chatID := cb.Message.Chat.ID

	del := tgbotapi.NewDeleteMessage(chatID, cb.Message.MessageID)
	if _, err := b.api.Request(del); err != nil {
		log.Printf("Failed to delete message [chat=%d]: %v", chatID, err)
	}

	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileID(fileID))
	photo.Caption = caption
	photo.ReplyMarkup = keyboard
	if _, err := b.api.Send(photo); err != nil {
		log.Printf("Failed to send photo [chat=%d]: %v", chatID, err)
		b.sendWithKeyboard(chatID, caption, keyboard)
	}
}

func (b *Bot) showTags(cb *tgbotapi.CallbackQuery) {
	tags, err := b.repo.Exercise.GetAllTags()
	if err != nil {
		b.answerCallback(cb, "Ошибка, попробуй позже", true)
		log.Printf("Ошибка списка тегов: %v", err)
		return
	}

	if len(tags) == 0 {
		b.answerCallback(cb, "Пока нет тегов", true)
		return
	}

	b.editOrSend(cb, "🏷 Выбери тег:", tagsKeyboard(tags))
	b.answerCallback(cb, "", false)
}

func (b *Bot) showTagExercises(cb *tgbotapi.CallbackQuery, parts []string) {
	if len(parts) < 2 {
		return
	}
	tagName := parts[1]

	exercises, err := b.repo.Exercise.GetByTag(tagName)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		b.answerCallback(cb, "Ошибка, попробуй позже", true)
		return
	}

	if len(exercises) == 0 {
		b.answerCallback(cb, "Нет упражнений с этим тегом", true)
		return
	}

	b.editOrSend(cb, fmt.Sprintf("🏷 #%s\n\nУпражнения:", tagName), tagExercisesKeyboard(exercises))
	b.answerCallback(cb, "", false)
}
