package bot

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/amzubkov/tg-gym/internal/models"
)

func row(buttons ...tgbotapi.InlineKeyboardButton) []tgbotapi.InlineKeyboardButton {
	return tgbotapi.NewInlineKeyboardRow(buttons...)
}

func btn(text, data string) tgbotapi.InlineKeyboardButton {
	return tgbotapi.NewInlineKeyboardButtonData(text, data)
}

// mainMenuKeyboard главное меню. Кнопка управления видна только админу,
// AI-кнопка — только при сконфигурированном клиенте.
func (b *Bot) mainMenuKeyboard(userID int64) tgbotapi.InlineKeyboardMarkup {
	rows := [][]tgbotapi.InlineKeyboardButton{
		row(btn("📋 Тренировки", "programs")),
		row(btn("🏷 По тегам", "tags")),
		row(btn("✍️ Свои упражнения", "custom")),
		row(btn("📈 Мой прогресс", "progress")),
		row(btn("📊 Моя статистика", "stats")),
	}
	if b.aiClient != nil {
		rows = append(rows, row(btn("🤖 AI упражнения", "ai")))
	}
	if b.isAdmin(userID) {
		rows = append(rows, row(btn("⚙️ Управление", "admin")))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func programsKeyboard(programs []models.Program, backData string) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, p := range programs {
		rows = append(rows, row(btn(p.Name, fmt.Sprintf("program:%d", p.ID))))
	}
	rows = append(rows, row(btn("« Назад", backData)))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func daysKeyboard(days []models.Day) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, d := range days {
		rows = append(rows, row(btn(dayTitle(d.DayNumber, d.Name), fmt.Sprintf("day:%d", d.ID))))
	}
	rows = append(rows, row(btn("« Назад", "programs")))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func exercisesKeyboard(exercises []models.Exercise, dayID, programID int64) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for i, ex := range exercises {
		label := fmt.Sprintf("%d. %s", i+1, ex.Name)
		rows = append(rows, row(btn(label, fmt.Sprintf("exercise:%d:%d", ex.ID, dayID))))
	}
	rows = append(rows, row(btn("« Назад", fmt.Sprintf("program:%d", programID))))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// exerciseDetailKeyboard кнопки карточки упражнения. nextID добавляет
// переход к следующему упражнению дня, для админа — правка тегов
// и перемещение в дне.
func exerciseDetailKeyboard(exerciseID, dayID, nextID int64, isAdmin bool) tgbotapi.InlineKeyboardMarkup {
	rows := [][]tgbotapi.InlineKeyboardButton{
		row(btn("💪 Записать подход", fmt.Sprintf("log:%d", exerciseID))),
		row(btn("📈 История", fmt.Sprintf("history:%d", exerciseID))),
	}
	if nextID != 0 {
		rows = append(rows, row(btn("➡️ Следующее", fmt.Sprintf("exercise:%d:%d", nextID, dayID))))
	}
	if isAdmin {
		rows = append(rows,
			row(btn("🏷 Теги", fmt.Sprintf("adm_tags:%d", exerciseID))),
			row(
				btn("⬆️", fmt.Sprintf("adm_move:%d:%d:up", exerciseID, dayID)),
				btn("⬇️", fmt.Sprintf("adm_move:%d:%d:down", exerciseID, dayID)),
			),
		)
	}
	if dayID != 0 {
		rows = append(rows, row(btn("« Назад", fmt.Sprintf("day:%d", dayID))))
	} else {
		rows = append(rows, row(btn("« В меню", "main")))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func backToExerciseKeyboard(exerciseID int64) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		row(btn("« Назад", fmt.Sprintf("exercise:%d:0", exerciseID))),
	)
}

func tagsKeyboard(tags []models.Tag) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, t := range tags {
		label := fmt.Sprintf("#%s (%d)", t.Name, t.ExerciseCount)
		rows = append(rows, row(btn(label, "tag:"+t.Name)))
	}
	rows = append(rows, row(btn("« Назад", "main")))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func tagExercisesKeyboard(exercises []models.Exercise) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, ex := range exercises {
		rows = append(rows, row(btn(ex.Name, fmt.Sprintf("exercise:%d:0", ex.ID))))
	}
	rows = append(rows, row(btn("« Назад", "tags")))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func cancelKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(row(btn("❌ Отмена", "cancel")))
}

func skipKeyboard(skipData string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		row(btn("Пропустить", skipData)),
		row(btn("❌ Отмена", "cancel")),
	)
}

// weightKeyboard быстрый выбор веса по типу упражнения. Ввод с
// клавиатуры при этом тоже принимается.
func weightKeyboard(weightType models.WeightType) tgbotapi.InlineKeyboardMarkup {
	var weights []float64
	switch weightType {
	case models.WeightTypeNone:
		weights = []float64{0}
	case models.WeightTypeBarbell:
		weights = []float64{20, 30, 40, 50, 60, 70, 80, 90, 100, 110, 120, 140}
	default:
		weights = []float64{4, 6, 8, 10, 12.5, 15, 17.5, 20, 25, 30, 35, 40}
	}

	var rows [][]tgbotapi.InlineKeyboardButton
	var current []tgbotapi.InlineKeyboardButton
	for _, w := range weights {
		label := formatWeight(w)
		if w == 0 {
			label = "Свой вес"
		}
		current = append(current, btn(label, "w:"+formatWeight(w)))
		if len(current) == 4 {
			rows = append(rows, current)
			current = nil
		}
	}
	if len(current) > 0 {
		rows = append(rows, current)
	}
	rows = append(rows, row(btn("❌ Отмена", "cancel")))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}
