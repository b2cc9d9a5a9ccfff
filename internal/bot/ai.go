package bot

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/amzubkov/tg-gym/clients/ai"
	"github.com/amzubkov/tg-gym/internal/dialog"
)

// Выбор групп мышц живёт в состоянии диалога как список ключей через
// запятую, toggleMuscleKey переключает один ключ.
func parseMuscles(s string) map[string]bool {
	selected := make(map[string]bool)
	for _, key := range strings.Split(s, ",") {
		if key = strings.TrimSpace(key); key != "" {
			selected[key] = true
		}
	}
	return selected
}

func formatMuscles(selected map[string]bool) string {
	keys := make([]string, 0, len(selected))
	for key, on := range selected {
		if on {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return strings.Join(keys, ",")
}

func toggleMuscleKey(s, key string) string {
	selected := parseMuscles(s)
	if selected[key] {
		delete(selected, key)
	} else {
		selected[key] = true
	}
	return formatMuscles(selected)
}

func musclesKeyboard(selected map[string]bool) tgbotapi.InlineKeyboardMarkup {
	keys := make([]string, 0, len(ai.MuscleGroups))
	for key := range ai.MuscleGroups {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var rows [][]tgbotapi.InlineKeyboardButton
	for _, key := range keys {
		label := ai.MuscleGroups[key]
		if selected[key] {
			label = "✓ " + label
		}
		rows = append(rows, row(btn(label, "muscle:"+key)))
	}
	if len(selected) > 0 {
		rows = append(rows, row(btn("🤖 Сгенерировать", "ai_go")))
	}
	rows = append(rows, row(btn("« Назад", "main")))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

const musclesPrompt = "🤖 Выбери группы мышц для тренировки:\n\n(можно выбрать несколько)"

func (b *Bot) startAIGenerate(cb *tgbotapi.CallbackQuery) {
	if b.aiClient == nil {
		b.answerCallback(cb, "AI недоступен", true)
		return
	}

	b.sessions.Set(cb.Message.Chat.ID, dialog.State{Step: dialog.StepAIMuscles})
	b.editOrSend(cb, musclesPrompt, musclesKeyboard(nil))
	b.answerCallback(cb, "", false)
}

func (b *Bot) toggleMuscle(cb *tgbotapi.CallbackQuery, parts []string) {
	if len(parts) < 2 {
		return
	}
	key := parts[1]
	if _, ok := ai.MuscleGroups[key]; !ok {
		b.answerCallback(cb, "", false)
		return
	}

	chatID := cb.Message.Chat.ID
	st := b.sessions.Get(chatID)
	st.Step = dialog.StepAIMuscles
	st.Muscles = toggleMuscleKey(st.Muscles, key)
	b.sessions.Set(chatID, st)

	b.editOrSend(cb, musclesPrompt, musclesKeyboard(parseMuscles(st.Muscles)))
	b.answerCallback(cb, "", false)
}

func (b *Bot) generateExercises(cb *tgbotapi.CallbackQuery) {
	if b.aiClient == nil {
		b.answerCallback(cb, "AI недоступен", true)
		return
	}

	chatID := cb.Message.Chat.ID
	selected := parseMuscles(b.sessions.Get(chatID).Muscles)
	if len(selected) == 0 {
		b.answerCallback(cb, "Выбери хотя бы одну группу мышц", true)
		return
	}

	muscles := make([]string, 0, len(selected))
	for key := range selected {
		muscles = append(muscles, ai.MuscleGroups[key])
	}
	sort.Strings(muscles)

	b.editOrSend(cb, "🤖 Генерирую упражнения...", tgbotapi.NewInlineKeyboardMarkup(row(btn("« В меню", "main"))))
	b.answerCallback(cb, "", false)

	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	result, err := b.aiClient.GenerateExercises(ctx, muscles, 5)
	if err != nil {
		log.Printf("Ошибка генерации [chat=%d]: %v", chatID, err)
		b.sendWithKeyboard(chatID,
			"❌ Не удалось сгенерировать упражнения, попробуй позже.",
			tgbotapi.NewInlineKeyboardMarkup(
				row(btn("🔄 Ещё раз", "ai")),
				row(btn("« В меню", "main")),
			))
		return
	}

	b.sessions.Clear(chatID)

	b.sendWithKeyboard(chatID,
		fmt.Sprintf("🤖 Упражнения на %s:\n\n%s", strings.Join(muscles, ", "), result),
		tgbotapi.NewInlineKeyboardMarkup(
			row(btn("🔄 Ещё раз", "ai")),
			row(btn("« В меню", "main")),
		))
}
