package bot

import (
	"errors"
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/amzubkov/tg-gym/internal/models"
	"github.com/amzubkov/tg-gym/internal/repository"
)

// showProgress текущее положение в активной программе
func (b *Bot) showProgress(cb *tgbotapi.CallbackQuery) {
	progress, err := b.repo.Progress.Get(cb.From.ID)
	if err != nil {
		b.answerCallback(cb, "Ошибка, попробуй позже", true)
		log.Printf("Ошибка прогресса [user=%d]: %v", cb.From.ID, err)
		return
	}

	switch progress.State {
	case models.ProgressInProgress:
		text := fmt.Sprintf("📈 %s\n\nТекущий день: %d из %d", progress.Program.Name, progress.CurrentDayNum, progress.TotalDays)
		if progress.LastCompletedDate != "" {
			text += "\nПоследняя тренировка: " + shortDate(progress.LastCompletedDate)
		}
		keyboard := tgbotapi.NewInlineKeyboardMarkup(
			row(btn(fmt.Sprintf("✅ День %d выполнен", progress.CurrentDayNum), "prog_done")),
			row(btn("📋 Открыть день", b.currentDayCallback(progress))),
			row(btn("🔄 Сменить программу", "prog_pick")),
			row(btn("❌ Сбросить", "prog_reset")),
			row(btn("« Назад", "main")),
		)
		b.editOrSend(cb, text, keyboard)

	case models.ProgressFinished:
		text := fmt.Sprintf("🎉 Программа «%s» завершена!\n\nМожно пройти её ещё раз или выбрать другую.", progress.Program.Name)
		keyboard := tgbotapi.NewInlineKeyboardMarkup(
			row(btn("🔁 Начать заново", fmt.Sprintf("prog_select:%d", progress.Program.ID))),
			row(btn("📋 Выбрать программу", "prog_pick")),
			row(btn("« Назад", "main")),
		)
		b.editOrSend(cb, text, keyboard)

	default:
		b.showProgressPrograms(cb)
		return
	}
	b.answerCallback(cb, "", false)
}

// currentDayCallback callback дня, на котором стоит пользователь
func (b *Bot) currentDayCallback(progress *models.Progress) string {
	day, err := b.repo.Program.GetDayByNumber(progress.Program.ID, progress.CurrentDayNum)
	if err != nil {
		return "progress"
	}
	return fmt.Sprintf("day:%d", day.ID)
}

func (b *Bot) showProgressPrograms(cb *tgbotapi.CallbackQuery) {
	programs, err := b.repo.Program.GetAll()
	if err != nil {
		b.answerCallback(cb, "Ошибка, попробуй позже", true)
		return
	}
	if len(programs) == 0 {
		b.answerCallback(cb, "Пока нет программ", true)
		return
	}

	var rows [][]tgbotapi.InlineKeyboardButton
	for _, p := range programs {
		rows = append(rows, row(btn(p.Name, fmt.Sprintf("prog_select:%d", p.ID))))
	}
	rows = append(rows, row(btn("« Назад", "main")))

	b.editOrSend(cb, "📈 По какой программе будешь заниматься?", tgbotapi.NewInlineKeyboardMarkup(rows...))
	b.answerCallback(cb, "", false)
}

func (b *Bot) selectProgressProgram(cb *tgbotapi.CallbackQuery, parts []string) {
	if len(parts) < 2 {
		return
	}
	programID := parseID(parts[1])

	err := b.repo.Progress.SetProgram(cb.From.ID, programID)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		b.answerCallback(cb, "Программа не найдена", true)
		return
	case errors.Is(err, repository.ErrNoDays):
		b.answerCallback(cb, "В программе нет дней", true)
		return
	case err != nil:
		b.answerCallback(cb, "Ошибка, попробуй позже", true)
		log.Printf("Ошибка выбора программы [user=%d]: %v", cb.From.ID, err)
		return
	}

	b.showProgress(cb)
}

func (b *Bot) completeProgressDay(cb *tgbotapi.CallbackQuery) {
	status, err := b.repo.Progress.CompleteDay(cb.From.ID, today())
	if err != nil {
		b.answerCallback(cb, "Ошибка, попробуй позже", true)
		log.Printf("Ошибка завершения дня [user=%d]: %v", cb.From.ID, err)
		return
	}

	switch status {
	case models.CompleteDayFinished:
		b.answerCallback(cb, "Программа завершена! 🎉", true)
	case models.CompleteDayNoProgram:
		b.answerCallback(cb, "Нет активной программы", true)
	default:
		b.answerCallback(cb, "День записан 💪", false)
	}
	b.showProgress(cb)
}

func (b *Bot) resetProgress(cb *tgbotapi.CallbackQuery) {
	if err := b.repo.Progress.Clear(cb.From.ID); err != nil {
		b.answerCallback(cb, "Ошибка, попробуй позже", true)
		return
	}
	b.answerCallback(cb, "Прогресс сброшен", false)
	b.editOrSend(cb, mainMenuText, b.mainMenuKeyboard(cb.From.ID))
}
