package bot

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/amzubkov/tg-gym/internal/dialog"
	"github.com/amzubkov/tg-gym/internal/repository"
)

// ==================== Добавление программы ====================

func (b *Bot) startAddProgram(cb *tgbotapi.CallbackQuery) {
	b.sessions.Set(cb.Message.Chat.ID, dialog.State{Step: dialog.StepAdminProgramName})
	b.editOrSend(cb,
		"➕ Добавление программы\n\nВведи название программы (например: PPL, Full Body):",
		cancelKeyboard())
	b.answerCallback(cb, "", false)
}

func (b *Bot) processProgramName(message *tgbotapi.Message) {
	chatID := message.Chat.ID
	name := strings.TrimSpace(message.Text)

	if err := validateProgramName(name); err != nil {
		b.sendWithKeyboard(chatID, err.Error()+". Попробуй ещё раз:", cancelKeyboard())
		return
	}

	_, err := b.repo.Program.Create(name)
	switch {
	case errors.Is(err, repository.ErrDuplicate):
		b.sendWithKeyboard(chatID, "Программа с таким именем уже существует. Введи другое:", cancelKeyboard())
		return
	case err != nil:
		b.sendError(chatID, "Не получилось создать программу", err)
		return
	}

	b.sessions.Clear(chatID)
	b.sendWithKeyboard(chatID, fmt.Sprintf("✅ Программа «%s» создана!", name), adminPanelKeyboard())
}

// ==================== Добавление дня ====================

func (b *Bot) startAddDay(cb *tgbotapi.CallbackQuery) {
	programs, err := b.repo.Program.GetAll()
	if err != nil || len(programs) == 0 {
		b.answerCallback(cb, "Сначала создай программу!", true)
		return
	}

	var rows [][]tgbotapi.InlineKeyboardButton
	for _, p := range programs {
		rows = append(rows, row(btn(p.Name, fmt.Sprintf("adm_day_prog:%d", p.ID))))
	}
	rows = append(rows, row(btn("❌ Отмена", "cancel")))

	b.editOrSend(cb, "➕ Добавление дня\n\nВыбери программу:", tgbotapi.NewInlineKeyboardMarkup(rows...))
	b.answerCallback(cb, "", false)
}

func (b *Bot) selectDayProgram(cb *tgbotapi.CallbackQuery, parts []string) {
	if len(parts) < 2 {
		return
	}
	programID := parseID(parts[1])

	program, err := b.repo.Program.GetByID(programID)
	if err != nil {
		b.answerCallback(cb, "Программа не найдена", true)
		return
	}

	existing := ""
	if days, err := b.repo.Program.GetDays(programID); err == nil && len(days) > 0 {
		numbers := make([]string, len(days))
		for i, d := range days {
			numbers[i] = strconv.Itoa(d.DayNumber)
		}
		existing = "\n\nУже есть дни: " + strings.Join(numbers, ", ")
	}

	b.sessions.Set(cb.Message.Chat.ID, dialog.State{Step: dialog.StepAdminDayName, ProgramID: programID})
	b.editOrSend(cb,
		fmt.Sprintf("➕ Добавление дня в «%s»%s\n\nВведи номер дня и название, например:\n3 Ноги\nили просто номер:", program.Name, existing),
		cancelKeyboard())
	b.answerCallback(cb, "", false)
}

// processDayInput ввод вида "3 Ноги" или "3"
func (b *Bot) processDayInput(message *tgbotapi.Message, state dialog.State) {
	chatID := message.Chat.ID
	text := strings.TrimSpace(message.Text)

	numberPart, namePart, _ := strings.Cut(text, " ")
	dayNumber, err := strconv.Atoi(numberPart)
	if err != nil || dayNumber < 1 || dayNumber > 100 {
		b.sendWithKeyboard(chatID, "Введи корректный номер дня (1-100):", cancelKeyboard())
		return
	}
	name := strings.TrimSpace(namePart)

	_, err = b.repo.Program.CreateDay(state.ProgramID, dayNumber, name)
	switch {
	case errors.Is(err, repository.ErrDuplicate):
		b.sendWithKeyboard(chatID, "Такой день уже существует. Введи другой номер:", cancelKeyboard())
		return
	case err != nil:
		b.sendError(chatID, "Не получилось создать день", err)
		return
	}

	b.sessions.Clear(chatID)
	b.sendWithKeyboard(chatID, fmt.Sprintf("✅ %s добавлен!", dayTitle(dayNumber, name)), adminPanelKeyboard())
}

// ==================== Удаление ====================

func (b *Bot) showDeleteMenu(cb *tgbotapi.CallbackQuery) {
	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		row(btn("🗑 Удалить программу", "adm_del_prog")),
		row(btn("🗑 Удалить день", "adm_del_day")),
		row(btn("🗑 Удалить упражнение", "adm_del_ex")),
		row(btn("« Назад", "admin")),
	)
	b.editOrSend(cb, "🗑 Удаление\n\nЧто удалить?", keyboard)
	b.answerCallback(cb, "", false)
}

func (b *Bot) startDeleteProgram(cb *tgbotapi.CallbackQuery) {
	programs, err := b.repo.Program.GetAll()
	if err != nil || len(programs) == 0 {
		b.answerCallback(cb, "Нет программ для удаления", true)
		return
	}

	var rows [][]tgbotapi.InlineKeyboardButton
	for _, p := range programs {
		rows = append(rows, row(btn("🗑 "+p.Name, fmt.Sprintf("adm_del_prog_c:%d", p.ID))))
	}
	rows = append(rows, row(btn("« Назад", "adm_del")))

	b.editOrSend(cb, "🗑 Удаление программы\n\nВыбери программу:", tgbotapi.NewInlineKeyboardMarkup(rows...))
	b.answerCallback(cb, "", false)
}

func (b *Bot) confirmDeleteProgram(cb *tgbotapi.CallbackQuery, parts []string) {
	if len(parts) < 2 {
		return
	}
	programID := parseID(parts[1])

	program, err := b.repo.Program.GetByID(programID)
	if err != nil {
		b.answerCallback(cb, "Программа не найдена", true)
		return
	}

	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		row(
			btn("✅ Да, удалить", fmt.Sprintf("adm_del_prog_do:%d", programID)),
			btn("❌ Нет", "adm_del_prog"),
		),
	)
	b.editOrSend(cb,
		fmt.Sprintf("⚠️ Удалить программу «%s»?\n\nЭто удалит все дни и упражнения в ней!", program.Name),
		keyboard)
	b.answerCallback(cb, "", false)
}

func (b *Bot) doDeleteProgram(cb *tgbotapi.CallbackQuery, parts []string) {
	if len(parts) < 2 {
		return
	}
	programID := parseID(parts[1])

	program, err := b.repo.Program.GetByID(programID)
	if err != nil {
		b.answerCallback(cb, "Программа не найдена", true)
		return
	}

	if err := b.repo.Program.Delete(programID); err != nil {
		b.answerCallback(cb, "Не получилось удалить", true)
		return
	}

	b.editOrSend(cb, fmt.Sprintf("✅ Программа «%s» удалена!", program.Name), adminPanelKeyboard())
	b.answerCallback(cb, "", false)
}

func (b *Bot) startDeleteDay(cb *tgbotapi.CallbackQuery) {
	programs, err := b.repo.Program.GetAll()
	if err != nil || len(programs) == 0 {
		b.answerCallback(cb, "Нет программ", true)
		return
	}

	var rows [][]tgbotapi.InlineKeyboardButton
	for _, p := range programs {
		rows = append(rows, row(btn(p.Name, fmt.Sprintf("adm_del_day_p:%d", p.ID))))
	}
	rows = append(rows, row(btn("« Назад", "adm_del")))

	b.editOrSend(cb, "🗑 Удаление дня\n\nВыбери программу:", tgbotapi.NewInlineKeyboardMarkup(rows...))
	b.answerCallback(cb, "", false)
}

func (b *Bot) selectDeleteDay(cb *tgbotapi.CallbackQuery, parts []string) {
	if len(parts) < 2 {
		return
	}
	days, err := b.repo.Program.GetDays(parseID(parts[1]))
	if err != nil || len(days) == 0 {
		b.answerCallback(cb, "В программе нет дней", true)
		return
	}

	var rows [][]tgbotapi.InlineKeyboardButton
	for _, d := range days {
		rows = append(rows, row(btn("🗑 "+dayTitle(d.DayNumber, d.Name), fmt.Sprintf("adm_del_day_do:%d", d.ID))))
	}
	rows = append(rows, row(btn("« Назад", "adm_del_day")))

	b.editOrSend(cb, "🗑 Выбери день для удаления:", tgbotapi.NewInlineKeyboardMarkup(rows...))
	b.answerCallback(cb, "", false)
}

func (b *Bot) doDeleteDay(cb *tgbotapi.CallbackQuery, parts []string) {
	if len(parts) < 2 {
		return
	}
	dayID := parseID(parts[1])

	day, err := b.repo.Program.GetDay(dayID)
	if err != nil {
		b.answerCallback(cb, "День не найден", true)
		return
	}

	if err := b.repo.Program.DeleteDay(dayID); err != nil {
		b.answerCallback(cb, "Не получилось удалить", true)
		return
	}

	b.editOrSend(cb, fmt.Sprintf("✅ %s удалён!", dayTitle(day.DayNumber, day.Name)), adminPanelKeyboard())
	b.answerCallback(cb, "", false)
}
