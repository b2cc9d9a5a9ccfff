package bot

import (
	"errors"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/amzubkov/tg-gym/internal/dialog"
	"github.com/amzubkov/tg-gym/internal/models"
	"github.com/amzubkov/tg-gym/internal/repository"
)

// ==================== Добавление упражнения ====================

func (b *Bot) startAddExercise(cb *tgbotapi.CallbackQuery) {
	programs, err := b.repo.Program.GetAll()
	if err != nil || len(programs) == 0 {
		b.answerCallback(cb, "Сначала создай программу!", true)
		return
	}

	var rows [][]tgbotapi.InlineKeyboardButton
	for _, p := range programs {
		rows = append(rows, row(btn(p.Name, fmt.Sprintf("adm_ex_prog:%d", p.ID))))
	}
	rows = append(rows, row(btn("❌ Отмена", "cancel")))

	b.editOrSend(cb, "➕ Добавление упражнения\n\nВыбери программу:", tgbotapi.NewInlineKeyboardMarkup(rows...))
	b.answerCallback(cb, "", false)
}

func (b *Bot) selectExerciseProgram(cb *tgbotapi.CallbackQuery, parts []string) {
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
		b.answerCallback(cb, "В программе нет дней! Сначала добавь день.", true)
		return
	}

	var rows [][]tgbotapi.InlineKeyboardButton
	for _, d := range days {
		rows = append(rows, row(btn(dayTitle(d.DayNumber, d.Name), fmt.Sprintf("adm_ex_day:%d", d.ID))))
	}
	rows = append(rows, row(btn("❌ Отмена", "cancel")))

	b.editOrSend(cb,
		fmt.Sprintf("➕ Добавление упражнения в «%s»\n\nВыбери день:", program.Name),
		tgbotapi.NewInlineKeyboardMarkup(rows...))
	b.answerCallback(cb, "", false)
}

func (b *Bot) selectExerciseDay(cb *tgbotapi.CallbackQuery, parts []string) {
	if len(parts) < 2 {
		return
	}
	dayID := parseID(parts[1])

	day, err := b.repo.Program.GetDay(dayID)
	if err != nil {
		b.answerCallback(cb, "День не найден", true)
		return
	}

	existing := ""
	if exercises, err := b.repo.Exercise.GetByDay(dayID); err == nil && len(exercises) > 0 {
		names := make([]string, len(exercises))
		for i, ex := range exercises {
			names[i] = "• " + ex.Name
		}
		existing = "\n\nУже есть:\n" + strings.Join(names, "\n")
	}

	b.sessions.Set(cb.Message.Chat.ID, dialog.State{Step: dialog.StepAdminExerciseName, DayID: dayID})
	b.editOrSend(cb,
		fmt.Sprintf("➕ Упражнение в %s%s\n\nВведи название упражнения:", dayTitle(day.DayNumber, day.Name), existing),
		cancelKeyboard())
	b.answerCallback(cb, "", false)
}

func (b *Bot) processExerciseName(message *tgbotapi.Message, state dialog.State) {
	chatID := message.Chat.ID
	name := strings.TrimSpace(message.Text)

	if err := validateExerciseName(name); err != nil {
		b.sendWithKeyboard(chatID, err.Error()+". Попробуй ещё раз:", cancelKeyboard())
		return
	}

	state.Name = name
	state.Step = dialog.StepAdminExerciseDesc
	b.sessions.Set(chatID, state)

	b.sendWithKeyboard(chatID,
		fmt.Sprintf("Упражнение: %s\n\nВведи описание (или нажми Пропустить):\nНапример: 3×12, техника, подсказки", name),
		skipKeyboard("adm_ex_skipdesc"))
}

func (b *Bot) skipExerciseDescription(cb *tgbotapi.CallbackQuery) {
	chatID := cb.Message.Chat.ID
	state := b.sessions.Get(chatID)
	if state.Step != dialog.StepAdminExerciseDesc {
		b.answerCallback(cb, "", false)
		return
	}

	state.Step = dialog.StepAdminExerciseTags
	b.sessions.Set(chatID, state)
	b.editOrSend(cb, b.tagsPrompt(), skipKeyboard("adm_ex_skiptags"))
	b.answerCallback(cb, "", false)
}

func (b *Bot) processExerciseDescription(message *tgbotapi.Message, state dialog.State) {
	chatID := message.Chat.ID

	state.Description = strings.TrimSpace(message.Text)
	state.Step = dialog.StepAdminExerciseTags
	b.sessions.Set(chatID, state)

	b.sendWithKeyboard(chatID, b.tagsPrompt(), skipKeyboard("adm_ex_skiptags"))
}

func (b *Bot) tagsPrompt() string {
	hint := ""
	if tags, err := b.repo.Exercise.GetAllTags(); err == nil && len(tags) > 0 {
		names := make([]string, len(tags))
		for i, t := range tags {
			names[i] = t.Name
		}
		hint = "\n\nИспользуемые теги: " + strings.Join(names, ", ")
	}
	return "Введи теги через запятую (группы мышц)" + hint + "\n\nНапример: бицепс, спина\n(или нажми Пропустить)"
}

func (b *Bot) skipExerciseTags(cb *tgbotapi.CallbackQuery) {
	chatID := cb.Message.Chat.ID
	state := b.sessions.Get(chatID)
	if state.Step != dialog.StepAdminExerciseTags || state.DayID == 0 {
		b.answerCallback(cb, "", false)
		return
	}

	b.sessions.Set(chatID, state)
	b.askWeightType(cb)
}

// processExerciseTags два режима: шаг создания упражнения (DayID задан)
// и правка тегов существующего (ExerciseID задан)
func (b *Bot) processExerciseTags(message *tgbotapi.Message, state dialog.State) {
	chatID := message.Chat.ID
	tags := strings.TrimSpace(message.Text)

	if state.ExerciseID != 0 {
		b.saveEditedTags(message, state, tags)
		return
	}

	state.Tags = tags
	b.sessions.Set(chatID, state)

	b.sendWithKeyboard(chatID,
		fmt.Sprintf("Теги: %s\n\nВыбери тип веса для упражнения:", tags),
		weightTypeKeyboard())
}

func weightTypeKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		row(btn("Без веса", "adm_ex_wt:0")),
		row(btn("Гантели", "adm_ex_wt:10")),
		row(btn("Штанга", "adm_ex_wt:100")),
		row(btn("❌ Отмена", "cancel")),
	)
}

func (b *Bot) askWeightType(cb *tgbotapi.CallbackQuery) {
	b.editOrSend(cb, "Выбери тип веса для упражнения:", weightTypeKeyboard())
	b.answerCallback(cb, "", false)
}

func (b *Bot) selectExerciseWeightType(cb *tgbotapi.CallbackQuery, parts []string) {
	if len(parts) < 2 {
		return
	}
	chatID := cb.Message.Chat.ID
	state := b.sessions.Get(chatID)
	if state.Step != dialog.StepAdminExerciseTags || state.DayID == 0 {
		b.answerCallback(cb, "", false)
		return
	}

	state.WeightType = int(parseID(parts[1]))
	state.Step = dialog.StepAdminExerciseImage
	b.sessions.Set(chatID, state)

	typeNames := map[int]string{0: "без веса", 10: "гантели", 100: "штанга"}
	b.editOrSend(cb,
		fmt.Sprintf("Тип веса: %s\n\nТеперь отправь картинку упражнения (или нажми Пропустить):", typeNames[state.WeightType]),
		skipKeyboard("adm_ex_skipimg"))
	b.answerCallback(cb, "", false)
}

func (b *Bot) processExerciseImage(message *tgbotapi.Message, state dialog.State) {
	chatID := message.Chat.ID

	if len(message.Photo) == 0 {
		b.sendWithKeyboard(chatID, "Отправь картинку как фото, или нажми Пропустить:", skipKeyboard("adm_ex_skipimg"))
		return
	}

	// Самое большое фото
	fileID := message.Photo[len(message.Photo)-1].FileID
	b.createExercise(chatID, state, fileID)
}

func (b *Bot) finishAddExercise(cb *tgbotapi.CallbackQuery) {
	chatID := cb.Message.Chat.ID
	state := b.sessions.Get(chatID)
	if state.Step != dialog.StepAdminExerciseImage {
		b.answerCallback(cb, "", false)
		return
	}

	b.createExercise(chatID, state, "")
	b.answerCallback(cb, "", false)
}

func (b *Bot) createExercise(chatID int64, state dialog.State, imageFileID string) {
	exerciseID, err := b.repo.Exercise.Create(state.Name, state.Description, imageFileID, models.WeightType(state.WeightType))
	if err != nil {
		b.sendError(chatID, "Не получилось создать упражнение", err)
		return
	}

	if err := b.repo.Exercise.AddToDay(exerciseID, state.DayID); err != nil {
		b.sendError(chatID, "Упражнение создано, но не добавлено в день", err)
	}

	tagText := ""
	if tags := splitTags(state.Tags); len(tags) > 0 {
		if err := b.repo.Exercise.SetTags(exerciseID, tags); err != nil {
			b.sendError(chatID, "Упражнение создано, но теги не сохранены", err)
		} else {
			tagText = " (#" + strings.Join(tags, " #") + ")"
		}
	}

	b.sessions.Clear(chatID)
	b.sendWithKeyboard(chatID, fmt.Sprintf("✅ Упражнение «%s»%s добавлено!", state.Name, tagText), adminPanelKeyboard())
}

func splitTags(s string) []string {
	var tags []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.ToLower(strings.TrimSpace(part)); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// ==================== Удаление упражнения ====================

// startDeleteExercise плоский список всей библиотеки: упражнение может
// быть не привязано ни к одному дню, через выбор дня до него не добраться
func (b *Bot) startDeleteExercise(cb *tgbotapi.CallbackQuery) {
	exercises, err := b.repo.Exercise.GetAll()
	if err != nil || len(exercises) == 0 {
		b.answerCallback(cb, "Нет упражнений", true)
		return
	}

	var rows [][]tgbotapi.InlineKeyboardButton
	for _, ex := range exercises {
		rows = append(rows, row(btn("🗑 "+ex.Name, fmt.Sprintf("adm_del_ex_do:%d", ex.ID))))
	}
	rows = append(rows, row(btn("« Назад", "adm_del")))

	b.editOrSend(cb, "🗑 Выбери упражнение для удаления:", tgbotapi.NewInlineKeyboardMarkup(rows...))
	b.answerCallback(cb, "", false)
}

func (b *Bot) doDeleteExercise(cb *tgbotapi.CallbackQuery, parts []string) {
	if len(parts) < 2 {
		return
	}
	exerciseID := parseID(parts[1])

	exercise, err := b.repo.Exercise.GetByID(exerciseID)
	if err != nil {
		b.answerCallback(cb, "Упражнение не найдено", true)
		return
	}

	if err := b.repo.Exercise.Delete(exerciseID); err != nil {
		b.answerCallback(cb, "Не получилось удалить", true)
		return
	}

	b.editOrSend(cb, fmt.Sprintf("✅ Упражнение «%s» удалено!", exercise.Name), adminPanelKeyboard())
	b.answerCallback(cb, "", false)
}

// ==================== Перемещение в дне ====================

// moveExercise adm_move:{exerciseID}:{dayID}:{up|down}
func (b *Bot) moveExercise(cb *tgbotapi.CallbackQuery, parts []string) {
	if len(parts) < 4 {
		return
	}
	exerciseID := parseID(parts[1])
	dayID := parseID(parts[2])

	direction := repository.MoveUp
	if parts[3] == "down" {
		direction = repository.MoveDown
	}

	err := b.repo.Exercise.MoveInDay(exerciseID, dayID, direction)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		b.answerCallback(cb, "Упражнение не привязано к этому дню", true)
		return
	case err != nil:
		b.answerCallback(cb, "Не получилось переместить", true)
		return
	}

	// Показываем день с новым порядком
	b.showDayExercises(cb, []string{"day", parts[2]})
}

// ==================== Правка тегов ====================

func (b *Bot) startEditTags(cb *tgbotapi.CallbackQuery, parts []string) {
	if len(parts) < 2 {
		return
	}
	exerciseID := parseID(parts[1])

	exercise, err := b.repo.Exercise.GetByID(exerciseID)
	if err != nil {
		b.answerCallback(cb, "Упражнение не найдено", true)
		return
	}

	current := "Теги не установлены"
	if tags, err := b.repo.Exercise.GetTags(exerciseID); err == nil && len(tags) > 0 {
		current = "Текущие теги: #" + strings.Join(tags, " #")
	}

	b.sessions.Set(cb.Message.Chat.ID, dialog.State{Step: dialog.StepAdminExerciseTags, ExerciseID: exerciseID})
	b.editOrSend(cb,
		fmt.Sprintf("🏷 Теги для «%s»\n\n%s\n\nВведи новые теги через запятую\n(или «-» чтобы убрать все):", exercise.Name, current),
		cancelKeyboard())
	b.answerCallback(cb, "", false)
}

func (b *Bot) saveEditedTags(message *tgbotapi.Message, state dialog.State, input string) {
	chatID := message.Chat.ID

	var tags []string
	if input != "-" {
		tags = splitTags(input)
	}

	if err := b.repo.Exercise.SetTags(state.ExerciseID, tags); err != nil {
		b.sendError(chatID, "Не получилось сохранить теги", err)
		return
	}

	b.sessions.Clear(chatID)

	text := "✅ Теги убраны"
	if len(tags) > 0 {
		text = "✅ Теги: #" + strings.Join(tags, " #")
	}
	b.sendWithKeyboard(chatID, text, backToExerciseKeyboard(state.ExerciseID))
}
