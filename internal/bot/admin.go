package bot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/amzubkov/tg-gym/internal/dialog"
)

func adminPanelKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		row(btn("➕ Добавить программу", "adm_prog_add")),
		row(btn("➕ Добавить день", "adm_day_add")),
		row(btn("➕ Добавить упражнение", "adm_ex_add")),
		row(btn("🗑 Удалить...", "adm_del")),
		row(btn("👥 Пользователи", "adm_users")),
		row(btn("🎟 Инвайт-коды", "adm_invites")),
		row(btn("« Назад", "main")),
	)
}

func (b *Bot) handleAdminCallback(cb *tgbotapi.CallbackQuery, parts []string) {
	switch parts[0] {
	case "adm_prog_add":
		b.startAddProgram(cb)
	case "adm_day_add":
		b.startAddDay(cb)
	case "adm_day_prog":
		b.selectDayProgram(cb, parts)
	case "adm_ex_add":
		b.startAddExercise(cb)
	case "adm_ex_prog":
		b.selectExerciseProgram(cb, parts)
	case "adm_ex_day":
		b.selectExerciseDay(cb, parts)
	case "adm_ex_skipdesc":
		b.skipExerciseDescription(cb)
	case "adm_ex_skiptags":
		b.skipExerciseTags(cb)
	case "adm_ex_wt":
		b.selectExerciseWeightType(cb, parts)
	case "adm_ex_skipimg":
		b.finishAddExercise(cb)
	case "adm_del":
		b.showDeleteMenu(cb)
	case "adm_del_prog":
		b.startDeleteProgram(cb)
	case "adm_del_prog_c":
		b.confirmDeleteProgram(cb, parts)
	case "adm_del_prog_do":
		b.doDeleteProgram(cb, parts)
	case "adm_del_day":
		b.startDeleteDay(cb)
	case "adm_del_day_p":
		b.selectDeleteDay(cb, parts)
	case "adm_del_day_do":
		b.doDeleteDay(cb, parts)
	case "adm_del_ex":
		b.startDeleteExercise(cb)
	case "adm_del_ex_do":
		b.doDeleteExercise(cb, parts)
	case "adm_move":
		b.moveExercise(cb, parts)
	case "adm_tags":
		b.startEditTags(cb, parts)
	case "adm_users":
		b.showUsers(cb)
	case "adm_user_del":
		b.removeUser(cb, parts)
	case "adm_user_add":
		b.startAddUser(cb)
	case "adm_invites":
		b.showInviteCodes(cb)
	case "adm_invite_new":
		b.createInviteCode(cb)
	default:
		b.answerCallback(cb, "", false)
	}
}

func (b *Bot) showAdminPanel(cb *tgbotapi.CallbackQuery) {
	b.sessions.Clear(cb.Message.Chat.ID)
	b.editOrSend(cb,
		"⚙️ Панель управления\n\nЗдесь можно добавлять программы, дни и упражнения.",
		adminPanelKeyboard())
	b.answerCallback(cb, "", false)
}

// handleAdminInput текстовый ввод админских диалогов
func (b *Bot) handleAdminInput(message *tgbotapi.Message, state dialog.State) {
	if !b.isAdmin(message.From.ID) {
		b.sessions.Clear(message.Chat.ID)
		return
	}

	switch state.Step {
	case dialog.StepAdminProgramName:
		b.processProgramName(message)
	case dialog.StepAdminDayName:
		b.processDayInput(message, state)
	case dialog.StepAdminExerciseName:
		b.processExerciseName(message, state)
	case dialog.StepAdminExerciseDesc:
		b.processExerciseDescription(message, state)
	case dialog.StepAdminExerciseTags:
		b.processExerciseTags(message, state)
	case dialog.StepAdminExerciseImage:
		b.processExerciseImage(message, state)
	case dialog.StepAdminAddUser:
		b.processAddUser(message)
	}
}
