package bot

import (
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/amzubkov/tg-gym/internal/dialog"
)

const (
	commandStart = "start"
	commandMenu  = "menu"
)

const mainMenuText = "Выбери программу и записывай свои результаты."

func (b *Bot) handleMessage(message *tgbotapi.Message) {
	if message.From == nil {
		return
	}

	chatID := message.Chat.ID
	userID := message.From.ID
	state := b.sessions.Get(chatID)

	if message.IsCommand() {
		b.handleCommand(message)
		return
	}

	// Ввод кода доступа разрешён и без доступа
	if state.Step == dialog.StepAccessCode {
		b.handleAccessCode(message)
		return
	}

	if !b.hasAccess(userID) {
		b.sendMessage(chatID, "У тебя нет доступа. Нажми /start и введи код доступа.")
		return
	}

	switch state.Step {
	case dialog.StepLogWeight, dialog.StepLogReps:
		b.handleLogInput(message, state)
	case dialog.StepCustomName:
		b.handleCustomName(message)
	case dialog.StepCustomWeight, dialog.StepCustomReps:
		b.handleCustomInput(message, state)
	case dialog.StepAdminProgramName, dialog.StepAdminDayName,
		dialog.StepAdminExerciseName, dialog.StepAdminExerciseDesc,
		dialog.StepAdminExerciseImage, dialog.StepAdminExerciseTags,
		dialog.StepAdminAddUser:
		b.handleAdminInput(message, state)
	default:
		b.sendWithKeyboard(chatID, mainMenuText, b.mainMenuKeyboard(userID))
	}
}

func (b *Bot) handleCommand(message *tgbotapi.Message) {
	chatID := message.Chat.ID
	userID := message.From.ID

	switch message.Command() {
	case commandStart:
		b.handleStart(message)
	case commandMenu:
		if !b.hasAccess(userID) {
			b.sendMessage(chatID, "У тебя нет доступа. Нажми /start и введи код доступа.")
			return
		}
		b.sessions.Clear(chatID)
		b.sendWithKeyboard(chatID, mainMenuText, b.mainMenuKeyboard(userID))
	default:
		if !b.hasAccess(userID) {
			b.sendMessage(chatID, "У тебя нет доступа. Нажми /start и введи код доступа.")
			return
		}
		b.sendMessage(chatID, "Пока я такого не умею =(")
	}
}

func (b *Bot) handleCallback(cb *tgbotapi.CallbackQuery) {
	if cb.Message == nil || cb.From == nil {
		return
	}

	userID := cb.From.ID
	if !b.hasAccess(userID) {
		b.answerCallback(cb, "Нет доступа. Нажми /start", true)
		return
	}

	parts := callbackParts(cb.Data)

	switch parts[0] {
	case "main":
		b.showMainMenu(cb)
	case "cancel":
		b.handleCancel(cb)
	case "programs":
		b.showPrograms(cb)
	case "program":
		b.showProgramDays(cb, parts)
	case "day":
		b.showDayExercises(cb, parts)
	case "exercise":
		b.showExercise(cb, parts)
	case "tags":
		b.showTags(cb)
	case "tag":
		b.showTagExercises(cb, parts)
	case "log":
		b.startLogging(cb, parts)
	case "w":
		b.handleQuickWeight(cb, parts)
	case "history":
		b.showHistory(cb, parts)
	case "stats":
		b.showStats(cb)
	case "custom":
		b.startCustomMode(cb)
	case "custom_history":
		b.showCustomHistory(cb)
	case "custom_finish":
		b.finishCustomMode(cb)
	case "progress":
		b.showProgress(cb)
	case "prog_pick":
		b.showProgressPrograms(cb)
	case "prog_select":
		b.selectProgressProgram(cb, parts)
	case "prog_done":
		b.completeProgressDay(cb)
	case "prog_reset":
		b.resetProgress(cb)
	case "ai":
		b.startAIGenerate(cb)
	case "muscle":
		b.toggleMuscle(cb, parts)
	case "ai_go":
		b.generateExercises(cb)
	case "admin":
		if !b.isAdmin(userID) {
			b.answerCallback(cb, "Только для админа", true)
			return
		}
		b.showAdminPanel(cb)
	default:
		if strings.HasPrefix(parts[0], "adm_") {
			if !b.isAdmin(userID) {
				b.answerCallback(cb, "Только для админа", true)
				return
			}
			b.handleAdminCallback(cb, parts)
			return
		}
		b.answerCallback(cb, "", false)
	}
}

func (b *Bot) showMainMenu(cb *tgbotapi.CallbackQuery) {
	b.sessions.Clear(cb.Message.Chat.ID)
	b.editOrSend(cb, mainMenuText, b.mainMenuKeyboard(cb.From.ID))
	b.answerCallback(cb, "", false)
}

func (b *Bot) handleCancel(cb *tgbotapi.CallbackQuery) {
	b.sessions.Clear(cb.Message.Chat.ID)
	b.editOrSend(cb, "Действие отменено.\n\n"+mainMenuText, b.mainMenuKeyboard(cb.From.ID))
	b.answerCallback(cb, "", false)
}
