package bot

import (
	"errors"
	"log"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/amzubkov/tg-gym/internal/dialog"
	"github.com/amzubkov/tg-gym/internal/repository"
)

// hasAccess проверяет доступ: админ всегда, остальные по allow-списку
func (b *Bot) hasAccess(userID int64) bool {
	if b.isAdmin(userID) {
		return true
	}
	allowed, err := b.repo.User.IsAllowed(userID)
	if err != nil {
		log.Printf("Ошибка проверки доступа [user=%d]: %v", userID, err)
		return false
	}
	return allowed
}

func (b *Bot) handleStart(message *tgbotapi.Message) {
	chatID := message.Chat.ID
	userID := message.From.ID

	b.sessions.Clear(chatID)

	if b.hasAccess(userID) {
		b.sendWithKeyboard(chatID,
			"Привет! Я бот для тренировок.\n\n"+mainMenuText,
			b.mainMenuKeyboard(userID))
		return
	}

	b.sessions.Set(chatID, dialog.State{Step: dialog.StepAccessCode})
	b.sendMessage(chatID, "Привет! Для доступа к боту введи код доступа:")
}

// handleAccessCode обрабатывает введённый код: общий код доступа или
// одноразовый инвайт-код.
func (b *Bot) handleAccessCode(message *tgbotapi.Message) {
	chatID := message.Chat.ID
	userID := message.From.ID
	code := strings.TrimSpace(message.Text)

	granted := code == b.config.AccessCode
	if !granted {
		err := b.repo.User.RedeemInviteCode(code, userID)
		switch {
		case err == nil:
			granted = true
		case errors.Is(err, repository.ErrNotFound):
			// неверный код, спросим ещё раз
		default:
			b.sendError(chatID, "Что-то пошло не так, попробуй ещё раз", err)
			return
		}
	}

	if !granted {
		b.sendMessage(chatID, "Неверный код. Попробуй ещё раз:")
		return
	}

	fullName := strings.TrimSpace(message.From.FirstName + " " + message.From.LastName)
	if err := b.repo.User.Add(userID, message.From.UserName, fullName); err != nil {
		b.sendError(chatID, "Не получилось выдать доступ, попробуй ещё раз", err)
		return
	}

	b.sessions.Clear(chatID)
	b.sendWithKeyboard(chatID, "Доступ разрешён!\n\n"+mainMenuText, b.mainMenuKeyboard(userID))
}
