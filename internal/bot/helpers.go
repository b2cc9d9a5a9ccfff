package bot

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// sendError sends error message to user and logs it
func (b *Bot) sendError(chatID int64, userMessage string, err error) {
	if err != nil {
		log.Printf("Error [chat=%d]: %v", chatID, err)
	}
	msg := tgbotapi.NewMessage(chatID, userMessage)
	if _, sendErr := b.api.Send(msg); sendErr != nil {
		log.Printf("Failed to send error message [chat=%d]: %v", chatID, sendErr)
	}
}

// sendMessage sends message to user with error logging
func (b *Bot) sendMessage(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	_, err := b.api.Send(msg)
	if err != nil {
		log.Printf("Failed to send message [chat=%d]: %v", chatID, err)
	}
	return err
}

// sendWithKeyboard sends message with inline keyboard
func (b *Bot) sendWithKeyboard(chatID int64, text string, keyboard tgbotapi.InlineKeyboardMarkup) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = keyboard
	_, err := b.api.Send(msg)
	if err != nil {
		log.Printf("Failed to send message with keyboard [chat=%d]: %v", chatID, err)
	}
	return err
}

// editOrSend edits callback message in place. Если сообщение было фото
// (карточка упражнения с картинкой), его нельзя превратить в текст,
// поэтому удаляем и отправляем новое.
func (b *Bot) editOrSend(cb *tgbotapi.CallbackQuery, text string, keyboard tgbotapi.InlineKeyboardMarkup) {
	chatID := cb.Message.Chat.ID

	if len(cb.Message.Photo) > 0 {
		del := tgbotapi.NewDeleteMessage(chatID, cb.Message.MessageID)
		if _, err := b.api.Request(del); err != nil {
			log.Printf("Failed to delete message [chat=%d]: %v", chatID, err)
		}
		b.sendWithKeyboard(chatID, text, keyboard)
		return
	}

	edit := tgbotapi.NewEditMessageTextAndMarkup(chatID, cb.Message.MessageID, text, keyboard)
	if _, err := b.api.Send(edit); err != nil {
		log.Printf("Failed to edit message [chat=%d]: %v", chatID, err)
		b.sendWithKeyboard(chatID, text, keyboard)
	}
}

// answerCallback closes the callback spinner, optionally with alert text
func (b *Bot) answerCallback(cb *tgbotapi.CallbackQuery, text string, alert bool) {
	answer := tgbotapi.NewCallback(cb.ID, text)
	answer.ShowAlert = alert
	if _, err := b.api.Request(answer); err != nil {
		log.Printf("Failed to answer callback: %v", err)
	}
}

// callbackParts splits callback data like "exercise:12:3" into parts
func callbackParts(data string) []string {
	return strings.Split(data, ":")
}

// parseID parses an int64 id from a callback part, 0 on error
func parseID(s string) int64 {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return id
}

// formatWeight prints weight without trailing zeros: 90, 22.5
func formatWeight(weight float64) string {
	if weight == float64(int64(weight)) {
		return strconv.FormatInt(int64(weight), 10)
	}
	return strconv.FormatFloat(weight, 'f', -1, 64)
}

// formatDuration prints minutes as "1 ч 30 мин"
func formatDuration(minutes int) string {
	if minutes >= 60 {
		hours := minutes / 60
		mins := minutes % 60
		if mins > 0 {
			return fmt.Sprintf("%d ч %d мин", hours, mins)
		}
		return fmt.Sprintf("%d ч", hours)
	}
	return fmt.Sprintf("%d мин", minutes)
}

// dayTitle returns day name or "День N" when the name is empty
func dayTitle(dayNumber int, name string) string {
	if name != "" {
		return name
	}
	return fmt.Sprintf("День %d", dayNumber)
}
