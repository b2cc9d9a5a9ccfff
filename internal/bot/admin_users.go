package bot

import (
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/amzubkov/tg-gym/internal/dialog"
	"github.com/amzubkov/tg-gym/internal/models"
)

func userLabel(u models.AllowedUser) string {
	switch {
	case u.FullName != "":
		return u.FullName
	case u.Username != "":
		return "@" + u.Username
	default:
		return strconv.FormatInt(u.UserID, 10)
	}
}

func (b *Bot) showUsers(cb *tgbotapi.CallbackQuery) {
	users, err := b.repo.User.GetAll()
	if err != nil {
		b.answerCallback(cb, "Ошибка, попробуй позже", true)
		return
	}

	text := "👥 Пользователи\n\nПока нет одобренных пользователей."
	if len(users) > 0 {
		var sb strings.Builder
		fmt.Fprintf(&sb, "👥 Пользователи (%d):\n\n", len(users))
		for _, u := range users {
			sb.WriteString("• " + userLabel(u) + "\n")
		}
		text = sb.String()
	}

	var rows [][]tgbotapi.InlineKeyboardButton
	rows = append(rows, row(btn("➕ Добавить по ID", "adm_user_add")))
	for _, u := range users {
		rows = append(rows, row(btn("🗑 "+userLabel(u), fmt.Sprintf("adm_user_del:%d", u.UserID))))
	}
	rows = append(rows, row(btn("« Назад", "admin")))

	b.editOrSend(cb, text, tgbotapi.NewInlineKeyboardMarkup(rows...))
	b.answerCallback(cb, "", false)
}

func (b *Bot) removeUser(cb *tgbotapi.CallbackQuery, parts []string) {
	if len(parts) < 2 {
		return
	}
	userID := parseID(parts[1])

	if err := b.repo.User.Remove(userID); err != nil {
		b.answerCallback(cb, "Не получилось удалить", true)
		return
	}

	b.answerCallback(cb, "Доступ отозван", false)
	b.showUsers(cb)
}

func (b *Bot) startAddUser(cb *tgbotapi.CallbackQuery) {
	b.sessions.Set(cb.Message.Chat.ID, dialog.State{Step: dialog.StepAdminAddUser})
	b.editOrSend(cb, "Введи Telegram ID пользователя:", cancelKeyboard())
	b.answerCallback(cb, "", false)
}

func (b *Bot) processAddUser(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	userID, err := strconv.ParseInt(strings.TrimSpace(message.Text), 10, 64)
	if err != nil || userID <= 0 {
		b.sendWithKeyboard(chatID, "Введи числовой Telegram ID:", cancelKeyboard())
		return
	}

	if err := b.repo.User.Add(userID, "", ""); err != nil {
		b.sendError(chatID, "Не получилось добавить пользователя", err)
		return
	}

	b.sessions.Clear(chatID)
	b.sendWithKeyboard(chatID, fmt.Sprintf("✅ Пользователь %d добавлен!", userID), adminPanelKeyboard())
}

// showInviteCodes одноразовые коды доступа вместо общего кода
func (b *Bot) showInviteCodes(cb *tgbotapi.CallbackQuery) {
	codes, err := b.repo.User.GetUnusedInviteCodes()
	if err != nil {
		b.answerCallback(cb, "Ошибка, попробуй позже", true)
		return
	}

	text := "🎟 Инвайт-коды\n\nНеиспользованных кодов нет."
	if len(codes) > 0 {
		var lines []string
		for _, c := range codes {
			lines = append(lines, fmt.Sprintf("%s — выдан %s", c.Code, c.CreatedAt.Format("02.01.2006")))
		}
		text = "🎟 Неиспользованные коды:\n\n" + strings.Join(lines, "\n")
	}

	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		row(btn("➕ Новый код", "adm_invite_new")),
		row(btn("« Назад", "admin")),
	)
	b.editOrSend(cb, text, keyboard)
	b.answerCallback(cb, "", false)
}

func (b *Bot) createInviteCode(cb *tgbotapi.CallbackQuery) {
	code, err := b.repo.User.CreateInviteCode()
	if err != nil {
		b.answerCallback(cb, "Не получилось создать код", true)
		return
	}

	b.answerCallback(cb, "Код создан: "+code, true)
	b.showInviteCodes(cb)
}
