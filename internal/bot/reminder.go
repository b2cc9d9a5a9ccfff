package bot

import (
	"fmt"
	"log"

	"github.com/robfig/cron"

	"github.com/amzubkov/tg-gym/internal/models"
)

// startReminder запускает напоминания по расписанию из конфига.
// Напоминание уходит пользователям с незавершённой активной программой,
// у которых сегодня ещё не было отметки дня.
func (b *Bot) startReminder() error {
	c := cron.New()
	if err := c.AddFunc(b.config.ReminderSchedule, b.sendReminders); err != nil {
		return fmt.Errorf("некорректное расписание %q: %w", b.config.ReminderSchedule, err)
	}
	c.Start()
	b.cron = c

	log.Printf("Напоминания запущены по расписанию %q", b.config.ReminderSchedule)
	return nil
}

func (b *Bot) sendReminders() {
	users, err := b.repo.User.GetAll()
	if err != nil {
		log.Printf("Ошибка списка пользователей для напоминаний: %v", err)
		return
	}

	for _, u := range users {
		progress, err := b.repo.Progress.Get(u.UserID)
		if err != nil {
			log.Printf("Ошибка прогресса для напоминания [user=%d]: %v", u.UserID, err)
			continue
		}
		if progress.State != models.ProgressInProgress {
			continue
		}
		if progress.LastCompletedDate == today() {
			continue
		}

		text := fmt.Sprintf("🔔 Напоминание: день %d программы «%s» ждёт тебя!",
			progress.CurrentDayNum, progress.Program.Name)
		b.sendMessage(u.UserID, text)
	}
}
