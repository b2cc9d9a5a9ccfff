package bot

import (
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/robfig/cron"

	"github.com/amzubkov/tg-gym/clients/ai"
	"github.com/amzubkov/tg-gym/internal/config"
	"github.com/amzubkov/tg-gym/internal/dialog"
	"github.com/amzubkov/tg-gym/internal/repository"
)

// Bot представляет Telegram бота
type Bot struct {
	api      *tgbotapi.BotAPI
	repo     *repository.Repository
	config   *config.Config
	aiClient *ai.Client
	sessions *dialog.Store
	cron     *cron.Cron
}

// New создаёт новый экземпляр бота
func New(api *tgbotapi.BotAPI, repo *repository.Repository, cfg *config.Config) *Bot {
	var aiClient *ai.Client
	if cfg.DeepSeekAPIKey != "" {
		aiClient = ai.NewClient(cfg.DeepSeekAPIKey)
	}

	return &Bot{
		api:      api,
		repo:     repo,
		config:   cfg,
		aiClient: aiClient,
		sessions: dialog.NewStore(),
	}
}

// Start запускает бота
func (b *Bot) Start() error {
	if b.config.ReminderSchedule != "" {
		if err := b.startReminder(); err != nil {
			log.Printf("Напоминания не запущены: %v", err)
		}
	}

	updates := b.initUpdatesChannel()
	b.handleUpdates(updates)
	return nil
}

// Stop останавливает фоновые задачи бота
func (b *Bot) Stop() {
	if b.cron != nil {
		b.cron.Stop()
	}
	b.api.StopReceivingUpdates()
}

func (b *Bot) handleUpdates(updates tgbotapi.UpdatesChannel) {
	for update := range updates {
		switch {
		case update.Message != nil:
			b.handleMessage(update.Message)
		case update.CallbackQuery != nil:
			b.handleCallback(update.CallbackQuery)
		}
	}
}

func (b *Bot) initUpdatesChannel() tgbotapi.UpdatesChannel {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30

	return b.api.GetUpdatesChan(u)
}

func (b *Bot) isAdmin(userID int64) bool {
	return userID == b.config.AdminID
}
