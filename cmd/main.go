package main

import (
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/amzubkov/tg-gym/internal/bot"
	"github.com/amzubkov/tg-gym/internal/config"
	"github.com/amzubkov/tg-gym/internal/database"
	"github.com/amzubkov/tg-gym/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Ошибка конфигурации: %v", err)
	}

	db, err := database.Open(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Ошибка базы данных: %v", err)
	}
	defer db.Close()
	log.Printf("База данных открыта: %s", cfg.DatabasePath)

	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		log.Fatalf("Ошибка подключения к Telegram: %v", err)
	}
	log.Printf("Авторизован как @%s", api.Self.UserName)

	repo := repository.New(db)

	telegramBot := bot.New(api, repo, cfg)
	if err := telegramBot.Start(); err != nil {
		log.Fatal(err)
	}
}
