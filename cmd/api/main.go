package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"personal-scheduling-assistant/config"
	_ "personal-scheduling-assistant/docs" // Swagger docs
	tgDelivery "personal-scheduling-assistant/internal/agenda/delivery/telegram"
	gcalRepo "personal-scheduling-assistant/internal/agenda/repository/gcal"
	"personal-scheduling-assistant/internal/agenda/usecase"
	"personal-scheduling-assistant/internal/conversation"
	"personal-scheduling-assistant/internal/httpserver"
	"personal-scheduling-assistant/internal/parser"
	"personal-scheduling-assistant/internal/reminder"
	"personal-scheduling-assistant/internal/supplement"
	"personal-scheduling-assistant/pkg/datemath"
	"personal-scheduling-assistant/pkg/gcalendar"
	"personal-scheduling-assistant/pkg/gemini"
	"personal-scheduling-assistant/pkg/log"
	"personal-scheduling-assistant/pkg/telegram"
)

// @title       Personal Scheduling Assistant API
// @description Single-user scheduling assistant over Telegram, Gemini LLM and Google Calendar.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Personal Scheduling Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Timezone-aware date parsing, shared by every layer
	dates, dtErr := datemath.NewParser(cfg.Assistant.Timezone)
	if dtErr != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Assistant.Timezone, dtErr)
		dates, _ = datemath.NewParser("UTC")
	}

	// 4. Supplement tracker (optional)
	var supplementSvc supplement.Service
	var supplementItems []supplement.Item
	if cfg.Supplement.Enabled {
		for _, raw := range cfg.Supplement.Items {
			item, itemErr := supplement.ParseSchedule(raw.Name, raw.Days, raw.Time)
			if itemErr != nil {
				logger.Errorf(ctx, "Bad supplement config for %q: %v", raw.Name, itemErr)
				return
			}
			supplementItems = append(supplementItems, item)
		}
		store := supplement.NewStore(cfg.Supplement.StorePath)
		supplementSvc = supplement.New(logger, store, supplementItems, dates.Location())
		logger.Infof(ctx, "Supplement tracker enabled with %d items", len(supplementItems))
	}

	// 5. Chat pipeline: bot, LLM parser, calendar, usecase, delivery
	var telegramHandler tgDelivery.Handler
	var calRepo *gcalRepo.Repository
	var telegramBot *telegram.Bot

	if cfg.Telegram.BotToken != "" && cfg.Gemini.APIKey != "" {
		telegramBot = telegram.NewBot(cfg.Telegram.BotToken)

		geminiClient := gemini.NewClient(cfg.Gemini.APIKey)
		geminiClient.SetModel(cfg.Gemini.Model)

		calendarClient, calErr := gcalendar.NewClientFromCredentialsFile(ctx,
			cfg.GoogleCalendar.CredentialsPath, cfg.GoogleCalendar.TokenPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available: %v", calErr)
			logger.Warn(ctx, "→ Run `go run scripts/gcal-auth/main.go` to generate token.json")
		} else {
			calRepo = gcalRepo.New(logger, calendarClient, cfg.GoogleCalendar.CalendarID, cfg.Assistant.Timezone)

			agendaUC := usecase.New(logger, calRepo, dates,
				cfg.Assistant.DefaultEventDuration, cfg.Assistant.ResolveWindowDays)
			intentParser := parser.New(geminiClient, dates, logger)
			machine := conversation.NewMachine(dates)
			sessions := conversation.NewStore(cfg.Assistant.SessionTTL)

			telegramHandler = tgDelivery.New(
				logger,
				agendaUC,
				intentParser,
				machine,
				sessions,
				supplementSvc,
				telegramBot,
				dates,
				cfg.Telegram.AllowedUserID,
				cfg.Assistant.RateLimitPerMin,
				cfg.Assistant.BackendTimeout,
			)

			// Register webhook: explicit config first, ngrok auto-detect as
			// the local-dev fallback.
			webhookURL := cfg.Telegram.WebhookURL
			if webhookURL == "" {
				ngrokURL, ngrokErr := detectNgrokURL(ctx, "http://ngrok:4040")
				if ngrokErr != nil {
					logger.Warnf(ctx, "Could not detect ngrok URL: %v", ngrokErr)
				} else {
					webhookURL = ngrokURL + "/webhook/telegram"
					logger.Infof(ctx, "Auto-detected ngrok URL: %s", webhookURL)
				}
			}
			if webhookURL != "" {
				if whErr := telegramBot.SetWebhook(webhookURL); whErr != nil {
					logger.Warnf(ctx, "Failed to set Telegram webhook: %v", whErr)
				} else {
					logger.Infof(ctx, "Telegram webhook registered at %s", webhookURL)
				}
			}

			logger.Info(ctx, "Chat pipeline initialized")
		}
	} else {
		logger.Warn(ctx, "Chat pipeline skipped: telegram.bot_token or gemini.api_key is missing")
	}

	// 6. Reminder jobs need the calendar and the bot
	if cfg.Reminder.Enabled && calRepo != nil && telegramBot != nil {
		reminderSvc := reminder.New(logger, calRepo, supplementSvc, telegramBot, dates, reminder.Config{
			ChatID:       cfg.Telegram.AllowedUserID,
			PendingSpec:  cfg.Reminder.PendingSpec,
			RolloverSpec: cfg.Reminder.RolloverSpec,
			Supplements:  supplementItems,
		})
		if rErr := reminderSvc.Start(); rErr != nil {
			logger.Error(ctx, "Failed to start reminders: ", rErr)
			return
		}
		defer reminderSvc.Stop()
	}

	// 7. HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		TelegramHandler: telegramHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
