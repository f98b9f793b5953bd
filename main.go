package main

import (
	"bugbot/internal/adapters/generator"
	"bugbot/internal/adapters/handler"
	"bugbot/internal/adapters/sender"
	"bugbot/internal/adapters/storage"
	"bugbot/internal/core/domain/command"
	"bugbot/internal/core/service"
	"context"
	"os"
	"os/signal"
	"time"

	"github.com/go-telegram/bot/models"

	"github.com/rs/zerolog"

	"github.com/go-telegram/bot"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

func main() {
	log.Info().Msg("starting bugbot...")

	viper.AddConfigPath(".")
	viper.SetConfigType("toml")

	log.Info().Msg("reading config file...")
	err := viper.ReadInConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("could not read config file")
	}

	var logLevel zerolog.Level

	switch viper.GetString("bot.log_level") {
	case "info":
		logLevel = zerolog.InfoLevel
	case "debug":
		logLevel = zerolog.DebugLevel
	default:
		logLevel = zerolog.InfoLevel
	}

	zerolog.SetGlobalLevel(logLevel)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	log.Info().Msg("connecting to database...")
	db, err := storage.Connect(ctx, viper.GetString("mongo.uri"), viper.GetString("mongo.database"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed connecting to mongodb")
	}

	reminders := storage.NewReminderStore(db)
	nicknames := storage.NewNicknameStore(db)

	token := viper.GetString("telegram.bot_token")
	opts := []bot.Option{
		bot.WithDefaultHandler(noOpHandler),
	}

	b, err := bot.New(token, opts...)
	if err != nil {
		log.Panic().Err(err).Msg("failed initializing telegram bot")
	}

	s := sender.NewTelegramSender(b)
	resolver := service.NewNameResolver(nicknames, s)

	giphy := generator.NewGiphy(viper.GetString("giphy.api_url"), viper.GetString("giphy.api_key"))
	openRouter := generator.NewOpenRouter(viper.GetString("openrouter.api_key"),
		viper.GetString("openrouter.model"))

	commandRegistry := &command.Registry{}
	commandRegistry.Register(command.NewBugMeHandler(reminders, s, "/bugme"))
	commandRegistry.Register(command.NewCallMeHandler(nicknames, s, "/callme"))
	commandRegistry.Register(command.NewHelloHandler(resolver, s, "/hello"))
	commandRegistry.Register(command.NewGifHandler(giphy, resolver, s, "/gif"))
	commandRegistry.Register(command.NewMotivateHandler(openRouter, s, "/motivate"))

	handlerTimeout, err := time.ParseDuration(viper.GetString("handler.timeout"))
	if err != nil {
		log.Panic().Err(err).Msg("invalid timeout for handler in config")
	}

	commandHandler := handler.NewCommandHandler(commandRegistry, handlerTimeout)

	b.RegisterHandler(bot.HandlerTypeMessageText, "/", bot.MatchTypePrefix, commandHandler.Handle)
	b.RegisterHandler(bot.HandlerTypeCallbackQueryData, "", bot.MatchTypePrefix, s.HandleCallback)

	responseTimeout, err := time.ParseDuration(viper.GetString("reminder.response_timeout"))
	if err != nil {
		log.Panic().Err(err).Msg("invalid response timeout for reminders in config")
	}

	pollInterval, err := time.ParseDuration(viper.GetString("reminder.poll_interval"))
	if err != nil {
		log.Panic().Err(err).Msg("invalid polling interval for reminders in config")
	}

	log.Info().Msg("setting up reminder poller...")
	poller := service.NewReminderPoller(reminders, s, resolver, responseTimeout)
	poller.SetPollingInterval(pollInterval)
	poller.StartPolling()
	defer poller.StopPolling()

	registerCommandMenu(ctx, b)

	log.Info().Msg("bot listening")
	b.Start(ctx)
}

// registerCommandMenu publishes the slash-command list to the platform so
// clients can offer completion.
func registerCommandMenu(ctx context.Context, b *bot.Bot) {
	_, err := b.SetMyCommands(ctx, &bot.SetMyCommandsParams{
		Commands: []models.BotCommand{
			{Command: "bugme", Description: "Set a reminder and I'll keep messaging you until you've done it."},
			{Command: "callme", Description: "Give yourself a nickname for me to use."},
			{Command: "hello", Description: "Say hello!"},
			{Command: "gif", Description: "Get a motivational GIF."},
			{Command: "motivate", Description: "Get motivated by an AI!"},
		},
	})
	if err != nil {
		log.Warn().Err(err).Msg("failed to register command menu")
	}
}

func noOpHandler(_ context.Context, _ *bot.Bot, _ *models.Update) {}
