package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/Sugar-Rush-HQ/Cards-Against-Humanity/internal/common/clock"
	"github.com/Sugar-Rush-HQ/Cards-Against-Humanity/internal/common/uuid"
	"github.com/Sugar-Rush-HQ/Cards-Against-Humanity/internal/decks"
	discordHandler "github.com/Sugar-Rush-HQ/Cards-Against-Humanity/internal/handlers/discord"
	"github.com/Sugar-Rush-HQ/Cards-Against-Humanity/internal/handlers/health"
	recordRepo "github.com/Sugar-Rush-HQ/Cards-Against-Humanity/internal/repositories/record"
	gameService "github.com/Sugar-Rush-HQ/Cards-Against-Humanity/internal/services/game"
	"github.com/Sugar-Rush-HQ/Cards-Against-Humanity/internal/services/messaging"
	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

func main() {
	// Load .env if present; deployment environments set real env vars
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load the card decks
	deckStore, err := decks.Load(getEnv("CARDS_FILE", "cards.json"))
	if err != nil {
		log.Fatalf("Failed to load cards: %v", err)
	}

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       0,
	})

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Initialize the record repository
	records, err := recordRepo.NewRedis(&recordRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create record repository: %v", err)
	}

	// Initialize the messaging service
	messages, err := messaging.NewService(&messaging.ServiceConfig{})
	if err != nil {
		log.Fatalf("Failed to create messaging service: %v", err)
	}

	// Get Discord token from environment
	discordToken := getEnv("DISCORD_TOKEN", "")
	if discordToken == "" {
		log.Fatal("DISCORD_TOKEN environment variable is required")
	}

	session, err := discordgo.New("Bot " + discordToken)
	if err != nil {
		log.Fatalf("Failed to create Discord session: %v", err)
	}

	// Initialize the game service
	gameSvc, err := gameService.New(&gameService.Config{
		Capacity:      6,
		Rounds:        5,
		HandSize:      7,
		TurnTimeout:   gameService.DefaultTurnTimeout,
		QueueTimeout:  gameService.DefaultQueueTimeout,
		JudgeTimeout:  gameService.DefaultJudgeTimeout,
		RoundPause:    gameService.DefaultRoundPause,
		BotJudgePause: gameService.DefaultBotJudgePause,
		Decks:         deckStore,
		Notifier:      discordHandler.NewNotifier(session),
		Messages:      messages,
		RecordRepo:    records,
		AutoPlayer:    gameService.NewAutoPlayer(&gameService.AutoPlayerConfig{}),
		Clock:         &clock.DefaultClock{},
		UUIDGenerator: uuid.New(),
	})
	if err != nil {
		log.Fatalf("Failed to create game service: %v", err)
	}

	// Initialize Discord bot
	bot, err := discordHandler.New(&discordHandler.Config{
		Session:       session,
		ApplicationID: getEnv("APPLICATION_ID", ""),
		GuildID:       getEnv("GUILD_ID", ""),
		GameService:   gameSvc,
		Messages:      messages,
	})
	if err != nil {
		log.Fatalf("Failed to create Discord bot: %v", err)
	}

	// Start the liveness endpoint for platform health polling
	healthSrv, err := health.New(&health.Config{
		Port: getEnvInt("PORT", 8080),
	})
	if err != nil {
		log.Fatalf("Failed to create liveness server: %v", err)
	}
	healthSrv.Start()

	// Start the bot
	if err := bot.Start(); err != nil {
		log.Fatalf("Failed to start Discord bot: %v", err)
	}

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	// Shutdown the bot and the liveness server
	if err := bot.Stop(); err != nil {
		log.Printf("Error stopping bot: %v", err)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := healthSrv.Stop(shutdownCtx); err != nil {
		log.Printf("Error stopping liveness server: %v", err)
	}

	log.Println("Bot has been shut down")
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt gets an integer environment variable or returns a default value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Invalid value for %s: %v, using %d", key, err, defaultValue)
		return defaultValue
	}
	return parsed
}
