package discord

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/Sugar-Rush-HQ/Cards-Against-Humanity/internal/services/game"
	"github.com/Sugar-Rush-HQ/Cards-Against-Humanity/internal/services/messaging"
	"github.com/bwmarrin/discordgo"
)

// Component custom ID prefixes; the game ID (and for judging the submission
// index) is appended after the prefix
const (
	ComponentPickCard  = "cah:pick:"
	ComponentJudgePick = "cah:judge:"
)

// Bot represents the Discord bot instance
type Bot struct {
	session     *discordgo.Session
	commands    map[string]CommandHandler
	commandIDs  map[string]string // Maps command name to command ID
	gameService game.Service
	messages    messaging.Service
	config      *Config
}

// Config holds the configuration for the bot
type Config struct {
	// Session is the shared Discord session, already authenticated
	Session *discordgo.Session

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	// Game service
	GameService game.Service

	// Messaging service
	Messages messaging.Service
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Session == nil {
		return nil, errors.New("session cannot be nil")
	}

	if cfg.GameService == nil {
		return nil, errors.New("game service cannot be nil")
	}

	if cfg.Messages == nil {
		return nil, errors.New("messaging service cannot be nil")
	}

	bot := &Bot{
		session:     cfg.Session,
		commands:    make(map[string]CommandHandler),
		commandIDs:  make(map[string]string),
		gameService: cfg.GameService,
		messages:    cfg.Messages,
		config:      cfg,
	}

	// Register the interaction handler
	cfg.Session.AddHandler(bot.handleInteraction)

	return bot, nil
}

// Start opens the Discord connection and registers commands
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	handlers := []CommandHandler{
		NewJoinCommand(b.gameService, b.messages),
		NewLeaveCommand(b.gameService),
		NewScoresCommand(b.gameService),
	}

	for _, cmd := range handlers {
		if err := b.RegisterCommand(cmd); err != nil {
			return fmt.Errorf("failed to register %s command: %w", cmd.GetName(), err)
		}
	}

	log.Println("Bot is now running. Press CTRL-C to exit.")
	return nil
}

// Stop gracefully shuts down the Discord connection
func (b *Bot) Stop() error {
	appID := b.config.ApplicationID
	if appID == "" {
		appID = b.session.State.User.ID
	}

	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			log.Printf("Failed to delete command %s (ID: %s): %v", cmdName, cmdID, err)
		}
	}

	return b.session.Close()
}

// RegisterCommand registers a command with Discord
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	appID := b.config.ApplicationID
	if appID == "" {
		// Fall back to session user ID if application ID is not provided
		appID = b.session.State.User.ID
	}

	guildID := b.config.GuildID
	if guildID != "" {
		log.Printf("Registering command %s for guild %s", cmd.GetName(), guildID)
	} else {
		log.Printf("Registering command %s globally", cmd.GetName())
	}

	createdCmd, err := b.session.ApplicationCommandCreate(appID, guildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID

	return nil
}

// handleInteraction handles Discord interactions
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		if h, ok := b.commands[i.ApplicationCommandData().Name]; ok {
			if err := h.Handle(s, i); err != nil {
				log.Printf("Error handling command %s: %v", i.ApplicationCommandData().Name, err)
			}
		}
	case discordgo.InteractionMessageComponent:
		if err := b.handleComponentInteraction(s, i); err != nil {
			log.Printf("Error handling component interaction: %v", err)
		}
	}
}

// handleComponentInteraction routes card picks and judge votes
func (b *Bot) handleComponentInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	customID := i.MessageComponentData().CustomID

	switch {
	case strings.HasPrefix(customID, ComponentPickCard):
		gameID := strings.TrimPrefix(customID, ComponentPickCard)
		return b.handlePickCard(s, i, gameID)
	case strings.HasPrefix(customID, ComponentJudgePick):
		return b.handleJudgePick(s, i, strings.TrimPrefix(customID, ComponentJudgePick))
	default:
		return RespondWithEphemeralMessage(s, i, fmt.Sprintf("Unknown action: %s", customID))
	}
}

// handlePickCard finalizes a card choice from the hand select menu
func (b *Bot) handlePickCard(s *discordgo.Session, i *discordgo.InteractionCreate, gameID string) error {
	values := i.MessageComponentData().Values
	if len(values) == 0 {
		return RespondWithEphemeralMessage(s, i, "No card selected.")
	}

	out, err := b.gameService.PlayCard(context.Background(), &game.PlayCardInput{
		GameID:   gameID,
		PlayerID: interactionUser(i).ID,
		Card:     values[0],
	})
	if err != nil {
		return RespondWithEphemeralMessage(s, i, playCardErrorText(err))
	}

	return RespondWithEphemeralMessage(s, i, fmt.Sprintf("Played: **%s**", out.Card))
}

// handleJudgePick resolves a judge's button press
func (b *Bot) handleJudgePick(s *discordgo.Session, i *discordgo.InteractionCreate, suffix string) error {
	// Suffix is "<gameID>:<index>"
	sep := strings.LastIndex(suffix, ":")
	if sep < 0 {
		return RespondWithEphemeralMessage(s, i, "Malformed judge action.")
	}

	gameID := suffix[:sep]
	index, err := strconv.Atoi(suffix[sep+1:])
	if err != nil {
		return RespondWithEphemeralMessage(s, i, "Malformed judge action.")
	}

	out, err := b.gameService.PickWinner(context.Background(), &game.PickWinnerInput{
		GameID:          gameID,
		PlayerID:        interactionUser(i).ID,
		SubmissionIndex: index,
	})
	if err != nil {
		return RespondWithEphemeralMessage(s, i, pickWinnerErrorText(err))
	}

	if !out.Accepted {
		return RespondWithEphemeralMessage(s, i, "The winner was already decided.")
	}
	return RespondWithEphemeralMessage(s, i, "Winner decided!")
}

// playCardErrorText maps play errors to player-facing copy
func playCardErrorText(err error) string {
	switch {
	case errors.Is(err, game.ErrIsJudge):
		return "You are the Czar!"
	case errors.Is(err, game.ErrAlreadySubmitted):
		return "Already picked!"
	case errors.Is(err, game.ErrNotInSession), errors.Is(err, game.ErrGameNotFound):
		return "Not in this game."
	case errors.Is(err, game.ErrCardNotInHand):
		return "That card is no longer in your hand."
	default:
		return fmt.Sprintf("Failed to play card: %v", err)
	}
}

// pickWinnerErrorText maps judging errors to player-facing copy
func pickWinnerErrorText(err error) string {
	switch {
	case errors.Is(err, game.ErrNotJudge):
		return "Not Czar!"
	case errors.Is(err, game.ErrNoJudging):
		return "There is nothing to judge right now."
	case errors.Is(err, game.ErrNotInSession), errors.Is(err, game.ErrGameNotFound):
		return "Not in this game."
	default:
		return fmt.Sprintf("Failed to pick winner: %v", err)
	}
}
