package discord

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/Sugar-Rush-HQ/Cards-Against-Humanity/internal/models"
	"github.com/Sugar-Rush-HQ/Cards-Against-Humanity/internal/services/game"
	"github.com/Sugar-Rush-HQ/Cards-Against-Humanity/internal/services/messaging"
	"github.com/bwmarrin/discordgo"
)

// JoinCommand handles /join_global
type JoinCommand struct {
	BaseCommand
	gameService game.Service
	messages    messaging.Service
}

// NewJoinCommand creates the join_global command handler
func NewJoinCommand(gameService game.Service, messages messaging.Service) *JoinCommand {
	return &JoinCommand{
		BaseCommand: BaseCommand{
			Name:        "join_global",
			Description: "Join a Global Game",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "mode",
					Description: "Choose Game Mode",
					Required:    true,
					Choices: []*discordgo.ApplicationCommandOptionChoice{
						{Name: "SFW (Family Friendly)", Value: string(models.ModeSFW)},
						{Name: "NSFW (Adults Only)", Value: string(models.ModeNSFW)},
					},
				},
			},
		},
		gameService: gameService,
		messages:    messages,
	}
}

// Handle processes a join request
func (c *JoinCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	options := i.ApplicationCommandData().Options
	if len(options) == 0 {
		return RespondWithEphemeralMessage(s, i, "A game mode is required.")
	}
	mode := models.Mode(options[0].StringValue())

	// NSFW games are only joinable from age-restricted channels
	if mode == models.ModeNSFW {
		channel, err := s.Channel(i.ChannelID)
		if err != nil {
			log.Printf("Error looking up channel %s: %v", i.ChannelID, err)
			return RespondWithEphemeralMessage(s, i, "Could not verify this channel.")
		}
		if !channel.NSFW {
			return RespondWithEphemeralMessage(s, i, "🔞 **Blocked:** NSFW mode requires an Age-Restricted channel.")
		}
	}

	out, err := c.gameService.Join(context.Background(), &game.JoinInput{
		PlayerID:   interactionUser(i).ID,
		PlayerName: displayName(i),
		ChannelID:  i.ChannelID,
		Mode:       mode,
	})
	if err != nil {
		return RespondWithEphemeralMessage(s, i, joinErrorText(err))
	}

	if out.Backfilled {
		return RespondWithEphemeralMessage(s, i,
			fmt.Sprintf("Replaced a bot in an active %s game!", string(mode)))
	}

	msg, err := c.messages.GetQueueJoinedMessage(context.Background(), &messaging.GetQueueJoinedMessageInput{
		Mode:     mode,
		Position: out.QueuePosition,
		Capacity: out.Capacity,
	})
	if err != nil {
		log.Printf("Error building queue joined message: %v", err)
		return RespondWithMessage(s, i, "Joined the queue!")
	}

	return RespondWithMessage(s, i, msg.Message)
}

// joinErrorText maps join errors to player-facing copy
func joinErrorText(err error) string {
	switch {
	case errors.Is(err, game.ErrAlreadyInGame):
		return "You are already playing!"
	case errors.Is(err, game.ErrAlreadyQueued):
		return "You are already in a queue."
	case errors.Is(err, game.ErrUnknownMode):
		return "That game mode does not exist."
	default:
		return fmt.Sprintf("Failed to join: %v", err)
	}
}

// LeaveCommand handles /leave_queue
type LeaveCommand struct {
	BaseCommand
	gameService game.Service
}

// NewLeaveCommand creates the leave_queue command handler
func NewLeaveCommand(gameService game.Service) *LeaveCommand {
	return &LeaveCommand{
		BaseCommand: BaseCommand{
			Name:        "leave_queue",
			Description: "Leave the matchmaking queue",
		},
		gameService: gameService,
	}
}

// Handle processes a leave request
func (c *LeaveCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	_, err := c.gameService.Leave(context.Background(), &game.LeaveInput{
		PlayerID: interactionUser(i).ID,
	})
	if err != nil {
		return RespondWithEphemeralMessage(s, i, fmt.Sprintf("Failed to leave: %v", err))
	}

	return RespondWithEphemeralMessage(s, i, "You left the queue.")
}

// ScoresCommand handles /scores
type ScoresCommand struct {
	BaseCommand
	gameService game.Service
}

// NewScoresCommand creates the scores command handler
func NewScoresCommand(gameService game.Service) *ScoresCommand {
	return &ScoresCommand{
		BaseCommand: BaseCommand{
			Name:        "scores",
			Description: "Show all-time wins across finished games",
		},
		gameService: gameService,
	}
}

// Handle shows the all-time win leaderboard
func (c *ScoresCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	out, err := c.gameService.GetTopWins(context.Background(), &game.GetTopWinsInput{Limit: 10})
	if err != nil {
		log.Printf("Error fetching win tallies: %v", err)
		return RespondWithEphemeralMessage(s, i, "Scores are unavailable right now.")
	}

	return RespondWithEmbed(s, i, renderWinsEmbed(out.Entries))
}
