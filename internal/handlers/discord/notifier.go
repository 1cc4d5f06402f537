package discord

import (
	"context"
	"log"

	"github.com/Sugar-Rush-HQ/Cards-Against-Humanity/internal/services/game"
	"github.com/bwmarrin/discordgo"
)

// Notifier delivers game events over Discord. Delivery errors are logged
// and swallowed; a dropped message never affects a running round.
type Notifier struct {
	session *discordgo.Session
}

// NewNotifier creates a Discord-backed notifier
func NewNotifier(session *discordgo.Session) *Notifier {
	return &Notifier{session: session}
}

// Announce broadcasts a plain text message to a game's channels
func (n *Notifier) Announce(ctx context.Context, input *game.AnnounceInput) {
	for _, channelID := range input.Channels {
		if _, err := n.session.ChannelMessageSend(channelID, input.Text); err != nil {
			log.Printf("Error broadcasting to channel %s: %v", channelID, err)
		}
	}
}

// AnnounceRound broadcasts the round number, prompt and judge
func (n *Notifier) AnnounceRound(ctx context.Context, input *game.AnnounceRoundInput) {
	embed := renderRoundEmbed(input)
	for _, channelID := range input.Channels {
		if _, err := n.session.ChannelMessageSendEmbed(channelID, embed); err != nil {
			log.Printf("Error announcing round to channel %s: %v", channelID, err)
		}
	}
}

// AnnounceSubmissions broadcasts the shuffled submission list
func (n *Notifier) AnnounceSubmissions(ctx context.Context, input *game.AnnounceSubmissionsInput) {
	text := renderSubmissions(input.Cards)
	for _, channelID := range input.Channels {
		if _, err := n.session.ChannelMessageSend(channelID, text); err != nil {
			log.Printf("Error revealing submissions to channel %s: %v", channelID, err)
		}
	}
}

// AnnounceStandings broadcasts the final scoreboard
func (n *Notifier) AnnounceStandings(ctx context.Context, input *game.AnnounceStandingsInput) {
	embed := renderStandingsEmbed(input.Standings)
	for _, channelID := range input.Channels {
		if _, err := n.session.ChannelMessageSendEmbed(channelID, embed); err != nil {
			log.Printf("Error announcing standings to channel %s: %v", channelID, err)
		}
	}
}

// PromptSubmission invites one human player to play a card
func (n *Notifier) PromptSubmission(ctx context.Context, input *game.PromptSubmissionInput) {
	_, err := n.session.ChannelMessageSendComplex(input.ChannelID, &discordgo.MessageSend{
		Content:    "It is your turn to pick!",
		Components: []discordgo.MessageComponent{renderHandSelect(input.GameID, input.Hand)},
	})
	if err != nil {
		log.Printf("Error prompting player %s: %v", input.PlayerID, err)
	}
}

// NotifyJudge tells a human judge that players are picking
func (n *Notifier) NotifyJudge(ctx context.Context, input *game.NotifyJudgeInput) {
	if _, err := n.session.ChannelMessageSend(input.ChannelID, "You are the Czar! Waiting for players..."); err != nil {
		log.Printf("Error notifying judge %s: %v", input.PlayerID, err)
	}
}

// PromptJudgment presents the submissions to the judge as buttons
func (n *Notifier) PromptJudgment(ctx context.Context, input *game.PromptJudgmentInput) {
	_, err := n.session.ChannelMessageSendComplex(input.ChannelID, &discordgo.MessageSend{
		Content:    "**Judge the winner!**",
		Components: renderJudgeButtons(input.GameID, len(input.Cards)),
	})
	if err != nil {
		log.Printf("Error prompting judge %s: %v", input.PlayerID, err)
	}
}
