package discord

import (
	"fmt"
	"strings"

	"github.com/Sugar-Rush-HQ/Cards-Against-Humanity/internal/models"
	"github.com/Sugar-Rush-HQ/Cards-Against-Humanity/internal/services/game"
	"github.com/bwmarrin/discordgo"
)

// Embed colors per mode
const (
	colorSFW  = 0x2ecc71
	colorNSFW = 0xe91e63
	colorGold = 0xf1c40f
)

// selectOptionMaxLen is Discord's limit on select menu labels and values
const selectOptionMaxLen = 100

func modeColor(mode models.Mode) int {
	if mode == models.ModeNSFW {
		return colorNSFW
	}
	return colorSFW
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

// renderRoundEmbed builds the round announcement embed
func renderRoundEmbed(input *game.AnnounceRoundInput) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("Round %d (%s)", input.Round, strings.ToUpper(string(input.Mode))),
		Description: fmt.Sprintf("**Black Card:** %s", input.Prompt),
		Color:       modeColor(input.Mode),
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:  "The Czar",
				Value: input.JudgeName,
			},
		},
	}
}

// renderSubmissions builds the numbered submission reveal
func renderSubmissions(cards []string) string {
	var b strings.Builder
	b.WriteString("**Submissions:**\n")
	for i, card := range cards {
		fmt.Fprintf(&b, "**%d.** %s\n", i+1, card)
	}
	return b.String()
}

// renderStandingsEmbed builds the final scoreboard embed
func renderStandingsEmbed(standings []models.Standing) *discordgo.MessageEmbed {
	var b strings.Builder
	for _, st := range standings {
		fmt.Fprintf(&b, "%s: %d\n", st.PlayerName, st.Score)
	}

	return &discordgo.MessageEmbed{
		Title:       "Game Over! Final Scores",
		Description: b.String(),
		Color:       colorGold,
	}
}

// renderHandSelect builds the card select menu for one player's hand
func renderHandSelect(gameID string, hand []string) discordgo.ActionsRow {
	options := make([]discordgo.SelectMenuOption, 0, len(hand))
	for _, card := range hand {
		options = append(options, discordgo.SelectMenuOption{
			Label: truncate(card, selectOptionMaxLen),
			Value: truncate(card, selectOptionMaxLen),
		})
	}

	return discordgo.ActionsRow{
		Components: []discordgo.MessageComponent{
			discordgo.SelectMenu{
				CustomID:    ComponentPickCard + gameID,
				Placeholder: "Pick a card...",
				Options:     options,
			},
		},
	}
}

// renderJudgeButtons builds one numbered button per submission
func renderJudgeButtons(gameID string, count int) []discordgo.MessageComponent {
	var rows []discordgo.MessageComponent

	// Discord allows at most five buttons per row
	for start := 0; start < count; start += 5 {
		end := start + 5
		if end > count {
			end = count
		}

		var buttons []discordgo.MessageComponent
		for idx := start; idx < end; idx++ {
			buttons = append(buttons, discordgo.Button{
				Label:    fmt.Sprintf("Card %d", idx+1),
				Style:    discordgo.SecondaryButton,
				CustomID: fmt.Sprintf("%s%s:%d", ComponentJudgePick, gameID, idx),
			})
		}
		rows = append(rows, discordgo.ActionsRow{Components: buttons})
	}

	return rows
}

// renderWinsEmbed builds the all-time wins leaderboard embed
func renderWinsEmbed(entries []game.WinTally) *discordgo.MessageEmbed {
	var b strings.Builder
	if len(entries) == 0 {
		b.WriteString("No games recorded yet. Go play one!")
	}
	for i, e := range entries {
		fmt.Fprintf(&b, "**%d.** %s: %d wins\n", i+1, e.PlayerName, e.Wins)
	}

	return &discordgo.MessageEmbed{
		Title:       "All-Time Wins",
		Description: b.String(),
		Color:       colorGold,
	}
}
