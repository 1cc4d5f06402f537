package models

// ParticipantKind distinguishes a human-controlled seat from a bot-controlled one
type ParticipantKind string

const (
	// ParticipantKindHuman indicates a seat controlled by a Discord user
	ParticipantKindHuman ParticipantKind = "human"

	// ParticipantKindBot indicates a seat controlled by the system
	ParticipantKindBot ParticipantKind = "bot"
)

// Participant represents one seat at a game table, human or bot
type Participant struct {
	// PlayerID is the Discord user ID, or a synthetic ID for bots
	PlayerID string

	// Name is the display name shown in announcements
	Name string

	// ChannelID is where private prompts are delivered; empty for bots
	ChannelID string

	// Kind is fixed for the lifetime of this record; a roster slot is
	// replaced with a fresh record when a human takes over a bot seat
	Kind ParticipantKind

	// Hand holds the participant's response cards
	Hand []string

	// Score is the number of rounds won
	Score int

	// SelectedCard is the card played this round; empty until played
	SelectedCard string
}

// IsBot reports whether the seat is system-controlled
func (p *Participant) IsBot() bool {
	return p.Kind == ParticipantKindBot
}
