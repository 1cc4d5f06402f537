package models

import (
	"time"
)

// Standing is one row of a game's final scoreboard
type Standing struct {
	// PlayerID identifies the participant
	PlayerID string

	// PlayerName is the display name at the time the game ended
	PlayerName string

	// Score is the number of rounds the participant won
	Score int

	// IsBot indicates a system-controlled participant
	IsBot bool
}

// MatchRecord is the durable result of one completed game
type MatchRecord struct {
	// ID is the unique identifier of the game
	ID string

	// Mode is the deck pair the game was played with
	Mode Mode

	// FinishedAt is when the final round completed
	FinishedAt time.Time

	// Standings is the scoreboard, best score first
	Standings []Standing
}
