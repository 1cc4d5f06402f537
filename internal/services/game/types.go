package game

import (
	"time"

	"github.com/Sugar-Rush-HQ/Cards-Against-Humanity/internal/common/clock"
	"github.com/Sugar-Rush-HQ/Cards-Against-Humanity/internal/common/uuid"
	"github.com/Sugar-Rush-HQ/Cards-Against-Humanity/internal/decks"
	"github.com/Sugar-Rush-HQ/Cards-Against-Humanity/internal/models"
	recordRepo "github.com/Sugar-Rush-HQ/Cards-Against-Humanity/internal/repositories/record"
	"github.com/Sugar-Rush-HQ/Cards-Against-Humanity/internal/services/messaging"
)

// Default game parameters, matching the original table rules
const (
	DefaultCapacity      = 6
	DefaultRounds        = 5
	DefaultHandSize      = 7
	DefaultTurnTimeout   = 180 * time.Second
	DefaultQueueTimeout  = 180 * time.Second
	DefaultJudgeTimeout  = 90 * time.Second
	DefaultRoundPause    = 4 * time.Second
	DefaultBotJudgePause = 2 * time.Second
)

// Config holds configuration for the game service
type Config struct {
	// Capacity is the fixed roster size of every game
	Capacity int

	// Rounds is the number of rounds played per game
	Rounds int

	// HandSize is the number of response cards each seat holds between rounds
	HandSize int

	// TurnTimeout bounds the per-round submission wait
	TurnTimeout time.Duration

	// QueueTimeout is how long a queue waits before force-starting with bots
	QueueTimeout time.Duration

	// JudgeTimeout bounds a human judge's decision
	JudgeTimeout time.Duration

	// RoundPause is the cosmetic pause between rounds
	RoundPause time.Duration

	// BotJudgePause is the cosmetic pause before a bot judge decides
	BotJudgePause time.Duration

	// Dependencies
	Decks         *decks.Store
	Notifier      Notifier
	Messages      messaging.Service
	RecordRepo    recordRepo.Repository
	AutoPlayer    AutoPlayer
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
}

// JoinInput contains parameters for joining matchmaking
type JoinInput struct {
	// PlayerID is the Discord user ID of the joining player
	PlayerID string

	// PlayerName is the display name of the joining player
	PlayerName string

	// ChannelID is where the player's game messages are delivered
	ChannelID string

	// Mode selects which queue or game to join
	Mode models.Mode
}

// JoinOutput contains the result of joining matchmaking
type JoinOutput struct {
	// Backfilled indicates the player replaced a bot in a running game
	Backfilled bool

	// GameID is set when the player was backfilled into a game
	GameID string

	// QueuePosition is the player's position in the queue when queued
	QueuePosition int

	// Capacity is the roster size the queue fills toward
	Capacity int
}

// LeaveInput contains parameters for leaving matchmaking
type LeaveInput struct {
	// PlayerID is the Discord user ID of the leaving player
	PlayerID string
}

// LeaveOutput contains the result of leaving matchmaking
type LeaveOutput struct {
	// Removed indicates the player was found in a queue
	Removed bool
}

// PlayCardInput contains parameters for playing a response card
type PlayCardInput struct {
	// GameID is the game the card is played in
	GameID string

	// PlayerID is the Discord user ID of the player
	PlayerID string

	// Card is the response card text, which must be in the player's hand
	Card string
}

// PlayCardOutput contains the result of playing a card
type PlayCardOutput struct {
	// Card echoes the card that was played
	Card string
}

// PickWinnerInput contains parameters for a judge's winner selection
type PickWinnerInput struct {
	// GameID is the game being judged
	GameID string

	// PlayerID is the Discord user ID of the caller
	PlayerID string

	// SubmissionIndex is the position in the displayed submission list
	SubmissionIndex int
}

// PickWinnerOutput contains the result of a winner selection
type PickWinnerOutput struct {
	// Accepted is false when the round was already resolved
	Accepted bool

	// Card is the winning card when the selection was accepted
	Card string
}

// GetHandInput contains parameters for fetching a player's hand
type GetHandInput struct {
	// PlayerID is the Discord user ID of the player
	PlayerID string
}

// GetHandOutput contains a player's current hand and round context
type GetHandOutput struct {
	// GameID is the player's active game
	GameID string

	// Prompt is the current round's prompt card
	Prompt string

	// Hand is a copy of the player's response cards
	Hand []string

	// IsJudge indicates the player judges this round instead of playing
	IsJudge bool
}

// GetTopWinsInput contains parameters for the all-time win tally
type GetTopWinsInput struct {
	// Limit caps the number of entries returned
	Limit int
}

// WinTally is one row of the all-time win leaderboard
type WinTally struct {
	PlayerID   string
	PlayerName string
	Wins       int64
}

// GetTopWinsOutput contains the all-time win leaderboard
type GetTopWinsOutput struct {
	Entries []WinTally
}

// AnnounceInput carries a plain text broadcast
type AnnounceInput struct {
	GameID   string
	Channels []string
	Text     string
}

// AnnounceRoundInput carries a round announcement
type AnnounceRoundInput struct {
	GameID    string
	Channels  []string
	Mode      models.Mode
	Round     int
	Prompt    string
	JudgeName string
}

// AnnounceSubmissionsInput carries the shuffled submission list
type AnnounceSubmissionsInput struct {
	GameID   string
	Channels []string
	Prompt   string
	Cards    []string
}

// AnnounceStandingsInput carries the final scoreboard
type AnnounceStandingsInput struct {
	GameID    string
	Channels  []string
	Standings []models.Standing
}

// PromptSubmissionInput privately invites one player to play
type PromptSubmissionInput struct {
	GameID    string
	PlayerID  string
	ChannelID string
	Round     int
	Prompt    string
	Hand      []string
}

// NotifyJudgeInput privately notifies the judge that players are picking
type NotifyJudgeInput struct {
	GameID    string
	PlayerID  string
	ChannelID string
	Round     int
}

// PromptJudgmentInput privately presents the submissions to the judge
type PromptJudgmentInput struct {
	GameID    string
	PlayerID  string
	ChannelID string
	Prompt    string
	Cards     []string
}
