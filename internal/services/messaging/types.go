package messaging

import (
	"github.com/Sugar-Rush-HQ/Cards-Against-Humanity/internal/models"
)

// ServiceConfig holds configuration for the messaging service
type ServiceConfig struct {
	// Optional seed for testing
	Seed int64
}

// GetGameStartedMessageInput describes a game that just started
type GetGameStartedMessageInput struct {
	// Mode is the deck pair the game is played with
	Mode models.Mode

	// BotsAdded is how many seats were padded with bots
	BotsAdded int
}

// GetGameStartedMessageOutput contains the game start announcement
type GetGameStartedMessageOutput struct {
	Message string
}

// GetQueueJoinedMessageInput describes a player entering a queue
type GetQueueJoinedMessageInput struct {
	Mode     models.Mode
	Position int
	Capacity int
}

// GetQueueJoinedMessageOutput contains the queue join message
type GetQueueJoinedMessageOutput struct {
	Message string
}

// GetPlayerJoinedMessageInput describes a backfilled player
type GetPlayerJoinedMessageInput struct {
	PlayerName string
}

// GetPlayerJoinedMessageOutput contains the backfill announcement
type GetPlayerJoinedMessageOutput struct {
	Message string
}

// GetTimeUpMessageInput requests the submission deadline announcement
type GetTimeUpMessageInput struct{}

// GetTimeUpMessageOutput contains the submission deadline announcement
type GetTimeUpMessageOutput struct {
	Message string
}

// GetNoSubmissionsMessageInput requests the empty-round announcement
type GetNoSubmissionsMessageInput struct{}

// GetNoSubmissionsMessageOutput contains the empty-round announcement
type GetNoSubmissionsMessageOutput struct {
	Message string
}

// GetBotThinkingMessageInput requests the bot judge flavor line
type GetBotThinkingMessageInput struct{}

// GetBotThinkingMessageOutput contains the bot judge flavor line
type GetBotThinkingMessageOutput struct {
	Message string
}

// GetJudgeAsleepMessageInput requests the judge deadline fallback line
type GetJudgeAsleepMessageInput struct{}

// GetJudgeAsleepMessageOutput contains the judge deadline fallback line
type GetJudgeAsleepMessageOutput struct {
	Message string
}

// GetRoundWinnerMessageInput describes a round winner
type GetRoundWinnerMessageInput struct {
	WinnerName string
	Card       string
}

// GetRoundWinnerMessageOutput contains the round winner announcement
type GetRoundWinnerMessageOutput struct {
	Message string
}
