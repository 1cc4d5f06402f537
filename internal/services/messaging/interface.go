package messaging

import "context"

// Service is the interface for the messaging service. It builds the text of
// every player-facing announcement so handlers and the game loop never
// hard-code copy.
type Service interface {
	// GetGameStartedMessage returns the game start announcement
	GetGameStartedMessage(ctx context.Context, input *GetGameStartedMessageInput) (*GetGameStartedMessageOutput, error)

	// GetQueueJoinedMessage returns the message for a player entering a queue
	GetQueueJoinedMessage(ctx context.Context, input *GetQueueJoinedMessageInput) (*GetQueueJoinedMessageOutput, error)

	// GetPlayerJoinedMessage returns the announcement for a backfilled player
	GetPlayerJoinedMessage(ctx context.Context, input *GetPlayerJoinedMessageInput) (*GetPlayerJoinedMessageOutput, error)

	// GetTimeUpMessage returns the submission deadline announcement
	GetTimeUpMessage(ctx context.Context, input *GetTimeUpMessageInput) (*GetTimeUpMessageOutput, error)

	// GetNoSubmissionsMessage returns the empty-round announcement
	GetNoSubmissionsMessage(ctx context.Context, input *GetNoSubmissionsMessageInput) (*GetNoSubmissionsMessageOutput, error)

	// GetBotThinkingMessage returns the bot judge flavor line
	GetBotThinkingMessage(ctx context.Context, input *GetBotThinkingMessageInput) (*GetBotThinkingMessageOutput, error)

	// GetJudgeAsleepMessage returns the judge deadline fallback announcement
	GetJudgeAsleepMessage(ctx context.Context, input *GetJudgeAsleepMessageInput) (*GetJudgeAsleepMessageOutput, error)

	// GetRoundWinnerMessage returns the round winner announcement
	GetRoundWinnerMessage(ctx context.Context, input *GetRoundWinnerMessageInput) (*GetRoundWinnerMessageOutput, error)
}
