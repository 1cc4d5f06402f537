package messaging

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"
)

// service implements the Service interface
type service struct {
	mu     sync.Mutex
	random *rand.Rand
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (Service, error) {
	var seed int64
	if config != nil && config.Seed != 0 {
		seed = config.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &service{
		random: rand.New(rand.NewSource(seed)),
	}, nil
}

// choose selects one variant at random
func (s *service) choose(variants []string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return variants[s.random.Intn(len(variants))]
}

// GetGameStartedMessage returns the game start announcement
func (s *service) GetGameStartedMessage(ctx context.Context, input *GetGameStartedMessageInput) (*GetGameStartedMessageOutput, error) {
	mode := strings.ToUpper(string(input.Mode))

	var message string
	if input.BotsAdded > 0 {
		message = fmt.Sprintf("**%s Game Started!** Added %d Bots.", mode, input.BotsAdded)
	} else {
		message = fmt.Sprintf("**%s Game Started!** Full table.", mode)
	}

	return &GetGameStartedMessageOutput{Message: message}, nil
}

// GetQueueJoinedMessage returns the message for a player entering a queue
func (s *service) GetQueueJoinedMessage(ctx context.Context, input *GetQueueJoinedMessageInput) (*GetQueueJoinedMessageOutput, error) {
	return &GetQueueJoinedMessageOutput{
		Message: fmt.Sprintf("Joined %s Queue! (%d/%d).",
			strings.ToUpper(string(input.Mode)), input.Position, input.Capacity),
	}, nil
}

// GetPlayerJoinedMessage returns the announcement for a backfilled player
func (s *service) GetPlayerJoinedMessage(ctx context.Context, input *GetPlayerJoinedMessageInput) (*GetPlayerJoinedMessageOutput, error) {
	variants := []string{
		"♻️ **%s** joined the game!",
		"♻️ **%s** took over a bot's seat!",
		"♻️ Fresh blood! **%s** is in.",
	}

	return &GetPlayerJoinedMessageOutput{
		Message: fmt.Sprintf(s.choose(variants), input.PlayerName),
	}, nil
}

// GetTimeUpMessage returns the submission deadline announcement
func (s *service) GetTimeUpMessage(ctx context.Context, input *GetTimeUpMessageInput) (*GetTimeUpMessageOutput, error) {
	return &GetTimeUpMessageOutput{
		Message: "⏳ **Time is up!** Moving to judging...",
	}, nil
}

// GetNoSubmissionsMessage returns the empty-round announcement
func (s *service) GetNoSubmissionsMessage(ctx context.Context, input *GetNoSubmissionsMessageInput) (*GetNoSubmissionsMessageOutput, error) {
	return &GetNoSubmissionsMessageOutput{
		Message: "No cards were submitted! Skipping round.",
	}, nil
}

// GetBotThinkingMessage returns the bot judge flavor line
func (s *service) GetBotThinkingMessage(ctx context.Context, input *GetBotThinkingMessageInput) (*GetBotThinkingMessageOutput, error) {
	variants := []string{
		"The System Czar is thinking...",
		"The System Czar squints at the cards...",
		"The System Czar consults the algorithm...",
	}

	return &GetBotThinkingMessageOutput{Message: s.choose(variants)}, nil
}

// GetJudgeAsleepMessage returns the judge deadline fallback announcement
func (s *service) GetJudgeAsleepMessage(ctx context.Context, input *GetJudgeAsleepMessageInput) (*GetJudgeAsleepMessageOutput, error) {
	return &GetJudgeAsleepMessageOutput{
		Message: "Czar fell asleep! Random winner chosen.",
	}, nil
}

// GetRoundWinnerMessage returns the round winner announcement
func (s *service) GetRoundWinnerMessage(ctx context.Context, input *GetRoundWinnerMessageInput) (*GetRoundWinnerMessageOutput, error) {
	return &GetRoundWinnerMessageOutput{
		Message: fmt.Sprintf("🏆 **%s** wins! (%s)", input.WinnerName, input.Card),
	}, nil
}
