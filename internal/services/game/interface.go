package game

import "context"

// Service defines the interface for matchmaking and game operations
type Service interface {
	// Join places a player into a same-mode game with an open bot seat,
	// or failing that into the mode's matchmaking queue
	Join(ctx context.Context, input *JoinInput) (*JoinOutput, error)

	// Leave removes a player from both matchmaking queues
	Leave(ctx context.Context, input *LeaveInput) (*LeaveOutput, error)

	// PlayCard finalizes a human player's response card for the current round
	PlayCard(ctx context.Context, input *PlayCardInput) (*PlayCardOutput, error)

	// PickWinner resolves the current round in favor of one submission
	PickWinner(ctx context.Context, input *PickWinnerInput) (*PickWinnerOutput, error)

	// GetHand returns the caller's current hand and prompt for rendering
	GetHand(ctx context.Context, input *GetHandInput) (*GetHandOutput, error)

	// GetTopWins returns the all-time win tally across completed games
	GetTopWins(ctx context.Context, input *GetTopWinsInput) (*GetTopWinsOutput, error)
}

//go:generate mockgen -package=mocks -destination=mocks/mock_notifier.go -source=interface.go Notifier

// Notifier delivers game events to players. Delivery is fire-and-forget;
// implementations log failures rather than returning them.
type Notifier interface {
	// Announce broadcasts a plain text message to a game's channels
	Announce(ctx context.Context, input *AnnounceInput)

	// AnnounceRound broadcasts the round number, prompt and judge
	AnnounceRound(ctx context.Context, input *AnnounceRoundInput)

	// AnnounceSubmissions broadcasts the shuffled submission list
	AnnounceSubmissions(ctx context.Context, input *AnnounceSubmissionsInput)

	// AnnounceStandings broadcasts the final scoreboard
	AnnounceStandings(ctx context.Context, input *AnnounceStandingsInput)

	// PromptSubmission privately invites one human player to play a card
	PromptSubmission(ctx context.Context, input *PromptSubmissionInput)

	// NotifyJudge privately tells a human judge that players are picking
	NotifyJudge(ctx context.Context, input *NotifyJudgeInput)

	// PromptJudgment privately presents the submissions to the judge
	PromptJudgment(ctx context.Context, input *PromptJudgmentInput)
}
