package record

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go -source=interface.go Repository

// Repository stores completed-match results. Live game state never goes
// through it; a running game only writes here once, after its final round.
type Repository interface {
	// RecordMatch persists one finished game's scoreboard and bumps the
	// winners' all-time tallies
	RecordMatch(ctx context.Context, input *RecordMatchInput) error

	// GetMatch retrieves one finished game by ID
	GetMatch(ctx context.Context, input *GetMatchInput) (*GetMatchOutput, error)

	// GetTopWins returns the all-time win tally, best first
	GetTopWins(ctx context.Context, input *GetTopWinsInput) (*GetTopWinsOutput, error)
}
