package record

import (
	"github.com/Sugar-Rush-HQ/Cards-Against-Humanity/internal/models"
	"github.com/redis/go-redis/v9"
)

// Config holds configuration for the Redis record repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// RecordMatchInput contains the finished game to persist
type RecordMatchInput struct {
	Record *models.MatchRecord
}

// GetMatchInput identifies a finished game
type GetMatchInput struct {
	MatchID string
}

// GetMatchOutput contains one finished game
type GetMatchOutput struct {
	Record *models.MatchRecord
}

// GetTopWinsInput bounds the win tally query
type GetTopWinsInput struct {
	Limit int
}

// WinEntry is one row of the all-time win tally
type WinEntry struct {
	PlayerID   string
	PlayerName string
	Wins       int64
}

// GetTopWinsOutput contains the all-time win tally, best first
type GetTopWinsOutput struct {
	Entries []WinEntry
}
