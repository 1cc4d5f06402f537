package record

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Sugar-Rush-HQ/Cards-Against-Humanity/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	matchKeyPrefix = "match:"
	matchIndexKey  = "matches"
	winsKey        = "wins"
	namesKey       = "player_names"
)

// ErrMatchNotFound is returned when a match is not found
var ErrMatchNotFound = errors.New("match not found")

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed record repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// RecordMatch persists a finished game and bumps the winners' tallies
func (r *redisRepository) RecordMatch(ctx context.Context, input *RecordMatchInput) error {
	if input == nil || input.Record == nil {
		return errors.New("input and record cannot be nil")
	}

	recordJSON, err := json.Marshal(input.Record)
	if err != nil {
		return fmt.Errorf("failed to marshal match record: %w", err)
	}

	pipe := r.client.Pipeline()

	matchKey := fmt.Sprintf("%s%s", matchKeyPrefix, input.Record.ID)
	pipe.Set(ctx, matchKey, recordJSON, 0)

	pipe.ZAdd(ctx, matchIndexKey, redis.Z{
		Score:  float64(input.Record.FinishedAt.UnixNano()),
		Member: input.Record.ID,
	})

	// Every human sharing the top score counts as a winner
	if len(input.Record.Standings) > 0 {
		top := input.Record.Standings[0].Score
		for _, st := range input.Record.Standings {
			if st.Score != top {
				break
			}
			if st.IsBot {
				continue
			}
			pipe.ZIncrBy(ctx, winsKey, 1, st.PlayerID)
			pipe.HSet(ctx, namesKey, st.PlayerID, st.PlayerName)
		}
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to record match: %w", err)
	}

	return nil
}

// GetMatch retrieves one finished game by ID
func (r *redisRepository) GetMatch(ctx context.Context, input *GetMatchInput) (*GetMatchOutput, error) {
	if input == nil || input.MatchID == "" {
		return nil, errors.New("input and match ID cannot be empty")
	}

	matchKey := fmt.Sprintf("%s%s", matchKeyPrefix, input.MatchID)
	recordJSON, err := r.client.Get(ctx, matchKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to get match: %w", err)
	}

	var record models.MatchRecord
	if err := json.Unmarshal([]byte(recordJSON), &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal match record: %w", err)
	}

	return &GetMatchOutput{Record: &record}, nil
}

// GetTopWins returns the all-time win tally, best first
func (r *redisRepository) GetTopWins(ctx context.Context, input *GetTopWinsInput) (*GetTopWinsOutput, error) {
	limit := int64(10)
	if input != nil && input.Limit > 0 {
		limit = int64(input.Limit)
	}

	tallies, err := r.client.ZRevRangeWithScores(ctx, winsKey, 0, limit-1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get win tallies: %w", err)
	}

	entries := make([]WinEntry, 0, len(tallies))
	for _, z := range tallies {
		playerID, ok := z.Member.(string)
		if !ok {
			continue
		}

		name, err := r.client.HGet(ctx, namesKey, playerID).Result()
		if err != nil {
			name = playerID
		}

		entries = append(entries, WinEntry{
			PlayerID:   playerID,
			PlayerName: name,
			Wins:       int64(z.Score),
		})
	}

	return &GetTopWinsOutput{Entries: entries}, nil
}
