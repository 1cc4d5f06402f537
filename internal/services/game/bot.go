package game

import (
	"math/rand"
	"sync"
	"time"
)

// AutoPlayer is the strategy bots use when they hold a seat. It is injected
// so tests can seed it.
type AutoPlayer interface {
	// PickCard returns the index of the card a bot plays from its hand
	PickCard(hand []string) int

	// JudgeWinner returns the index of the winning submission out of count.
	// It is also the fallback when a human judge misses the deadline.
	JudgeWinner(count int) int
}

// Config for the randomized auto player
type AutoPlayerConfig struct {
	// Optional seed for testing
	Seed int64
}

// randomAutoPlayer picks uniformly at random
type randomAutoPlayer struct {
	mu     sync.Mutex
	random *rand.Rand
}

// NewAutoPlayer creates the default randomized auto player
func NewAutoPlayer(cfg *AutoPlayerConfig) AutoPlayer {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &randomAutoPlayer{
		random: rand.New(rand.NewSource(seed)),
	}
}

func (a *randomAutoPlayer) PickCard(hand []string) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.random.Intn(len(hand))
}

func (a *randomAutoPlayer) JudgeWinner(count int) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.random.Intn(count)
}
