package decks

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"os"
	"sync"
	"time"

	"github.com/Sugar-Rush-HQ/Cards-Against-Humanity/internal/models"
)

// Deck is one mode's pair of card lists
type Deck struct {
	// Prompts are the black cards read out each round
	Prompts []string `json:"black_cards"`

	// Responses are the white cards players hold in hand
	Responses []string `json:"white_cards"`
}

// Config holds configuration for a deck store
type Config struct {
	// Sets maps each mode to its deck pair
	Sets map[models.Mode]*Deck

	// Optional seed for testing
	Seed int64
}

// Store holds the loaded decks and draws cards from them.
// It is read-only after construction; only the random source is guarded.
type Store struct {
	sets map[models.Mode]*Deck

	mu     sync.Mutex
	random *rand.Rand
}

// New creates a store from already-built deck sets, validating that every
// mode has both a non-empty prompt deck and a non-empty response deck.
func New(cfg *Config) (*Store, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if len(cfg.Sets) == 0 {
		return nil, errors.New("no decks configured")
	}

	for mode, deck := range cfg.Sets {
		if deck == nil || len(deck.Prompts) == 0 {
			return nil, fmt.Errorf("mode %q has no prompt cards", mode)
		}
		if len(deck.Responses) == 0 {
			return nil, fmt.Errorf("mode %q has no response cards", mode)
		}
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Store{
		sets:   cfg.Sets,
		random: rand.New(rand.NewSource(seed)),
	}, nil
}

// Load reads the card file at path and builds a store from it. A missing
// file falls back to the built-in decks with a logged warning; a file that
// exists but cannot be parsed or fails validation is a fatal load error.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Printf("WARNING: card file %s not found, using built-in fallback decks", path)
			return New(&Config{Sets: fallbackSets()})
		}
		return nil, fmt.Errorf("failed to read card file %s: %w", path, err)
	}

	var sets map[models.Mode]*Deck
	if err := json.Unmarshal(data, &sets); err != nil {
		return nil, fmt.Errorf("failed to parse card file %s: %w", path, err)
	}

	store, err := New(&Config{Sets: sets})
	if err != nil {
		return nil, fmt.Errorf("invalid card file %s: %w", path, err)
	}

	log.Printf("Cards loaded from %s. Modes available: %v", path, store.Modes())
	return store, nil
}

// fallbackSets returns the minimal built-in decks used when no card file
// is present
func fallbackSets() map[models.Mode]*Deck {
	return map[models.Mode]*Deck{
		models.ModeSFW: {
			Prompts:   []string{"Why?"},
			Responses: []string{"Because."},
		},
		models.ModeNSFW: {
			Prompts:   []string{"Sex?"},
			Responses: []string{"Yes."},
		},
	}
}

// Modes lists the modes this store has decks for
func (s *Store) Modes() []models.Mode {
	modes := make([]models.Mode, 0, len(s.sets))
	for _, m := range models.Modes() {
		if _, ok := s.sets[m]; ok {
			modes = append(modes, m)
		}
	}
	return modes
}

// HasMode reports whether the store holds decks for mode
func (s *Store) HasMode(mode models.Mode) bool {
	_, ok := s.sets[mode]
	return ok
}

// DrawPrompt draws one prompt card uniformly at random. Draws are with
// replacement; repeats across rounds are allowed.
func (s *Store) DrawPrompt(mode models.Mode) string {
	deck, ok := s.sets[mode]
	if !ok {
		return ""
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return deck.Prompts[s.random.Intn(len(deck.Prompts))]
}

// DrawResponse draws one response card uniformly at random, with replacement
func (s *Store) DrawResponse(mode models.Mode) string {
	deck, ok := s.sets[mode]
	if !ok {
		return ""
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return deck.Responses[s.random.Intn(len(deck.Responses))]
}

// Perm returns a random ordering of n indices, used to shuffle submissions
// into a display order uncorrelated with seat order
func (s *Store) Perm(n int) []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.random.Perm(n)
}
