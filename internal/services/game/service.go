package game

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/Sugar-Rush-HQ/Cards-Against-Humanity/internal/common/clock"
	"github.com/Sugar-Rush-HQ/Cards-Against-Humanity/internal/common/uuid"
	"github.com/Sugar-Rush-HQ/Cards-Against-Humanity/internal/decks"
	"github.com/Sugar-Rush-HQ/Cards-Against-Humanity/internal/models"
	recordRepo "github.com/Sugar-Rush-HQ/Cards-Against-Humanity/internal/repositories/record"
	"github.com/Sugar-Rush-HQ/Cards-Against-Humanity/internal/services/messaging"
)

// queue is one mode's waiting list plus its countdown handle. cancel is
// non-nil exactly while a countdown goroutine is live; closing it under the
// service lock is what makes capacity-drain and timer-expiry mutually
// exclusive.
type queue struct {
	players []*models.Participant
	cancel  chan struct{}
}

// service implements the Service interface
type service struct {
	cfg      *Config
	decks    *decks.Store
	notifier Notifier
	messages messaging.Service
	records  recordRepo.Repository
	auto     AutoPlayer
	clock    clock.Clock
	uuid     uuid.UUID

	mu     sync.Mutex
	queues map[models.Mode]*queue
	games  map[string]*session
}

// New creates a new game service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Decks == nil {
		return nil, ErrNilDecks
	}
	if cfg.Notifier == nil {
		return nil, ErrNilNotifier
	}
	if cfg.Messages == nil {
		return nil, ErrNilMessages
	}
	if cfg.RecordRepo == nil {
		return nil, ErrNilRecordRepo
	}
	if cfg.AutoPlayer == nil {
		return nil, ErrNilAutoPlayer
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	if cfg.Capacity == 0 {
		cfg.Capacity = DefaultCapacity
	}
	if cfg.Rounds == 0 {
		cfg.Rounds = DefaultRounds
	}
	if cfg.HandSize == 0 {
		cfg.HandSize = DefaultHandSize
	}
	if cfg.TurnTimeout == 0 {
		cfg.TurnTimeout = DefaultTurnTimeout
	}
	if cfg.QueueTimeout == 0 {
		cfg.QueueTimeout = DefaultQueueTimeout
	}
	if cfg.JudgeTimeout == 0 {
		cfg.JudgeTimeout = DefaultJudgeTimeout
	}

	queues := make(map[models.Mode]*queue)
	for _, mode := range models.Modes() {
		queues[mode] = &queue{}
	}

	return &service{
		cfg:      cfg,
		decks:    cfg.Decks,
		notifier: cfg.Notifier,
		messages: cfg.Messages,
		records:  cfg.RecordRepo,
		auto:     cfg.AutoPlayer,
		clock:    cfg.Clock,
		uuid:     cfg.UUIDGenerator,
		queues:   queues,
		games:    make(map[string]*session),
	}, nil
}

// Join places a player into a same-mode game with an open bot seat, or
// failing that into the mode's matchmaking queue
func (s *service) Join(ctx context.Context, input *JoinInput) (*JoinOutput, error) {
	if !input.Mode.Valid() || !s.decks.HasMode(input.Mode) {
		return nil, ErrUnknownMode
	}

	s.mu.Lock()

	// A player holds at most one seat across all games
	for _, g := range s.games {
		if g.hasPlayer(input.PlayerID) {
			s.mu.Unlock()
			return nil, ErrAlreadyInGame
		}
	}

	// Prefer replacing a bot seat in a running game of the same mode
	for _, g := range s.games {
		if g.mode != input.Mode {
			continue
		}
		if g.backfill(input.PlayerID, input.PlayerName, input.ChannelID) {
			gameID := g.id
			s.mu.Unlock()

			s.announceJoined(ctx, g, input.PlayerName)
			return &JoinOutput{
				Backfilled: true,
				GameID:     gameID,
				Capacity:   s.cfg.Capacity,
			}, nil
		}
	}

	for _, q := range s.queues {
		for _, p := range q.players {
			if p.PlayerID == input.PlayerID {
				s.mu.Unlock()
				return nil, ErrAlreadyQueued
			}
		}
	}

	q := s.queues[input.Mode]
	q.players = append(q.players, &models.Participant{
		PlayerID:  input.PlayerID,
		Name:      input.PlayerName,
		ChannelID: input.ChannelID,
		Kind:      models.ParticipantKindHuman,
	})
	position := len(q.players)

	// First waiter arms the countdown; a full queue drains immediately
	if position == 1 {
		s.startCountdown(input.Mode, q)
	}
	if position >= s.cfg.Capacity {
		s.drainLocked(ctx, input.Mode, q)
	}

	s.mu.Unlock()

	return &JoinOutput{
		QueuePosition: position,
		Capacity:      s.cfg.Capacity,
	}, nil
}

// Leave removes a player from both matchmaking queues. It never fails; a
// player already seated in a game is left alone.
func (s *service) Leave(ctx context.Context, input *LeaveInput) (*LeaveOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := false
	for _, q := range s.queues {
		for i, p := range q.players {
			if p.PlayerID == input.PlayerID {
				q.players = append(q.players[:i], q.players[i+1:]...)
				removed = true
				break
			}
		}
	}

	return &LeaveOutput{Removed: removed}, nil
}

// PlayCard finalizes a human player's response card for the current round
func (s *service) PlayCard(ctx context.Context, input *PlayCardInput) (*PlayCardOutput, error) {
	g, err := s.game(input.GameID)
	if err != nil {
		return nil, err
	}
	return g.playCard(input.PlayerID, input.Card)
}

// PickWinner resolves the current round in favor of one submission
func (s *service) PickWinner(ctx context.Context, input *PickWinnerInput) (*PickWinnerOutput, error) {
	g, err := s.game(input.GameID)
	if err != nil {
		return nil, err
	}

	out, err := g.pickWinner(input.PlayerID, input.SubmissionIndex)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetHand returns the caller's current hand and prompt for rendering
func (s *service) GetHand(ctx context.Context, input *GetHandInput) (*GetHandOutput, error) {
	s.mu.Lock()
	games := make([]*session, 0, len(s.games))
	for _, g := range s.games {
		games = append(games, g)
	}
	s.mu.Unlock()

	for _, g := range games {
		if out, ok := g.hand(input.PlayerID); ok {
			return out, nil
		}
	}
	return nil, ErrNotInSession
}

// GetTopWins returns the all-time win tally across completed games
func (s *service) GetTopWins(ctx context.Context, input *GetTopWinsInput) (*GetTopWinsOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = 10
	}

	out, err := s.records.GetTopWins(ctx, &recordRepo.GetTopWinsInput{Limit: limit})
	if err != nil {
		return nil, err
	}

	entries := make([]WinTally, 0, len(out.Entries))
	for _, e := range out.Entries {
		entries = append(entries, WinTally{
			PlayerID:   e.PlayerID,
			PlayerName: e.PlayerName,
			Wins:       e.Wins,
		})
	}
	return &GetTopWinsOutput{Entries: entries}, nil
}

// startCountdown arms the mode's forced-start timer. Callers must hold s.mu.
func (s *service) startCountdown(mode models.Mode, q *queue) {
	cancel := make(chan struct{})
	q.cancel = cancel

	go func() {
		timer := time.NewTimer(s.cfg.QueueTimeout)
		defer timer.Stop()

		select {
		case <-timer.C:
		case <-cancel:
			return
		}

		s.mu.Lock()
		defer s.mu.Unlock()

		// The queue may have drained and re-armed while the timer fired
		if q.cancel != cancel {
			return
		}
		q.cancel = nil

		if len(q.players) == 0 {
			return
		}

		log.Printf("%s queue wait limit reached, force starting with %d player(s)", mode, len(q.players))
		s.drainLocked(context.Background(), mode, q)
	}()
}

// drainLocked atomically moves up to Capacity players off the queue into a
// new game and spawns its round loop. Callers must hold s.mu.
func (s *service) drainLocked(ctx context.Context, mode models.Mode, q *queue) {
	if q.cancel != nil {
		close(q.cancel)
		q.cancel = nil
	}

	batch := s.cfg.Capacity
	if batch > len(q.players) {
		batch = len(q.players)
	}
	if batch == 0 {
		return
	}

	players := q.players[:batch:batch]
	q.players = q.players[batch:]

	g := &session{
		id:      s.uuid.NewUUID(),
		mode:    mode,
		svc:     s,
		players: players,
	}
	s.games[g.id] = g

	go g.run(context.Background())
}

// game looks up a running session by ID
func (s *service) game(gameID string) (*session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.games[gameID]
	if !ok {
		return nil, ErrGameNotFound
	}
	return g, nil
}

// dropGame removes a finished session from the active set
func (s *service) dropGame(gameID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.games, gameID)
}

// announceJoined broadcasts a backfill to the game's channels
func (s *service) announceJoined(ctx context.Context, g *session, playerName string) {
	out, err := s.messages.GetPlayerJoinedMessage(ctx, &messaging.GetPlayerJoinedMessageInput{
		PlayerName: playerName,
	})
	if err != nil {
		log.Printf("Failed to build player joined message: %v", err)
		return
	}

	s.notifier.Announce(ctx, &AnnounceInput{
		GameID:   g.id,
		Channels: g.channels(),
		Text:     out.Message,
	})
}
