package game

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	clockMocks "github.com/Sugar-Rush-HQ/Cards-Against-Humanity/internal/common/clock/mocks"
	uuidMocks "github.com/Sugar-Rush-HQ/Cards-Against-Humanity/internal/common/uuid/mocks"
	"github.com/Sugar-Rush-HQ/Cards-Against-Humanity/internal/decks"
	"github.com/Sugar-Rush-HQ/Cards-Against-Humanity/internal/models"
	recordRepo "github.com/Sugar-Rush-HQ/Cards-Against-Humanity/internal/repositories/record"
	recordMocks "github.com/Sugar-Rush-HQ/Cards-Against-Humanity/internal/repositories/record/mocks"
	"github.com/Sugar-Rush-HQ/Cards-Against-Humanity/internal/services/messaging"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// fakeNotifier captures game events on buffered channels so tests can drive
// a running session like a player would
type fakeNotifier struct {
	rounds      chan *AnnounceRoundInput
	prompts     chan *PromptSubmissionInput
	judgeCalls  chan *PromptJudgmentInput
	judgeWaits  chan *NotifyJudgeInput
	submissions chan *AnnounceSubmissionsInput
	standings   chan *AnnounceStandingsInput
	texts       chan string
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{
		rounds:      make(chan *AnnounceRoundInput, 64),
		prompts:     make(chan *PromptSubmissionInput, 64),
		judgeCalls:  make(chan *PromptJudgmentInput, 64),
		judgeWaits:  make(chan *NotifyJudgeInput, 64),
		submissions: make(chan *AnnounceSubmissionsInput, 64),
		standings:   make(chan *AnnounceStandingsInput, 64),
		texts:       make(chan string, 256),
	}
}

func (f *fakeNotifier) Announce(ctx context.Context, input *AnnounceInput) {
	select {
	case f.texts <- input.Text:
	default:
	}
}

func (f *fakeNotifier) AnnounceRound(ctx context.Context, input *AnnounceRoundInput) {
	select {
	case f.rounds <- input:
	default:
	}
}

func (f *fakeNotifier) AnnounceSubmissions(ctx context.Context, input *AnnounceSubmissionsInput) {
	select {
	case f.submissions <- input:
	default:
	}
}

func (f *fakeNotifier) AnnounceStandings(ctx context.Context, input *AnnounceStandingsInput) {
	select {
	case f.standings <- input:
	default:
	}
}

func (f *fakeNotifier) PromptSubmission(ctx context.Context, input *PromptSubmissionInput) {
	select {
	case f.prompts <- input:
	default:
	}
}

func (f *fakeNotifier) NotifyJudge(ctx context.Context, input *NotifyJudgeInput) {
	select {
	case f.judgeWaits <- input:
	default:
	}
}

func (f *fakeNotifier) PromptJudgment(ctx context.Context, input *PromptJudgmentInput) {
	select {
	case f.judgeCalls <- input:
	default:
	}
}

type GameServiceTestSuite struct {
	suite.Suite
	mockCtrl    *gomock.Controller
	mockRecords *recordMocks.MockRepository
	mockClock   *clockMocks.MockClock
	mockUUID    *uuidMocks.MockUUID
	notifier    *fakeNotifier
	recorded    chan *recordRepo.RecordMatchInput
	ctx         context.Context

	testTime time.Time
	gameSeq  int32
}

func TestGameServiceTestSuite(t *testing.T) {
	suite.Run(t, new(GameServiceTestSuite))
}

func (s *GameServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRecords = recordMocks.NewMockRepository(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)
	s.notifier = newFakeNotifier()
	s.recorded = make(chan *recordRepo.RecordMatchInput, 8)
	s.ctx = context.Background()
	s.testTime = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)
	s.gameSeq = 0

	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	s.mockUUID.EXPECT().NewUUID().DoAndReturn(func() string {
		return fmt.Sprintf("test-game-%d", atomic.AddInt32(&s.gameSeq, 1))
	}).AnyTimes()

	s.mockRecords.EXPECT().
		RecordMatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *recordRepo.RecordMatchInput) error {
			s.recorded <- input
			return nil
		}).
		AnyTimes()
}

func (s *GameServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *GameServiceTestSuite) newDecks() *decks.Store {
	store, err := decks.New(&decks.Config{
		Seed: 42,
		Sets: map[models.Mode]*decks.Deck{
			models.ModeSFW: {
				Prompts:   []string{"Why?", "What?", "Who?"},
				Responses: []string{"Because.", "Nothing.", "Cheese.", "A duck.", "Mondays."},
			},
			models.ModeNSFW: {
				Prompts:   []string{"Sex?"},
				Responses: []string{"Yes.", "No.", "Maybe."},
			},
		},
	})
	s.Require().NoError(err)
	return store
}

// newService builds a service around the suite mocks; mutate fills in the
// per-test parameters before construction
func (s *GameServiceTestSuite) newService(mutate func(cfg *Config)) Service {
	messages, err := messaging.NewService(&messaging.ServiceConfig{Seed: 42})
	s.Require().NoError(err)

	cfg := &Config{
		Capacity:      6,
		Rounds:        5,
		HandSize:      7,
		TurnTimeout:   time.Hour,
		QueueTimeout:  time.Hour,
		JudgeTimeout:  time.Hour,
		Decks:         s.newDecks(),
		Notifier:      s.notifier,
		Messages:      messages,
		RecordRepo:    s.mockRecords,
		AutoPlayer:    NewAutoPlayer(&AutoPlayerConfig{Seed: 42}),
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
	}
	if mutate != nil {
		mutate(cfg)
	}

	svc, err := New(cfg)
	s.Require().NoError(err)
	return svc
}

func (s *GameServiceTestSuite) join(svc Service, id, name string, mode models.Mode) (*JoinOutput, error) {
	return svc.Join(s.ctx, &JoinInput{
		PlayerID:   id,
		PlayerName: name,
		ChannelID:  "channel-" + id,
		Mode:       mode,
	})
}

func (s *GameServiceTestSuite) waitRecorded() *recordRepo.RecordMatchInput {
	select {
	case rec := <-s.recorded:
		return rec
	case <-time.After(10 * time.Second):
		s.FailNow("timed out waiting for a match record")
		return nil
	}
}

func (s *GameServiceTestSuite) TestNew_Validation() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{})
	s.ErrorIs(err, ErrNilDecks)

	_, err = New(&Config{Decks: s.newDecks()})
	s.ErrorIs(err, ErrNilNotifier)
}

func (s *GameServiceTestSuite) TestJoin_QueuePositions() {
	svc := s.newService(nil)

	out, err := s.join(svc, "alice", "Alice", models.ModeSFW)
	s.Require().NoError(err)
	s.False(out.Backfilled)
	s.Equal(1, out.QueuePosition)
	s.Equal(6, out.Capacity)

	out, err = s.join(svc, "bob", "Bob", models.ModeSFW)
	s.Require().NoError(err)
	s.Equal(2, out.QueuePosition)
}

func (s *GameServiceTestSuite) TestJoin_DoubleJoinRejected() {
	svc := s.newService(nil)

	_, err := s.join(svc, "alice", "Alice", models.ModeSFW)
	s.Require().NoError(err)

	// A queued player cannot join either queue again
	_, err = s.join(svc, "alice", "Alice", models.ModeSFW)
	s.ErrorIs(err, ErrAlreadyQueued)

	_, err = s.join(svc, "alice", "Alice", models.ModeNSFW)
	s.ErrorIs(err, ErrAlreadyQueued)

	// The queue is unchanged: the next player is second, not third
	out, err := s.join(svc, "bob", "Bob", models.ModeSFW)
	s.Require().NoError(err)
	s.Equal(2, out.QueuePosition)
}

func (s *GameServiceTestSuite) TestJoin_UnknownMode() {
	svc := s.newService(nil)

	_, err := s.join(svc, "alice", "Alice", models.Mode("bogus"))
	s.ErrorIs(err, ErrUnknownMode)
}

func (s *GameServiceTestSuite) TestLeave_IsIdempotent() {
	svc := s.newService(nil)

	_, err := s.join(svc, "alice", "Alice", models.ModeSFW)
	s.Require().NoError(err)

	out, err := svc.Leave(s.ctx, &LeaveInput{PlayerID: "alice"})
	s.Require().NoError(err)
	s.True(out.Removed)

	out, err = svc.Leave(s.ctx, &LeaveInput{PlayerID: "alice"})
	s.Require().NoError(err)
	s.False(out.Removed)

	// Alice can queue again after leaving
	joined, err := s.join(svc, "alice", "Alice", models.ModeSFW)
	s.Require().NoError(err)
	s.Equal(1, joined.QueuePosition)
}

func (s *GameServiceTestSuite) TestJoin_QueueDrainsAtCapacity() {
	svc := s.newService(func(cfg *Config) {
		cfg.Capacity = 3
		cfg.TurnTimeout = 50 * time.Millisecond
		cfg.JudgeTimeout = 50 * time.Millisecond
	})

	for i, id := range []string{"alice", "bob", "carol"} {
		out, err := s.join(svc, id, id, models.ModeSFW)
		s.Require().NoError(err)
		if i < 2 {
			s.Equal(i+1, out.QueuePosition)
		}
	}

	// The seated players cannot rejoin, and the drain emptied the queue:
	// the next joiner is first in line again
	_, err := s.join(svc, "alice", "alice", models.ModeSFW)
	s.ErrorIs(err, ErrAlreadyInGame)

	out, err := s.join(svc, "dave", "dave", models.ModeSFW)
	s.Require().NoError(err)
	s.Equal(1, out.QueuePosition)

	// Nobody submits anything, so all five rounds skip and the game ends
	rec := s.waitRecorded()
	s.Len(rec.Record.Standings, 3)
	s.Equal(models.ModeSFW, rec.Record.Mode)
	s.Equal(s.testTime, rec.Record.FinishedAt)
	for _, st := range rec.Record.Standings {
		s.Equal(0, st.Score)
		s.False(st.IsBot)
	}
}

func (s *GameServiceTestSuite) TestCountdown_ForceStartsWithBots() {
	svc := s.newService(func(cfg *Config) {
		cfg.QueueTimeout = 50 * time.Millisecond
		cfg.TurnTimeout = 50 * time.Millisecond
		cfg.JudgeTimeout = 50 * time.Millisecond
	})

	out, err := s.join(svc, "alice", "Alice", models.ModeSFW)
	s.Require().NoError(err)
	s.Equal(1, out.QueuePosition)

	rec := s.waitRecorded()
	s.Require().Len(rec.Record.Standings, 6)

	humans, bots := 0, 0
	for _, st := range rec.Record.Standings {
		if st.IsBot {
			bots++
		} else {
			humans++
			s.Equal("alice", st.PlayerID)
		}
	}
	s.Equal(1, humans)
	s.Equal(5, bots)

	// Standings are sorted best first
	for i := 1; i < len(rec.Record.Standings); i++ {
		s.GreaterOrEqual(rec.Record.Standings[i-1].Score, rec.Record.Standings[i].Score)
	}

	// Bots submit every round, so every round crowned a winner
	total := 0
	for _, st := range rec.Record.Standings {
		total += st.Score
	}
	s.Equal(5, total)

	// Rounds ran strictly 1..5 with a pure round-robin judge
	wantJudges := []string{"Alice", "System Bot 1", "System Bot 2", "System Bot 3", "System Bot 4"}
	for i := 0; i < 5; i++ {
		select {
		case round := <-s.notifier.rounds:
			s.Equal(i+1, round.Round)
			s.Equal(wantJudges[i], round.JudgeName)
			s.NotEmpty(round.Prompt)
		case <-time.After(time.Second):
			s.FailNow("missing round announcement")
		}
	}
}

func (s *GameServiceTestSuite) TestCountdown_LeaveBeforeExpiryIsNoOp() {
	svc := s.newService(func(cfg *Config) {
		cfg.QueueTimeout = 50 * time.Millisecond
	})

	_, err := s.join(svc, "alice", "Alice", models.ModeSFW)
	s.Require().NoError(err)

	_, err = svc.Leave(s.ctx, &LeaveInput{PlayerID: "alice"})
	s.Require().NoError(err)

	// The countdown fires on an empty queue and starts nothing
	select {
	case rec := <-s.recorded:
		s.FailNow(fmt.Sprintf("unexpected game started: %v", rec))
	case <-time.After(300 * time.Millisecond):
	}
}

func (s *GameServiceTestSuite) TestRound_HumanPlaysAndJudges() {
	svc := s.newService(func(cfg *Config) {
		cfg.Capacity = 3
		cfg.QueueTimeout = 50 * time.Millisecond
		cfg.TurnTimeout = time.Second
		cfg.JudgeTimeout = time.Second
	})

	// Alice force-starts a game with two bots; round one makes her judge
	_, err := s.join(svc, "alice", "Alice", models.ModeSFW)
	s.Require().NoError(err)

	var judging *PromptJudgmentInput
	select {
	case judging = <-s.notifier.judgeCalls:
	case <-time.After(time.Second):
		s.FailNow("judge was never prompted")
	}
	s.Equal("alice", judging.PlayerID)
	s.Len(judging.Cards, 2)

	// Only the judge may pick
	_, err = svc.PickWinner(s.ctx, &PickWinnerInput{
		GameID:          judging.GameID,
		PlayerID:        "bot-1",
		SubmissionIndex: 0,
	})
	s.ErrorIs(err, ErrNotJudge)

	// The judge holds cards but cannot play them
	_, err = svc.PlayCard(s.ctx, &PlayCardInput{
		GameID:   judging.GameID,
		PlayerID: "alice",
		Card:     "Because.",
	})
	s.ErrorIs(err, ErrIsJudge)

	picked, err := svc.PickWinner(s.ctx, &PickWinnerInput{
		GameID:          judging.GameID,
		PlayerID:        "alice",
		SubmissionIndex: 0,
	})
	s.Require().NoError(err)
	s.True(picked.Accepted)
	s.Equal(judging.Cards[0], picked.Card)

	// Round two: a bot judges and Alice is invited to play
	var invite *PromptSubmissionInput
	select {
	case invite = <-s.notifier.prompts:
	case <-time.After(time.Second):
		s.FailNow("player was never invited to submit")
	}
	s.Equal("alice", invite.PlayerID)
	s.Equal(2, invite.Round)
	s.Len(invite.Hand, 7)

	hand, err := svc.GetHand(s.ctx, &GetHandInput{PlayerID: "alice"})
	s.Require().NoError(err)
	s.False(hand.IsJudge)
	s.Len(hand.Hand, 7)
	s.Equal(invite.Prompt, hand.Prompt)

	played, err := svc.PlayCard(s.ctx, &PlayCardInput{
		GameID:   invite.GameID,
		PlayerID: "alice",
		Card:     invite.Hand[0],
	})
	s.Require().NoError(err)
	s.Equal(invite.Hand[0], played.Card)

	// Playing removes the card from the hand
	hand, err = svc.GetHand(s.ctx, &GetHandInput{PlayerID: "alice"})
	s.Require().NoError(err)
	s.Len(hand.Hand, 6)

	// A second submission in the same round is rejected with nothing changed
	_, err = svc.PlayCard(s.ctx, &PlayCardInput{
		GameID:   invite.GameID,
		PlayerID: "alice",
		Card:     hand.Hand[0],
	})
	s.ErrorIs(err, ErrAlreadySubmitted)

	hand, err = svc.GetHand(s.ctx, &GetHandInput{PlayerID: "alice"})
	s.Require().NoError(err)
	s.Len(hand.Hand, 6)

	// An outsider cannot play at all
	_, err = svc.PlayCard(s.ctx, &PlayCardInput{
		GameID:   invite.GameID,
		PlayerID: "mallory",
		Card:     "Because.",
	})
	s.ErrorIs(err, ErrNotInSession)

	// Let the rest of the game resolve by its own deadlines
	rec := s.waitRecorded()
	s.Len(rec.Record.Standings, 3)
}

func (s *GameServiceTestSuite) TestJoin_BackfillsBotSeat() {
	svc := s.newService(func(cfg *Config) {
		cfg.Capacity = 3
		cfg.QueueTimeout = 50 * time.Millisecond
		cfg.TurnTimeout = 500 * time.Millisecond
		cfg.JudgeTimeout = 500 * time.Millisecond
	})

	_, err := s.join(svc, "alice", "Alice", models.ModeSFW)
	s.Require().NoError(err)

	// Wait until the game is running
	select {
	case <-s.notifier.rounds:
	case <-time.After(time.Second):
		s.FailNow("game never started")
	}

	out, err := s.join(svc, "bob", "Bob", models.ModeSFW)
	s.Require().NoError(err)
	s.True(out.Backfilled)
	s.NotEmpty(out.GameID)

	// Bob inherited the bot's seat, hand and selection intact
	hand, err := svc.GetHand(s.ctx, &GetHandInput{PlayerID: "bob"})
	s.Require().NoError(err)
	s.Equal(out.GameID, hand.GameID)

	_, err = s.join(svc, "bob", "Bob", models.ModeSFW)
	s.ErrorIs(err, ErrAlreadyInGame)

	rec := s.waitRecorded()
	s.Len(rec.Record.Standings, 3)

	names := make([]string, 0, 3)
	for _, st := range rec.Record.Standings {
		names = append(names, st.PlayerName)
	}
	s.Contains(names, "Bob")
}

func (s *GameServiceTestSuite) TestPlayCard_GameNotFound() {
	svc := s.newService(nil)

	_, err := svc.PlayCard(s.ctx, &PlayCardInput{
		GameID:   "nope",
		PlayerID: "alice",
		Card:     "Because.",
	})
	s.ErrorIs(err, ErrGameNotFound)

	_, err = svc.PickWinner(s.ctx, &PickWinnerInput{
		GameID:   "nope",
		PlayerID: "alice",
	})
	s.ErrorIs(err, ErrGameNotFound)
}

func (s *GameServiceTestSuite) TestGetHand_NotInAnyGame() {
	svc := s.newService(nil)

	_, err := svc.GetHand(s.ctx, &GetHandInput{PlayerID: "alice"})
	s.ErrorIs(err, ErrNotInSession)
}

func (s *GameServiceTestSuite) TestGetTopWins_DelegatesToRepository() {
	svc := s.newService(nil)

	s.mockRecords.EXPECT().
		GetTopWins(gomock.Any(), &recordRepo.GetTopWinsInput{Limit: 5}).
		Return(&recordRepo.GetTopWinsOutput{
			Entries: []recordRepo.WinEntry{
				{PlayerID: "alice", PlayerName: "Alice", Wins: 3},
				{PlayerID: "bob", PlayerName: "Bob", Wins: 1},
			},
		}, nil)

	out, err := svc.GetTopWins(s.ctx, &GetTopWinsInput{Limit: 5})
	s.Require().NoError(err)
	s.Require().Len(out.Entries, 2)
	s.Equal("Alice", out.Entries[0].PlayerName)
	s.Equal(int64(3), out.Entries[0].Wins)
}
