package game

import (
	"context"
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/Sugar-Rush-HQ/Cards-Against-Humanity/internal/models"
	recordRepo "github.com/Sugar-Rush-HQ/Cards-Against-Humanity/internal/repositories/record"
	"github.com/Sugar-Rush-HQ/Cards-Against-Humanity/internal/services/messaging"
)

// session is one running game. Its round loop executes as a single goroutine
// that suspends at exactly two points per round: the submission wait and the
// judging wait. All roster reads and writes go through mu; external callers
// (play, pick, backfill) only ever touch the roster under the same lock, so
// the loop never observes a half-swapped seat.
type session struct {
	id   string
	mode models.Mode
	svc  *service

	mu        sync.Mutex
	players   []*models.Participant
	judgeIdx  int
	round     int
	active    bool
	prompt    string
	collector *collector
	vote      *judgeVote
}

// run drives the full game: pad with bots, play every round, report
// standings, then deregister.
func (g *session) run(ctx context.Context) {
	cfg := g.svc.cfg

	g.mu.Lock()
	added := 0
	for len(g.players) < cfg.Capacity {
		added++
		bot := &models.Participant{
			PlayerID: fmt.Sprintf("bot-%d", added),
			Name:     fmt.Sprintf("System Bot %d", added),
			Kind:     models.ParticipantKindBot,
		}
		g.fillHand(bot)
		g.players = append(g.players, bot)
	}
	g.active = true
	g.mu.Unlock()

	g.announceStarted(ctx, added)

	for round := 1; round <= cfg.Rounds; round++ {
		g.playRound(ctx, round)

		if round < cfg.Rounds {
			g.pause(ctx, cfg.RoundPause)
		}
	}

	g.finish(ctx)
}

// playRound executes one full round of the state machine
func (g *session) playRound(ctx context.Context, round int) {
	cfg := g.svc.cfg

	// Advance to a new prompt and reset every seat
	g.mu.Lock()
	g.round = round
	g.prompt = g.svc.decks.DrawPrompt(g.mode)
	judge := g.players[g.judgeIdx]

	for _, p := range g.players {
		p.SelectedCard = ""
		g.fillHand(p)
	}

	// Bot seats pick immediately
	for _, p := range g.players {
		if p.IsBot() && p != judge {
			idx := g.svc.auto.PickCard(p.Hand)
			p.SelectedCard = p.Hand[idx]
			p.Hand = append(p.Hand[:idx], p.Hand[idx+1:]...)
		}
	}

	type invite struct {
		playerID  string
		channelID string
		hand      []string
	}
	var invites []invite
	for _, p := range g.players {
		if !p.IsBot() && p != judge {
			hand := make([]string, len(p.Hand))
			copy(hand, p.Hand)
			invites = append(invites, invite{playerID: p.PlayerID, channelID: p.ChannelID, hand: hand})
		}
	}

	g.collector = newCollector(len(invites))
	g.vote = nil
	prompt := g.prompt
	judgeName := judge.Name
	judgeID := judge.PlayerID
	judgeIsBot := judge.IsBot()
	judgeChannel := judge.ChannelID
	g.mu.Unlock()

	g.svc.notifier.AnnounceRound(ctx, &AnnounceRoundInput{
		GameID:    g.id,
		Channels:  g.channels(),
		Mode:      g.mode,
		Round:     round,
		Prompt:    prompt,
		JudgeName: judgeName,
	})

	for _, inv := range invites {
		g.svc.notifier.PromptSubmission(ctx, &PromptSubmissionInput{
			GameID:    g.id,
			PlayerID:  inv.playerID,
			ChannelID: inv.channelID,
			Round:     round,
			Prompt:    prompt,
			Hand:      inv.hand,
		})
	}
	if !judgeIsBot {
		g.svc.notifier.NotifyJudge(ctx, &NotifyJudgeInput{
			GameID:    g.id,
			PlayerID:  judgeID,
			ChannelID: judgeChannel,
			Round:     round,
		})
	}

	// Suspension point one: all human submissions or the turn deadline
	if !g.currentCollector().wait(ctx, cfg.TurnTimeout) {
		g.announceText(ctx, g.timeUpText(ctx))
	}

	// Collect whoever has a card down, judge excluded
	g.mu.Lock()
	var submitted []*models.Participant
	for i, p := range g.players {
		if i != g.judgeIdx && p.SelectedCard != "" {
			submitted = append(submitted, p)
		}
	}
	g.mu.Unlock()

	if len(submitted) == 0 {
		g.announceText(ctx, g.noSubmissionsText(ctx))
		g.rotateJudge()
		return
	}

	// Random display order breaks the seat-order correlation
	shuffled := make([]*models.Participant, len(submitted))
	for display, src := range g.svc.decks.Perm(len(submitted)) {
		shuffled[display] = submitted[src]
	}

	cards := make([]string, len(shuffled))
	for i, p := range shuffled {
		cards[i] = p.SelectedCard
	}

	g.svc.notifier.AnnounceSubmissions(ctx, &AnnounceSubmissionsInput{
		GameID:   g.id,
		Channels: g.channels(),
		Prompt:   prompt,
		Cards:    cards,
	})

	var winner *models.Participant
	if judgeIsBot {
		g.announceText(ctx, g.botThinkingText(ctx))
		g.pause(ctx, cfg.BotJudgePause)
		winner = shuffled[g.svc.auto.JudgeWinner(len(shuffled))]
	} else {
		vote := newJudgeVote(judgeID, cards)
		g.mu.Lock()
		g.vote = vote
		g.mu.Unlock()

		g.svc.notifier.PromptJudgment(ctx, &PromptJudgmentInput{
			GameID:    g.id,
			PlayerID:  judgeID,
			ChannelID: judgeChannel,
			Prompt:    prompt,
			Cards:     cards,
		})

		// Suspension point two: the judge's pick or the judging deadline
		picked := vote.wait(ctx, cfg.JudgeTimeout)

		g.mu.Lock()
		g.vote = nil
		g.mu.Unlock()

		if picked < 0 {
			winner = shuffled[g.svc.auto.JudgeWinner(len(shuffled))]
			g.announceText(ctx, g.judgeAsleepText(ctx))
		} else {
			winner = shuffled[picked]
		}
	}

	g.mu.Lock()
	winner.Score++
	winnerName := winner.Name
	winnerCard := winner.SelectedCard
	g.mu.Unlock()

	g.announceText(ctx, g.roundWinnerText(ctx, winnerName, winnerCard))
	g.rotateJudge()
}

// finish reports standings, records the match, and drops the session from
// the active set
func (g *session) finish(ctx context.Context) {
	g.mu.Lock()
	standings := make([]models.Standing, 0, len(g.players))
	for _, p := range g.players {
		standings = append(standings, models.Standing{
			PlayerID:   p.PlayerID,
			PlayerName: p.Name,
			Score:      p.Score,
			IsBot:      p.IsBot(),
		})
	}
	g.mu.Unlock()

	// Stable sort keeps seat order for ties
	sort.SliceStable(standings, func(i, j int) bool {
		return standings[i].Score > standings[j].Score
	})

	g.svc.notifier.AnnounceStandings(ctx, &AnnounceStandingsInput{
		GameID:    g.id,
		Channels:  g.channels(),
		Standings: standings,
	})

	err := g.svc.records.RecordMatch(ctx, &recordRepo.RecordMatchInput{
		Record: &models.MatchRecord{
			ID:         g.id,
			Mode:       g.mode,
			FinishedAt: g.svc.clock.Now(),
			Standings:  standings,
		},
	})
	if err != nil {
		log.Printf("Failed to record match %s: %v", g.id, err)
	}

	g.svc.dropGame(g.id)
}

// playCard finalizes a human submission for the current round
func (g *session) playCard(playerID, card string) (*PlayCardOutput, error) {
	g.mu.Lock()

	var player *models.Participant
	for _, p := range g.players {
		if !p.IsBot() && p.PlayerID == playerID {
			player = p
			break
		}
	}
	if player == nil {
		g.mu.Unlock()
		return nil, ErrNotInSession
	}

	if g.players[g.judgeIdx] == player {
		g.mu.Unlock()
		return nil, ErrIsJudge
	}

	if player.SelectedCard != "" {
		g.mu.Unlock()
		return nil, ErrAlreadySubmitted
	}

	cardIdx := -1
	for i, c := range player.Hand {
		if c == card {
			cardIdx = i
			break
		}
	}
	if cardIdx < 0 {
		g.mu.Unlock()
		return nil, ErrCardNotInHand
	}

	player.Hand = append(player.Hand[:cardIdx], player.Hand[cardIdx+1:]...)
	player.SelectedCard = card
	collector := g.collector
	g.mu.Unlock()

	if collector != nil {
		collector.record()
	}

	return &PlayCardOutput{Card: card}, nil
}

// pickWinner resolves the current judging wait in favor of one submission
func (g *session) pickWinner(playerID string, index int) (*PickWinnerOutput, error) {
	g.mu.Lock()
	vote := g.vote
	inGame := false
	for _, p := range g.players {
		if p.PlayerID == playerID {
			inGame = true
			break
		}
	}
	g.mu.Unlock()

	if !inGame {
		return nil, ErrNotInSession
	}
	if vote == nil {
		return nil, ErrNoJudging
	}

	decided, err := vote.pick(playerID, index)
	if err != nil {
		return nil, err
	}

	out := &PickWinnerOutput{Accepted: decided}
	if decided {
		out.Card = vote.cards[index]
	}
	return out, nil
}

// hand returns a snapshot of the player's current hand and round context
func (g *session) hand(playerID string) (*GetHandOutput, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	for i, p := range g.players {
		if !p.IsBot() && p.PlayerID == playerID {
			hand := make([]string, len(p.Hand))
			copy(hand, p.Hand)
			return &GetHandOutput{
				GameID:  g.id,
				Prompt:  g.prompt,
				Hand:    hand,
				IsJudge: i == g.judgeIdx,
			}, true
		}
	}
	return nil, false
}

// hasPlayer reports whether playerID holds a human seat
func (g *session) hasPlayer(playerID string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, p := range g.players {
		if !p.IsBot() && p.PlayerID == playerID {
			return true
		}
	}
	return false
}

// backfill swaps the first bot seat for the given human, preserving the
// seat's hand, score and current selection so the round in progress is
// unaffected. The swap is a single slot assignment under the roster lock.
func (g *session) backfill(playerID, playerName, channelID string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	for i, p := range g.players {
		if !p.IsBot() {
			continue
		}
		g.players[i] = &models.Participant{
			PlayerID:     playerID,
			Name:         playerName,
			ChannelID:    channelID,
			Kind:         models.ParticipantKindHuman,
			Hand:         p.Hand,
			Score:        p.Score,
			SelectedCard: p.SelectedCard,
		}
		return true
	}
	return false
}

// rotateJudge advances the judge cursor by one seat
func (g *session) rotateJudge() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.judgeIdx = (g.judgeIdx + 1) % len(g.players)
}

// fillHand draws replacement cards until the seat holds a full hand.
// Callers must hold g.mu.
func (g *session) fillHand(p *models.Participant) {
	for len(p.Hand) < g.svc.cfg.HandSize {
		p.Hand = append(p.Hand, g.svc.decks.DrawResponse(g.mode))
	}
}

// channels returns the distinct delivery channels of the human seats
func (g *session) channels() []string {
	g.mu.Lock()
	defer g.mu.Unlock()

	seen := make(map[string]bool)
	var channels []string
	for _, p := range g.players {
		if p.IsBot() || p.ChannelID == "" || seen[p.ChannelID] {
			continue
		}
		seen[p.ChannelID] = true
		channels = append(channels, p.ChannelID)
	}
	return channels
}

func (g *session) currentCollector() *collector {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.collector
}

// pause sleeps for the cosmetic duration, returning early on cancellation
func (g *session) pause(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-ctx.Done():
	}
}

// announceStarted broadcasts the game start, noting how many bot seats were
// filled
func (g *session) announceStarted(ctx context.Context, botsAdded int) {
	out, err := g.svc.messages.GetGameStartedMessage(ctx, &messaging.GetGameStartedMessageInput{
		Mode:      g.mode,
		BotsAdded: botsAdded,
	})
	if err != nil {
		log.Printf("Failed to build game started message: %v", err)
		return
	}
	g.announceText(ctx, out.Message)
}

func (g *session) announceText(ctx context.Context, text string) {
	if text == "" {
		return
	}
	g.svc.notifier.Announce(ctx, &AnnounceInput{
		GameID:   g.id,
		Channels: g.channels(),
		Text:     text,
	})
}

func (g *session) timeUpText(ctx context.Context) string {
	out, err := g.svc.messages.GetTimeUpMessage(ctx, &messaging.GetTimeUpMessageInput{})
	if err != nil {
		return ""
	}
	return out.Message
}

func (g *session) noSubmissionsText(ctx context.Context) string {
	out, err := g.svc.messages.GetNoSubmissionsMessage(ctx, &messaging.GetNoSubmissionsMessageInput{})
	if err != nil {
		return ""
	}
	return out.Message
}

func (g *session) botThinkingText(ctx context.Context) string {
	out, err := g.svc.messages.GetBotThinkingMessage(ctx, &messaging.GetBotThinkingMessageInput{})
	if err != nil {
		return ""
	}
	return out.Message
}

func (g *session) judgeAsleepText(ctx context.Context) string {
	out, err := g.svc.messages.GetJudgeAsleepMessage(ctx, &messaging.GetJudgeAsleepMessageInput{})
	if err != nil {
		return ""
	}
	return out.Message
}

func (g *session) roundWinnerText(ctx context.Context, name, card string) string {
	out, err := g.svc.messages.GetRoundWinnerMessage(ctx, &messaging.GetRoundWinnerMessageInput{
		WinnerName: name,
		Card:       card,
	})
	if err != nil {
		return ""
	}
	return out.Message
}
