package game

import (
	"context"
	"sync"
	"time"
)

// judgeVote tracks one round's human judging. The first valid pick wins and
// releases the wait; later picks and picks by anyone but the judge have no
// effect on the outcome.
type judgeVote struct {
	mu      sync.Mutex
	judgeID string
	cards   []string
	winner  int
	decided chan struct{}
}

func newJudgeVote(judgeID string, cards []string) *judgeVote {
	return &judgeVote{
		judgeID: judgeID,
		cards:   cards,
		winner:  -1,
		decided: make(chan struct{}),
	}
}

// pick records the judge's selection. It returns ErrNotJudge for any other
// caller and reports whether this pick decided the round.
func (v *judgeVote) pick(playerID string, index int) (bool, error) {
	if playerID != v.judgeID {
		return false, ErrNotJudge
	}
	if index < 0 || index >= len(v.cards) {
		return false, ErrNoJudging
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	if v.winner >= 0 {
		return false, nil
	}

	v.winner = index
	close(v.decided)
	return true, nil
}

// wait blocks until the judge decided or the deadline elapsed. It returns
// the winning index, or -1 on deadline.
func (v *judgeVote) wait(ctx context.Context, deadline time.Duration) int {
	timer := time.NewTimer(deadline)
	defer timer.Stop()

	select {
	case <-v.decided:
	case <-timer.C:
		return -1
	case <-ctx.Done():
		return -1
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	return v.winner
}
