package game

import (
	"time"

	"go.uber.org/zap"
)

// TimerResult is the outcome of stopping a work session.
type TimerResult struct {
	Award
	Elapsed        time.Duration `json:"elapsed"`
	Minutes        int           `json:"minutes"`
	BonusXP        int           `json:"bonus_xp"`
	StudyCompleted bool          `json:"study_completed"`
}

// StartTimer records the session start. A running session is replaced without credit.
func (e *Engine) StartTimer(identity string) (time.Time, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, err := e.player(identity); err != nil {
		return time.Time{}, err
	}
	now := e.now()
	if prev, ok := e.timers[identity]; ok {
		e.log.Debug("timer restarted, previous session discarded",
			zap.String("identity", identity),
			zap.Time("previous_start", prev),
		)
	}
	e.timers[identity] = now
	return now, nil
}

// ActiveTimer reports the running session, if any.
func (e *Engine) ActiveTimer(identity string) (start time.Time, elapsed time.Duration, ok bool, err error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, err := e.player(identity); err != nil {
		return time.Time{}, 0, false, err
	}
	start, ok = e.timers[identity]
	if !ok {
		return time.Time{}, 0, false, nil
	}
	elapsed = e.now().Sub(start)
	if elapsed < 0 {
		elapsed = 0
	}
	return start, elapsed, true, nil
}

// StopTimer credits one XP per whole elapsed minute plus the long-session bonus, and
// completes the daily study task for sessions of StudySessionMinutes or more.
// It returns ErrNoActiveTimer, changing nothing, when no session is running.
func (e *Engine) StopTimer(identity string) (*TimerResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	p, err := e.player(identity)
	if err != nil {
		return nil, err
	}
	start, ok := e.timers[identity]
	if !ok {
		return nil, ErrNoActiveTimer
	}

	now := e.now()
	elapsed := now.Sub(start)
	if elapsed < 0 {
		elapsed = 0
	}
	minutes := int(elapsed / time.Minute)
	bonus := 0
	if minutes >= TimerBonusMinutes {
		bonus = TimerBonusXP
	}
	delete(e.timers, identity)

	res := &TimerResult{Elapsed: elapsed, Minutes: minutes, BonusXP: bonus}
	if minutes >= StudySessionMinutes {
		rec := e.dailyRecord(p, now)
		res.StudyCompleted = !rec.Study
		rec.Study = true
	}
	res.Award = *e.applyXP(p, minutes+bonus, now)

	e.log.Info("timer stopped",
		zap.String("identity", identity),
		zap.Int("minutes", minutes),
		zap.Int("bonus_xp", bonus),
	)
	return res, nil
}
