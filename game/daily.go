package game

import (
	"time"

	"go.uber.org/zap"

	"github.com/cppla/levelup/models"
)

// DailyReward maps the number of completed tasks onto the XP change applied on submission.
func DailyReward(completed int) int {
	switch completed {
	case 3:
		return 180
	case 1:
		return -10
	case 0:
		return -30
	default:
		return 0
	}
}

// SubmitResult is the outcome of a daily submission.
type SubmitResult struct {
	Award
	Tasks     models.DailyTasks `json:"tasks"`
	Completed int               `json:"completed"`
}

// dailyRecord returns today's record, replacing it with a blank one when the player's
// last task date is not today. Must be called with e.mu held.
func (e *Engine) dailyRecord(p *models.Player, now time.Time) *models.DailyTasks {
	today := e.today(now)
	rec, ok := e.daily[p.Identity]
	if p.LastTaskDate != today || !ok {
		p.LastTaskDate = today
		rec = &models.DailyTasks{Identity: p.Identity, Date: today, CreatedAt: now}
		e.daily[p.Identity] = rec
	}
	return rec
}

// DailyTasks returns today's record for the player.
func (e *Engine) DailyTasks(identity string) (models.DailyTasks, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	p, err := e.player(identity)
	if err != nil {
		return models.DailyTasks{}, err
	}
	return *e.dailyRecord(p, e.now()), nil
}

// SetTask marks exercise or reading as done or not done. It has no XP effect.
// Study can only be completed by a timed session.
func (e *Engine) SetTask(identity string, task models.Task, done bool) (models.DailyTasks, error) {
	task, err := models.ParseTask(string(task))
	if err != nil {
		return models.DailyTasks{}, err
	}
	if task == models.TaskStudy {
		return models.DailyTasks{}, ErrTaskLocked
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	p, err := e.player(identity)
	if err != nil {
		return models.DailyTasks{}, err
	}
	rec := e.dailyRecord(p, e.now())
	rec.Set(task, done)
	return *rec, nil
}

// SubmitDailyTasks applies the reward or penalty for today's completed tasks.
// Repeated submissions reapply it unless DailySubmitOnce is set.
func (e *Engine) SubmitDailyTasks(identity string) (*SubmitResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	p, err := e.player(identity)
	if err != nil {
		return nil, err
	}
	now := e.now()
	rec := e.dailyRecord(p, now)
	if e.opts.DailySubmitOnce && rec.Submissions > 0 {
		return nil, ErrAlreadySubmitted
	}

	completed := rec.Completed()
	delta := DailyReward(completed)
	rec.Submissions++
	award := e.applyXP(p, delta, now)

	e.log.Info("daily tasks submitted",
		zap.String("identity", identity),
		zap.String("date", rec.Date),
		zap.Int("completed", completed),
		zap.Int("xp_delta", delta),
	)
	return &SubmitResult{Award: *award, Tasks: *rec, Completed: completed}, nil
}
