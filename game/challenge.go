package game

import "go.uber.org/zap"

// CompleteChallenge grants ChallengeXP. There is no cap on repeated completions.
func (e *Engine) CompleteChallenge(identity string) (*Award, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	p, err := e.player(identity)
	if err != nil {
		return nil, err
	}
	award := e.applyXP(p, ChallengeXP, e.now())
	e.log.Info("challenge completed", zap.String("identity", identity))
	return award, nil
}
