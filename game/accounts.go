package game

import (
	"crypto/subtle"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/cppla/levelup/models"
	"github.com/cppla/levelup/utils"
)

const maxIdentityLen = 64

// Register creates a player. The account is privileged when secretCode matches the
// configured superuser code.
func (e *Engine) Register(identity, credential, secretCode string) (*models.Player, error) {
	identity = strings.TrimSpace(identity)
	if identity == "" || utf8.RuneCountInString(identity) > maxIdentityLen {
		return nil, ErrInvalidIdentity
	}
	if credential == "" {
		return nil, ErrInvalidCredential
	}

	e.mu.Lock()
	_, exists := e.players[identity]
	e.mu.Unlock()
	if exists {
		return nil, ErrDuplicateIdentity
	}

	// Hash outside the lock; bcrypt is slow on purpose.
	hash, err := utils.HashPasswordCost(credential, e.opts.HashCost)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if _, exists := e.players[identity]; exists {
		return nil, ErrDuplicateIdentity
	}

	now := e.now()
	p := &models.Player{
		Identity:     identity,
		PasswordHash: hash,
		Privileged:   e.isSuperuserCode(secretCode),
		RequiredXP:   InitialRequiredXP,
		Title:        models.TitleNone,
		Inventory:    []models.InventoryEntry{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	e.players[identity] = p
	e.order = append(e.order, identity)

	e.log.Info("player registered", zap.String("identity", identity), zap.Bool("privileged", p.Privileged))
	return p.Clone(), nil
}

func (e *Engine) isSuperuserCode(code string) bool {
	want := e.opts.SuperuserCode
	if want == "" || code == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(code), []byte(want)) == 1
}

// Authenticate verifies a credential and returns a snapshot of the player.
func (e *Engine) Authenticate(identity, credential string) (*models.Player, error) {
	identity = strings.TrimSpace(identity)

	e.mu.Lock()
	p, ok := e.players[identity]
	var hash string
	if ok {
		hash = p.PasswordHash
	}
	e.mu.Unlock()

	if !ok || !utils.CheckPassword(hash, credential) {
		return nil, ErrAuthFailure
	}
	return e.Player(identity)
}

// Player returns a snapshot of the named player.
func (e *Engine) Player(identity string) (*models.Player, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	p, err := e.player(identity)
	if err != nil {
		return nil, err
	}
	return p.Clone(), nil
}
