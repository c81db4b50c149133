package game

import (
	"errors"

	"github.com/cppla/levelup/models"
)

var (
	// ErrDuplicateIdentity is returned when registering an identity that already exists.
	ErrDuplicateIdentity = errors.New("identity already exists")

	// ErrAuthFailure covers both unknown identities and mismatched credentials.
	ErrAuthFailure = errors.New("invalid identity or credential")

	// ErrNotPrivileged is returned when a non-privileged account mutates the catalog.
	ErrNotPrivileged = errors.New("account is not privileged")

	// ErrInsufficientRank is returned when the buyer's title ranks below the item's minimum.
	ErrInsufficientRank = errors.New("title rank too low for item")

	// ErrInsufficientFunds is returned when the buyer's banked XP is below the item price.
	ErrInsufficientFunds = errors.New("not enough xp for item")

	// ErrNoActiveTimer is returned by StopTimer when no session is running. Nothing is changed.
	ErrNoActiveTimer = errors.New("no active timer")

	ErrUnknownIdentity   = errors.New("unknown identity")
	ErrUnknownItem       = errors.New("unknown shop item")
	ErrInvalidItem       = errors.New("invalid shop item")
	ErrInvalidIdentity   = errors.New("invalid identity: must be 1-64 chars")
	ErrInvalidCredential = errors.New("invalid credential: must not be empty")
	ErrTaskLocked        = errors.New("task is completed by a timed study session")
	ErrAlreadySubmitted  = errors.New("daily tasks already submitted today")
	ErrUnknownTask       = models.ErrUnknownTask
)
