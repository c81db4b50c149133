package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cppla/levelup/game"
	"github.com/cppla/levelup/middleware"
	"github.com/cppla/levelup/utils"
)

// respondError maps engine errors onto the JSON envelope. Unknown errors are logged and hidden.
func respondError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, game.ErrInvalidIdentity),
		errors.Is(err, game.ErrInvalidCredential),
		errors.Is(err, game.ErrInvalidItem),
		errors.Is(err, game.ErrUnknownTask):
		utils.Error(ctx, http.StatusBadRequest, 40002, err.Error())
	case errors.Is(err, game.ErrInsufficientFunds):
		utils.Error(ctx, http.StatusBadRequest, 40020, err.Error())
	case errors.Is(err, game.ErrAuthFailure):
		utils.Error(ctx, http.StatusUnauthorized, 40106, err.Error())
	case errors.Is(err, game.ErrNotPrivileged):
		utils.Error(ctx, http.StatusForbidden, 40301, err.Error())
	case errors.Is(err, game.ErrInsufficientRank):
		utils.Error(ctx, http.StatusForbidden, 40302, err.Error())
	case errors.Is(err, game.ErrUnknownIdentity):
		utils.Error(ctx, http.StatusNotFound, 40401, "player not found")
	case errors.Is(err, game.ErrUnknownItem):
		utils.Error(ctx, http.StatusNotFound, 40402, err.Error())
	case errors.Is(err, game.ErrDuplicateIdentity):
		utils.Error(ctx, http.StatusConflict, 40901, err.Error())
	case errors.Is(err, game.ErrTaskLocked):
		utils.Error(ctx, http.StatusConflict, 40903, err.Error())
	case errors.Is(err, game.ErrAlreadySubmitted):
		utils.Error(ctx, http.StatusConflict, 40904, err.Error())
	default:
		utils.Sugar.Errorf("unhandled error path=%s err=%v", ctx.Request.URL.Path, err)
		utils.Error(ctx, http.StatusInternalServerError, 50000, "internal server error")
	}
}

// identityFrom returns the authenticated identity or answers 401.
func identityFrom(ctx *gin.Context) (string, bool) {
	id := ctx.GetString(middleware.ContextIdentityKey)
	if id == "" {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return "", false
	}
	return id, true
}

// invalidateLeaderboard drops cached leaderboard pages after any XP change.
func invalidateLeaderboard() {
	utils.InvalidateByPrefix(leaderboardCachePrefix)
}
