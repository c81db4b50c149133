package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cppla/levelup/game"
	"github.com/cppla/levelup/models"
	"github.com/cppla/levelup/utils"
)

// TaskController handles the daily habit ledger.
type TaskController struct {
	engine *game.Engine
}

// NewTaskController creates a new controller instance.
func NewTaskController(engine *game.Engine) *TaskController {
	return &TaskController{engine: engine}
}

type dailyTasksResponse struct {
	models.DailyTasks
	Completed int `json:"completed"`
	Reward    int `json:"reward"`
}

func newDailyTasksResponse(d models.DailyTasks) dailyTasksResponse {
	n := d.Completed()
	return dailyTasksResponse{DailyTasks: d, Completed: n, Reward: game.DailyReward(n)}
}

// GetDaily returns today's record, resetting it on the first access of a new day.
func (t *TaskController) GetDaily(ctx *gin.Context) {
	identity, ok := identityFrom(ctx)
	if !ok {
		return
	}

	rec, err := t.engine.DailyTasks(identity)
	if err != nil {
		respondError(ctx, err)
		return
	}
	utils.Success(ctx, newDailyTasksResponse(rec))
}

// UpdateDaily toggles exercise or reading.
func (t *TaskController) UpdateDaily(ctx *gin.Context) {
	identity, ok := identityFrom(ctx)
	if !ok {
		return
	}

	type request struct {
		Task string `json:"task" binding:"required"`
		Done *bool  `json:"done" binding:"required"`
	}
	var req request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40001, "invalid request payload")
		return
	}

	rec, err := t.engine.SetTask(identity, models.Task(req.Task), *req.Done)
	if err != nil {
		respondError(ctx, err)
		return
	}
	utils.Success(ctx, newDailyTasksResponse(rec))
}

// SubmitDaily applies today's reward or penalty.
func (t *TaskController) SubmitDaily(ctx *gin.Context) {
	identity, ok := identityFrom(ctx)
	if !ok {
		return
	}

	res, err := t.engine.SubmitDailyTasks(identity)
	if err != nil {
		respondError(ctx, err)
		return
	}
	invalidateLeaderboard()
	utils.Success(ctx, res)
}
