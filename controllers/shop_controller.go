package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/cppla/levelup/game"
	"github.com/cppla/levelup/models"
	"github.com/cppla/levelup/utils"
)

// ShopController serves the shared catalog and player inventories.
type ShopController struct {
	engine *game.Engine
}

// NewShopController creates a ShopController.
func NewShopController(engine *game.Engine) *ShopController {
	return &ShopController{engine: engine}
}

// ListItems returns the catalog in creation order.
func (s *ShopController) ListItems(ctx *gin.Context) {
	items := s.engine.Catalog()
	utils.Success(ctx, gin.H{"items": items, "total": len(items)})
}

// CreateItem adds a catalog item. Privileged players only.
func (s *ShopController) CreateItem(ctx *gin.Context) {
	identity, ok := identityFrom(ctx)
	if !ok {
		return
	}

	type request struct {
		Name     string `json:"name" binding:"required"`
		Asset    []byte `json:"asset"` // base64
		Price    int    `json:"price" binding:"required"`
		MinTitle string `json:"min_title"`
	}
	var req request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40001, "invalid request payload")
		return
	}

	minTitle := models.TitleNone
	if strings.TrimSpace(req.MinTitle) != "" {
		t, err := models.ParseTitle(req.MinTitle)
		if err != nil {
			utils.Error(ctx, http.StatusBadRequest, 40002, err.Error())
			return
		}
		minTitle = t
	}

	item, err := s.engine.AddShopItem(identity, game.NewItem{
		Name:     utils.SanitizeText(req.Name),
		Asset:    req.Asset,
		Price:    req.Price,
		MinTitle: minTitle,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}
	utils.Created(ctx, item)
}

// Purchase buys one item for the authenticated player.
func (s *ShopController) Purchase(ctx *gin.Context) {
	identity, ok := identityFrom(ctx)
	if !ok {
		return
	}

	itemID := strings.TrimSpace(ctx.Param("id"))
	if itemID == "" {
		utils.Error(ctx, http.StatusBadRequest, 40050, "missing item id")
		return
	}

	player, err := s.engine.Purchase(identity, itemID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	utils.Success(ctx, newPlayerResponse(player))
}

// Inventory lists the authenticated player's purchases in order.
func (s *ShopController) Inventory(ctx *gin.Context) {
	identity, ok := identityFrom(ctx)
	if !ok {
		return
	}

	owned, err := s.engine.Inventory(identity)
	if err != nil {
		respondError(ctx, err)
		return
	}
	utils.Success(ctx, gin.H{"items": owned, "total": len(owned)})
}
