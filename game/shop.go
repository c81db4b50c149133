package game

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cppla/levelup/models"
)

// NewItem carries the fields of a catalog item to create.
type NewItem struct {
	Name     string
	Asset    []byte
	Price    int
	MinTitle models.Title
}

func (n NewItem) validate() error {
	if strings.TrimSpace(n.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidItem)
	}
	if n.Price < 1 {
		return fmt.Errorf("%w: price must be positive", ErrInvalidItem)
	}
	if !n.MinTitle.IsValid() {
		return fmt.Errorf("%w: unknown minimum title %q", ErrInvalidItem, n.MinTitle)
	}
	return nil
}

// AddShopItem appends an item to the shared catalog. Only privileged players may do so.
func (e *Engine) AddShopItem(identity string, item NewItem) (*models.ShopItem, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	p, err := e.player(identity)
	if err != nil {
		return nil, err
	}
	if !p.Privileged {
		return nil, ErrNotPrivileged
	}
	if err := item.validate(); err != nil {
		return nil, err
	}

	it := &models.ShopItem{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(item.Name),
		Asset:     append([]byte(nil), item.Asset...),
		Price:     item.Price,
		MinTitle:  item.MinTitle,
		CreatedBy: identity,
		CreatedAt: e.now(),
	}
	e.catalog = append(e.catalog, it)
	e.items[it.ID] = it

	e.log.Info("shop item added",
		zap.String("identity", identity),
		zap.String("item_id", it.ID),
		zap.String("name", it.Name),
		zap.Int("price", it.Price),
		zap.String("min_title", string(it.MinTitle)),
	)
	return cloneItem(it), nil
}

// Catalog lists items in creation order.
func (e *Engine) Catalog() []models.ShopItem {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]models.ShopItem, 0, len(e.catalog))
	for _, it := range e.catalog {
		out = append(out, *cloneItem(it))
	}
	return out
}

// Item returns one catalog item.
func (e *Engine) Item(id string) (*models.ShopItem, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	it, ok := e.items[id]
	if !ok {
		return nil, ErrUnknownItem
	}
	return cloneItem(it), nil
}

// Purchase debits the item price and adds it to the buyer's inventory. Rank is checked
// before funds. Spending never changes level.
func (e *Engine) Purchase(identity, itemID string) (*models.Player, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	p, err := e.player(identity)
	if err != nil {
		return nil, err
	}
	it, ok := e.items[itemID]
	if !ok {
		return nil, ErrUnknownItem
	}
	if !p.Title.AtLeast(it.MinTitle) {
		return nil, ErrInsufficientRank
	}
	if p.XP < it.Price {
		return nil, ErrInsufficientFunds
	}

	now := e.now()
	p.XP -= it.Price
	p.Inventory = append(p.Inventory, models.InventoryEntry{ItemID: it.ID, Price: it.Price, PurchasedAt: now})
	p.UpdatedAt = now

	e.log.Info("item purchased",
		zap.String("identity", identity),
		zap.String("item_id", it.ID),
		zap.Int("price", it.Price),
	)
	return p.Clone(), nil
}

// OwnedItem pairs an inventory entry with its catalog item.
type OwnedItem struct {
	models.InventoryEntry
	Item models.ShopItem `json:"item"`
}

// Inventory resolves the player's purchases in purchase order.
func (e *Engine) Inventory(identity string) ([]OwnedItem, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	p, err := e.player(identity)
	if err != nil {
		return nil, err
	}
	out := make([]OwnedItem, 0, len(p.Inventory))
	for _, entry := range p.Inventory {
		it, ok := e.items[entry.ItemID]
		if !ok {
			continue
		}
		out = append(out, OwnedItem{InventoryEntry: entry, Item: *cloneItem(it)})
	}
	return out, nil
}

func cloneItem(it *models.ShopItem) *models.ShopItem {
	c := *it
	c.Asset = append([]byte(nil), it.Asset...)
	return &c
}
