package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cppla/levelup/models"
)

func newShop(t *testing.T) (*Engine, *fakeClock) {
	t.Helper()
	e, clock := newTestEngine(t, Options{})
	_, err := e.Register("admin", "pw", "shadow_monarch")
	require.NoError(t, err)
	return e, clock
}

func addItem(t *testing.T, e *Engine, name string, price int, min models.Title) *models.ShopItem {
	t.Helper()
	it, err := e.AddShopItem("admin", NewItem{Name: name, Asset: []byte{0x89, 'P', 'N', 'G'}, Price: price, MinTitle: min})
	require.NoError(t, err)
	return it
}

// earn gives the player a 61 minute session: level 5, Vessel, 11 xp banked.
func earn(t *testing.T, e *Engine, clock *fakeClock, identity string) {
	t.Helper()
	_, err := e.StartTimer(identity)
	require.NoError(t, err)
	clock.Advance(61 * time.Minute)
	_, err = e.StopTimer(identity)
	require.NoError(t, err)
}

func TestAddShopItemRequiresPrivilege(t *testing.T) {
	e, _ := newShop(t)
	mustRegister(t, e, "alice")

	_, err := e.AddShopItem("alice", NewItem{Name: "Badge", Price: 5, MinTitle: models.TitleNone})
	assert.ErrorIs(t, err, ErrNotPrivileged)
	assert.Empty(t, e.Catalog())
}

func TestAddShopItemValidation(t *testing.T) {
	e, _ := newShop(t)

	for _, item := range []NewItem{
		{Name: "", Price: 5, MinTitle: models.TitleNone},
		{Name: "Badge", Price: 0, MinTitle: models.TitleNone},
		{Name: "Badge", Price: 5, MinTitle: models.Title("Emperor")},
	} {
		_, err := e.AddShopItem("admin", item)
		assert.ErrorIs(t, err, ErrInvalidItem)
	}
	assert.Empty(t, e.Catalog())
}

func TestCatalogKeepsCreationOrder(t *testing.T) {
	e, _ := newShop(t)
	a := addItem(t, e, "Frame", 5, models.TitleNone)
	b := addItem(t, e, "Crown", 50, models.TitleValedictorian)

	cat := e.Catalog()
	require.Len(t, cat, 2)
	assert.Equal(t, a.ID, cat[0].ID)
	assert.Equal(t, b.ID, cat[1].ID)
	assert.Equal(t, "admin", cat[0].CreatedBy)

	it, err := e.Item(b.ID)
	require.NoError(t, err)
	assert.Equal(t, "Crown", it.Name)

	_, err = e.Item("missing")
	assert.ErrorIs(t, err, ErrUnknownItem)
}

func TestPurchaseDebitsWithoutNormalizing(t *testing.T) {
	e, clock := newShop(t)
	mustRegister(t, e, "alice")
	earn(t, e, clock, "alice")
	item := addItem(t, e, "Frame", 10, models.TitlePlayer)

	p, err := e.Purchase("alice", item.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, p.XP)
	assert.Equal(t, 5, p.Level)
	assert.Equal(t, 15, p.RequiredXP)
	assert.Equal(t, 71, p.TotalXP)
	require.Len(t, p.Inventory, 1)
	assert.Equal(t, item.ID, p.Inventory[0].ItemID)
}

func TestPurchaseInsufficientRankChangesNothing(t *testing.T) {
	e, clock := newShop(t)
	mustRegister(t, e, "alice")
	// level 1 Player with 10 xp banked would afford it
	_, err := e.StartTimer("alice")
	require.NoError(t, err)
	clock.Advance(20 * time.Minute)
	_, err = e.StopTimer("alice")
	require.NoError(t, err)
	item := addItem(t, e, "Crown", 5, models.TitleValedictorian)

	before, err := e.Player("alice")
	require.NoError(t, err)
	assert.Equal(t, models.TitlePlayer, before.Title)

	_, err = e.Purchase("alice", item.ID)
	assert.ErrorIs(t, err, ErrInsufficientRank)

	after, err := e.Player("alice")
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestPurchaseRankIsOrdinal(t *testing.T) {
	e, clock := newShop(t)
	mustRegister(t, e, "alice")
	earn(t, e, clock, "alice")
	// "Vessel of the Monarch" sorts after "Valedictorian" as text but ranks below it
	item := addItem(t, e, "Crown", 1, models.TitleValedictorian)

	_, err := e.Purchase("alice", item.ID)
	assert.ErrorIs(t, err, ErrInsufficientRank)
}

func TestPurchaseRankCheckedBeforeFunds(t *testing.T) {
	e, _ := newShop(t)
	mustRegister(t, e, "alice")
	item := addItem(t, e, "Crown", 1000, models.TitleValedictorian)

	_, err := e.Purchase("alice", item.ID)
	assert.ErrorIs(t, err, ErrInsufficientRank)
}

func TestPurchaseInsufficientFunds(t *testing.T) {
	e, _ := newShop(t)
	mustRegister(t, e, "alice")
	_, err := e.CompleteChallenge("alice")
	require.NoError(t, err)
	item := addItem(t, e, "Crown", 20, models.TitleValedictorian)

	_, err = e.Purchase("alice", item.ID)
	assert.ErrorIs(t, err, ErrInsufficientFunds)

	p, err := e.Player("alice")
	require.NoError(t, err)
	assert.Equal(t, 19, p.XP)
	assert.Empty(t, p.Inventory)
}

func TestPurchaseUnknownItem(t *testing.T) {
	e, _ := newShop(t)
	mustRegister(t, e, "alice")
	_, err := e.Purchase("alice", "nope")
	assert.ErrorIs(t, err, ErrUnknownItem)
}

func TestInventoryPurchaseOrder(t *testing.T) {
	e, _ := newShop(t)
	mustRegister(t, e, "alice")
	_, err := e.CompleteChallenge("alice")
	require.NoError(t, err)
	a := addItem(t, e, "Frame", 5, models.TitleNone)
	b := addItem(t, e, "Banner", 3, models.TitlePlayer)

	for _, id := range []string{b.ID, a.ID, b.ID} {
		_, err := e.Purchase("alice", id)
		require.NoError(t, err)
	}

	owned, err := e.Inventory("alice")
	require.NoError(t, err)
	require.Len(t, owned, 3)
	assert.Equal(t, "Banner", owned[0].Item.Name)
	assert.Equal(t, "Frame", owned[1].Item.Name)
	assert.Equal(t, "Banner", owned[2].Item.Name)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, owned[0].Item.Asset)

	p, err := e.Player("alice")
	require.NoError(t, err)
	assert.Equal(t, 19-3-5-3, p.XP)
}
