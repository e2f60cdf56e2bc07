package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testProduct(id int64, price int64) Product {
	return Product{
		ID:          id,
		Name:        "Blue Pottery Vase",
		NameHi:      "नीली मिट्टी का फूलदान",
		Category:    "Pottery & Ceramics",
		Price:       price,
		ArtisanName: "Ramesh Kumar",
	}
}

func TestCart_AddItem_MergesQuantities(t *testing.T) {
	cart := NewCart("session-1")
	p := testProduct(1, 500)

	cart.AddItem(p, 2)
	cart.AddItem(p, 3)

	assert.Len(t, cart.Lines, 1)
	assert.Equal(t, 5, cart.Lines[0].Quantity)
	assert.Equal(t, 5, cart.TotalItemCount())
}

func TestCart_AddItem_OneLinePerProduct(t *testing.T) {
	cart := NewCart("session-1")

	cart.AddItem(testProduct(1, 500), 1)
	cart.AddItem(testProduct(2, 1500), 1)
	cart.AddItem(testProduct(1, 500), 1)
	cart.AddItem(testProduct(3, 900), 1)
	cart.AddItem(testProduct(2, 1500), 1)

	// Distinct lines match distinct product ids, never more
	assert.Len(t, cart.Lines, 3)
}

func TestCart_AddItem_NormalizesQuantity(t *testing.T) {
	cart := NewCart("session-1")

	cart.AddItem(testProduct(1, 500), 0)
	assert.Equal(t, 1, cart.Lines[0].Quantity)

	cart.AddItem(testProduct(2, 900), -5)
	assert.Equal(t, 1, cart.Lines[1].Quantity)
}

func TestCart_AddItem_SnapshotsDisplayFields(t *testing.T) {
	cart := NewCart("session-1")
	p := testProduct(1, 500)

	cart.AddItem(p, 1)

	line := cart.Lines[0]
	assert.Equal(t, p.Name, line.Name)
	assert.Equal(t, p.NameHi, line.NameHi)
	assert.Equal(t, p.Price, line.Price)
	assert.Equal(t, p.ArtisanName, line.ArtisanName)
}

func TestCart_AddItem_KeepsInsertionOrder(t *testing.T) {
	cart := NewCart("session-1")

	cart.AddItem(testProduct(3, 900), 1)
	cart.AddItem(testProduct(1, 500), 1)
	cart.AddItem(testProduct(2, 1500), 1)
	cart.AddItem(testProduct(1, 500), 1)

	ids := []int64{cart.Lines[0].ProductID, cart.Lines[1].ProductID, cart.Lines[2].ProductID}
	assert.Equal(t, []int64{3, 1, 2}, ids)
}

func TestCart_SetQuantity_SetsExactValue(t *testing.T) {
	cart := NewCart("session-1")
	cart.AddItem(testProduct(1, 500), 2)

	cart.SetQuantity(1, 7)

	assert.Equal(t, 7, cart.Lines[0].Quantity)
}

func TestCart_SetQuantity_ZeroRemovesLine(t *testing.T) {
	cart := NewCart("session-1")
	cart.AddItem(testProduct(1, 500), 2)
	cart.AddItem(testProduct(2, 1500), 1)

	cart.SetQuantity(1, 0)

	assert.Len(t, cart.Lines, 1)
	assert.Equal(t, int64(2), cart.Lines[0].ProductID)
	assert.Equal(t, 1, cart.TotalItemCount())
}

func TestCart_SetQuantity_UnknownProductIsNoop(t *testing.T) {
	cart := NewCart("session-1")
	cart.AddItem(testProduct(1, 500), 2)

	cart.SetQuantity(99, 5)

	assert.Len(t, cart.Lines, 1)
	assert.Equal(t, 2, cart.TotalItemCount())
}

func TestCart_RemoveItem(t *testing.T) {
	cart := NewCart("session-1")
	cart.AddItem(testProduct(1, 500), 1)
	cart.AddItem(testProduct(2, 1500), 1)

	cart.RemoveItem(1)
	assert.Len(t, cart.Lines, 1)

	// Unknown id is a no-op
	cart.RemoveItem(99)
	assert.Len(t, cart.Lines, 1)
}

func TestCart_Clear(t *testing.T) {
	cart := NewCart("session-1")
	cart.AddItem(testProduct(1, 500), 2)
	cart.AddItem(testProduct(2, 1500), 3)

	cart.Clear()

	assert.Empty(t, cart.Lines)
	assert.Equal(t, 0, cart.TotalItemCount())
	assert.Equal(t, int64(0), cart.TotalPrice())
}

func TestCart_Totals(t *testing.T) {
	cart := NewCart("session-1")
	assert.Equal(t, 0, cart.TotalItemCount())
	assert.Equal(t, int64(0), cart.TotalPrice())

	cart.AddItem(testProduct(1, 500), 1)
	cart.AddItem(testProduct(2, 1500), 2)

	assert.Equal(t, 3, cart.TotalItemCount())
	assert.Equal(t, int64(500+3000), cart.TotalPrice())
}
