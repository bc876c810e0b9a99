package grocerylists

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sptr(s string) *string {
	return &s
}

// TestUpdateItemFields checks that only non-nil fields are applied to a
// grocery list item.
func TestUpdateItemFields(t *testing.T) {
	item := GroceryListItem{
		ID:            3,
		GroceryListID: 9,
		ItemName:      sptr("Milk"),
		Quantity:      sptr("1l"),
		CheckedOff:    false,
	}

	// an empty update changes nothing
	assert.True(t, UpdateGroceryListItem{}.IsEmpty())
	assert.Equal(t, item, updateItemFields(item, UpdateGroceryListItem{}))

	// checking an item off keeps everything else
	checked := true
	updated := updateItemFields(item, UpdateGroceryListItem{CheckedOff: &checked})
	assert.True(t, updated.CheckedOff)
	assert.Equal(t, *item.ItemName, *updated.ItemName)
	assert.Equal(t, *item.Quantity, *updated.Quantity)
	assert.Equal(t, item.GroceryListID, updated.GroceryListID)

	// and it can be unchecked again
	unchecked := false
	updated = updateItemFields(updated, UpdateGroceryListItem{CheckedOff: &unchecked})
	assert.False(t, updated.CheckedOff)

	// renaming and adding notes
	ui := UpdateGroceryListItem{ItemName: sptr("Oat milk"), Notes: sptr("the barista one")}
	assert.False(t, ui.IsEmpty())
	updated = updateItemFields(item, ui)
	assert.Equal(t, "Oat milk", *updated.ItemName)
	assert.Equal(t, "the barista one", *updated.Notes)
	assert.Equal(t, "1l", *updated.Quantity)

	// the input item is not modified
	assert.Equal(t, "Milk", *item.ItemName)
	assert.Nil(t, item.Notes)
}

func TestUpdateGroceryListIsEmpty(t *testing.T) {
	assert.True(t, UpdateGroceryList{}.IsEmpty())
	assert.False(t, UpdateGroceryList{Name: sptr("x")}.IsEmpty())
}
