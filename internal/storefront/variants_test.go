package storefront

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoaibao3112/Golang-webDienThoai/internal/models"
)

func pickerFixture() *VariantPicker {
	return NewVariantPicker([]models.ProductVariant{
		{ID: "v1", Storage: "128GB", Color: "Đen", Price: 20_000_000, Stock: 5},
		{ID: "v2", Storage: "128GB", Color: "Trắng", Price: 20_500_000, Stock: 0},
		{ID: "v3", Storage: "256GB", Color: "Đen", Price: 23_000_000, Stock: 2},
		// No 256GB Trắng: that combination renders disabled.
	})
}

func TestNewVariantPickerDefaultsToFirst(t *testing.T) {
	p := pickerFixture()
	selected, ok := p.Selected()
	require.True(t, ok)
	assert.Equal(t, "v1", selected.ID)
}

func TestNewVariantPickerEmpty(t *testing.T) {
	p := NewVariantPicker(nil)
	_, ok := p.Selected()
	assert.False(t, ok)

	// Selection moves must be no-ops, not panics.
	p.SelectStorage("128GB")
	p.SelectColor("Đen")
	_, ok = p.Selected()
	assert.False(t, ok)
}

func TestStoragesAndColorsFirstSeenOrder(t *testing.T) {
	p := pickerFixture()
	assert.Equal(t, []string{"128GB", "256GB"}, p.Storages())
	assert.Equal(t, []string{"Đen", "Trắng"}, p.Colors())
}

func TestSelectStorage(t *testing.T) {
	p := pickerFixture()
	p.SelectStorage("256GB")
	selected, _ := p.Selected()
	assert.Equal(t, "v3", selected.ID)
}

func TestSelectColorMissingComboKeepsSelection(t *testing.T) {
	p := pickerFixture()
	p.SelectStorage("256GB")
	// 256GB + Trắng does not exist; the selection must not move.
	p.SelectColor("Trắng")
	selected, _ := p.Selected()
	assert.Equal(t, "v3", selected.ID)
}

func TestAvailable(t *testing.T) {
	p := pickerFixture()
	assert.True(t, p.Available("128GB", "Trắng"))
	assert.False(t, p.Available("256GB", "Trắng"))
}

func TestSelectVariant(t *testing.T) {
	p := pickerFixture()
	p.SelectVariant("v2")
	selected, _ := p.Selected()
	assert.Equal(t, "v2", selected.ID)

	// Unknown id: stays put.
	p.SelectVariant("nope")
	selected, _ = p.Selected()
	assert.Equal(t, "v2", selected.ID)
}
