package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	form := OrderForm{
		CroissantName:     "Chocolate croissant",
		CroissantQuantity: 2,
		CroissantDrink:    "latte",
		CakeName:          "Napoleon",
		CakeQuantity:      1,
		CakeDrink:         "black_tea",
		BunName:           "Cinnamon",
		BunQuantity:       3,
		BunDrink:          "espresso",
	}

	summary := Summarize(form)

	assert.Len(t, summary.Lines, 3)

	croissant := summary.Lines[0]
	assert.Equal(t, "Croissant", croissant.Product)
	assert.Equal(t, "Chocolate croissant", croissant.Option)
	assert.Equal(t, 2, croissant.Quantity)
	assert.Equal(t, "Latte", croissant.Drink)
	assert.Equal(t, int64(240), croissant.Price)

	assert.Equal(t, int64(240+150+150), summary.Total)
}

func TestSummarizeUnknownDrink(t *testing.T) {
	form := OrderForm{
		CroissantName:  "Jam croissant",
		CroissantDrink: "kvass",
		CakeName:       "Prague",
		CakeDrink:      "latte",
		BunName:        "Custard",
		BunDrink:       "latte",
	}

	summary := Summarize(form)

	// Unknown drink ids render as-is instead of failing the order.
	assert.Equal(t, "kvass", summary.Lines[0].Drink)
	assert.Equal(t, int64(0), summary.Total)
}

func TestCatalog(t *testing.T) {
	products := Products()
	assert.Len(t, products, 3)
	for _, p := range products {
		assert.NotEmpty(t, p.ID)
		assert.NotEmpty(t, p.Options)
		assert.Positive(t, p.Price)
	}

	drinks := Drinks()
	assert.Len(t, drinks, 6)
}
