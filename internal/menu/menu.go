// Package menu holds the hardcoded café catalog and the order form
// handling. Orders are summarized for display only and never stored.
package menu

import (
	"github.com/samber/lo"
)

// Product is a single entry of the food catalog.
type Product struct {
	ID      string
	Name    string
	Price   int64 // price per piece, in rubles
	Options []string
}

// Drink is a single entry of the drink catalog.
type Drink struct {
	ID   string
	Name string
}

// Products returns the food catalog.
func Products() []Product {
	return []Product{
		{
			ID:      "croissant",
			Name:    "Croissant",
			Price:   120,
			Options: []string{"Chocolate croissant", "Cheese croissant", "Jam croissant"},
		},
		{
			ID:      "cake",
			Name:    "Slice of cake",
			Price:   150,
			Options: []string{"Prague", "Kyiv", "Napoleon", "Spartak"},
		},
		{
			ID:      "bun",
			Name:    "Bun",
			Price:   50,
			Options: []string{"Poppy seed", "Cinnamon", "Custard"},
		},
	}
}

// Drinks returns the drink catalog.
func Drinks() []Drink {
	return []Drink{
		{ID: "black_tea", Name: "Black tea"},
		{ID: "green_tea", Name: "Green tea"},
		{ID: "latte", Name: "Latte"},
		{ID: "espresso", Name: "Espresso"},
		{ID: "raf", Name: "Raf"},
		{ID: "cappuccino", Name: "Cappuccino"},
	}
}

// OrderForm carries the nine fields of the order form, one
// name/quantity/drink triple per product.
type OrderForm struct {
	CroissantName     string `form:"croissant_name" binding:"required"`
	CroissantQuantity int    `form:"croissant_quantity" binding:"gte=0"`
	CroissantDrink    string `form:"croissant_drink" binding:"required"`
	CakeName          string `form:"cake_name" binding:"required"`
	CakeQuantity      int    `form:"cake_quantity" binding:"gte=0"`
	CakeDrink         string `form:"cake_drink" binding:"required"`
	BunName           string `form:"bun_name" binding:"required"`
	BunQuantity       int    `form:"bun_quantity" binding:"gte=0"`
	BunDrink          string `form:"bun_drink" binding:"required"`
}

// OrderLine is one summarized product choice.
type OrderLine struct {
	Product  string
	Option   string
	Quantity int
	Drink    string
	Price    int64
}

// OrderSummary is the rendered result of a submitted order form.
type OrderSummary struct {
	Lines []OrderLine
	Total int64
}

// Summarize turns a submitted order form into a display summary.
// Drink ids are resolved against the catalog; unknown ids fall back to
// the raw value so a stale form still renders.
func Summarize(form OrderForm) OrderSummary {
	products := Products()

	lines := []OrderLine{
		buildLine(products[0], form.CroissantName, form.CroissantQuantity, form.CroissantDrink),
		buildLine(products[1], form.CakeName, form.CakeQuantity, form.CakeDrink),
		buildLine(products[2], form.BunName, form.BunQuantity, form.BunDrink),
	}

	return OrderSummary{
		Lines: lines,
		Total: lo.SumBy(lines, func(l OrderLine) int64 { return l.Price }),
	}
}

func buildLine(product Product, option string, quantity int, drinkID string) OrderLine {
	return OrderLine{
		Product:  product.Name,
		Option:   option,
		Quantity: quantity,
		Drink:    drinkName(drinkID),
		Price:    product.Price * int64(quantity),
	}
}

func drinkName(id string) string {
	drink, found := lo.Find(Drinks(), func(d Drink) bool { return d.ID == id })
	if !found {
		return id
	}
	return drink.Name
}
