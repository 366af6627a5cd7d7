package impl

import "cofipos/internal/domain/entity"

// defaultCatalog is the starter menu loaded into an empty store on first
// boot. Prices and unit costs are in the till currency.
func defaultCatalog() []*entity.Product {
	return []*entity.Product{
		{
			ID:       "1",
			Name:     "Classic Americano",
			Price:    110,
			UnitCost: 25,
			Category: "Hot Coffee",
			Stock:    45,
			Image:    "https://images.unsplash.com/photo-1551030173-122aabc4489c?w=400",
		},
		{
			ID:       "2",
			Name:     "Caramel Macchiato",
			Price:    155,
			UnitCost: 45,
			Category: "Hot Coffee",
			Stock:    45,
			Image:    "https://images.unsplash.com/photo-1485808191679-5f86510681a2?w=400",
		},
		{
			ID:       "3",
			Name:     "Iced Spanish Latte",
			Price:    165,
			UnitCost: 50,
			Category: "Iced Coffee",
			Stock:    45,
			Image:    "https://images.unsplash.com/photo-1517701550927-30cf4ba1dba5?w=400",
		},
		{
			ID:       "4",
			Name:     "Vietnamese Cold Brew",
			Price:    140,
			UnitCost: 35,
			Category: "Iced Coffee",
			Stock:    45,
			Image:    "https://images.unsplash.com/photo-1461023058943-07fcbe16d735?w=400",
		},
		{
			ID:       "5",
			Name:     "Matcha Milk Tea",
			Price:    150,
			UnitCost: 40,
			Category: "Milk Drinks",
			Stock:    45,
			Image:    "https://images.unsplash.com/photo-1515823064-d6e0c04616a7?w=400",
		},
		{
			ID:       "6",
			Name:     "Strawberry Soda",
			Price:    120,
			UnitCost: 20,
			Category: "Soda",
			Stock:    45,
			Image:    "https://images.unsplash.com/photo-1553530666-ba11a7da3888?w=400",
		},
	}
}
