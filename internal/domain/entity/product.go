// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// Product is a single sellable catalog item. Stock counts whole units and is
// never negative; Price and UnitCost are retail and wholesale unit prices.
type Product struct {
	ID       string  `json:"id" firestore:"id"`
	Name     string  `json:"name" firestore:"name"`
	Price    float64 `json:"price" firestore:"price"`
	UnitCost float64 `json:"unitCost" firestore:"unitCost"`
	Category string  `json:"category" firestore:"category"`
	Stock    int     `json:"stock" firestore:"stock"`
	Image    string  `json:"image" firestore:"image"`
}

// LowStock reports whether the product is running out, for the catalog badge.
func (p *Product) LowStock(threshold int) bool {
	return p.Stock > 0 && p.Stock < threshold
}
