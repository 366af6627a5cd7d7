package entity

// CartMode selects which ceiling governs additions to a cart: per-product
// stock (normal) or the shared event cup pool (event).
type CartMode string

const (
	CartModeNormal CartMode = "normal"
	CartModeEvent  CartMode = "event"
)

// CartLine is a copy-on-add snapshot of a product at the moment it entered
// the cart. Price, name and category stay frozen even if the catalog changes
// afterwards. Quantity is always positive; a line reaching zero is removed.
type CartLine struct {
	ProductID string  `json:"productId" firestore:"productId"`
	Name      string  `json:"name" firestore:"name"`
	Price     float64 `json:"price" firestore:"price"`
	UnitCost  float64 `json:"unitCost" firestore:"unitCost"`
	Category  string  `json:"category" firestore:"category"`
	Image     string  `json:"image" firestore:"image"`
	Quantity  int     `json:"quantity" firestore:"quantity"`
}

// Cart is the in-memory order being built at one terminal session. Lines keep
// insertion order and never share a product id.
type Cart struct {
	ID    string      `json:"id"`
	Mode  CartMode    `json:"mode"`
	Lines []*CartLine `json:"lines"`
}

// Line returns the line for the given product id, or nil.
func (c *Cart) Line(productID string) *CartLine {
	for _, line := range c.Lines {
		if line.ProductID == productID {
			return line
		}
	}

	return nil
}

// TotalQuantity is the number of units across all lines.
func (c *Cart) TotalQuantity() int {
	total := 0
	for _, line := range c.Lines {
		total += line.Quantity
	}

	return total
}

// Total is the cart value in currency units.
func (c *Cart) Total() float64 {
	total := 0.0
	for _, line := range c.Lines {
		total += line.Price * float64(line.Quantity)
	}

	return total
}

// Empty reports whether the cart has no lines.
func (c *Cart) Empty() bool {
	return len(c.Lines) == 0
}

// SnapshotLine builds a cart line from the current state of a product.
func SnapshotLine(product *Product, quantity int) *CartLine {
	return &CartLine{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		UnitCost:  product.UnitCost,
		Category:  product.Category,
		Image:     product.Image,
		Quantity:  quantity,
	}
}
