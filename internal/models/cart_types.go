package models

// CartLine is one entry in the shopping cart. ID is a weak reference to a
// Product ID, so a line can dangle if its product disappears. Price is the
// catalog price captured when the line was first added, not the current one.
type CartLine struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Image    string  `json:"image"`
	Quantity int     `json:"quantity"`
}
