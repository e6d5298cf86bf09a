package domain

// CartItem is one cart line. Product fields are copied in at add time so
// a cart renders without re-querying the catalog.
type CartItem struct {
	ProductID    string `json:"product_id"`
	ProductName  string `json:"product_name"`
	ProductImage string `json:"product_image"`
	Price        int64  `json:"price"` // minor-unit-free currency amount
	Quantity     int    `json:"quantity"`
}

// Cart holds one line per distinct product, in first-added order. Total
// always equals the sum of Price*Quantity over Items; the ledger
// recomputes it on every transition rather than patching it in place.
type Cart struct {
	ID    string     `json:"id"`
	Items []CartItem `json:"items"`
	Total int64      `json:"total"`
}
