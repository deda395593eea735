package domain

// Product is a catalog entry as listed by the backend. Stock is the last
// known availability and is advisory; the server re-checks at checkout.
type Product struct {
	ID         int     `json:"id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	OfferPrice float64 `json:"offer_price"`
	Image      string  `json:"image"`
	Stock      int     `json:"stock"`
}

// CartLine is one product in the cart. Quantity is always >= 1; a line
// whose quantity would drop to 0 is removed instead.
type CartLine struct {
	ProductID  int     `json:"product_id"`
	Quantity   int     `json:"quantity"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	OfferPrice float64 `json:"offer_price"`
	Image      string  `json:"image"`
	Stock      int     `json:"stock"`
}
