package dto

type CheckoutCartLine struct {
	ProductID int `json:"product_id"`
	Qty       int `json:"qty"`
}

type CheckoutRequest struct {
	UserID int                `json:"user_id"`
	Cart   []CheckoutCartLine `json:"cart"`
}

// ReservedItem is a server-confirmed line: price, quantity and
// availability as reserved for this checkout attempt.
type ReservedItem struct {
	ProductID    int     `json:"product_id"`
	Qty          int     `json:"qty"`
	ProductName  string  `json:"product_name"`
	Price        float64 `json:"price"`
	OfferPrice   float64 `json:"offer_price"`
	ProductImage string  `json:"product_image"`
}

type CheckoutResponse struct {
	Status        bool           `json:"status"`
	Message       string         `json:"message,omitempty"`
	UpdatedItems  []ReservedItem `json:"updated_items,omitempty"`
	RemovedItems  []ReservedItem `json:"removed_items,omitempty"`
	ReservedItems []ReservedItem `json:"reserved_items"`
}

type OrderPlaceRequest struct {
	UserID int                `json:"user_id"`
	Items  []CheckoutCartLine `json:"items"`
}

type OrderPlaceResponse struct {
	Status  bool   `json:"status"`
	OrderID string `json:"order_id,omitempty"`
	Message string `json:"message,omitempty"`
}

type Order struct {
	ID        string  `json:"id"`
	Status    string  `json:"status"`
	Total     float64 `json:"total"`
	CreatedAt string  `json:"created_at"`
}
