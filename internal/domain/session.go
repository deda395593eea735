package domain

// User is the signed-in identity as issued by the backend. The session
// manager treats it as a single opaque value; individual fields are only
// read for display and to key customer-scoped endpoints.
type User struct {
	ID         int    `json:"id"`
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	CustomerID int    `json:"customer_id"`
}

// Session is the in-memory authenticated state: the user plus the token
// pair issued for it.
type Session struct {
	User         User
	AccessToken  string
	RefreshToken string
}
