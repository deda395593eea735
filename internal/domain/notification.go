package domain

import "time"

// Notification types discriminate the follow-up action in the UI.
const (
	NotificationTypeOrderStatus   = "order_status"
	NotificationTypeRatingRequest = "rating_request"
)

type Notification struct {
	ID        int       `json:"id"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}
