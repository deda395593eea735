package dto

import "github.com/pulsarbalaji/storefront-client/internal/domain"

// NotificationList is the payload of customer-notifications/{customerId}/.
type NotificationList struct {
	Success bool                  `json:"success"`
	Data    []domain.Notification `json:"data"`
	Total   int                   `json:"total"`
}
