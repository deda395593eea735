package domain

//go:generate mockgen -destination=../mocks/mock_session_store.go -package=mocks github.com/pulsarbalaji/storefront-client/internal/domain SessionStore

// SessionStore is the persistent key-value store backing the session. It
// is a plain passthrough; callers own JSON encoding of values.
type SessionStore interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Clear() error
}

// CartStore holds the local cart until checkout hands authority to the
// server. Quantity changes are whole-item add/remove events.
type CartStore interface {
	Add(p Product) error
	Remove(productID int) error
	SetAll(lines []CartLine) error
	Clear() error
	Items() []CartLine
}
