// Package stub is a development backend implementing the storefront API
// contract: token issuance and refresh, catalog, checkout reservation,
// orders and notifications. It keeps everything in memory and exists so
// the client can be run and tested without the production backend.
package stub

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/pulsarbalaji/storefront-client/config"
	"github.com/pulsarbalaji/storefront-client/internal/domain"
	"github.com/pulsarbalaji/storefront-client/internal/dto"
)

type stubUser struct {
	ID           int
	CustomerID   int
	Email        string
	Phone        string
	FullName     string
	PasswordHash string
}

type Server struct {
	app    *fiber.App
	tokens *TokenService

	mu            sync.Mutex
	users         map[string]*stubUser // keyed by email
	products      []domain.Product
	notifications map[int][]domain.Notification // keyed by customer id
	orders        map[int][]dto.Order
	otpCodes      map[string]string
	nextID        int
}

func New(cfg *config.Config) *Server {
	s := &Server{
		app:           fiber.New(),
		tokens:        NewTokenService(cfg.AccessTokenSecret, cfg.RefreshTokenSecret, cfg.AccessExpiryMin, cfg.RefreshExpiryMin),
		users:         map[string]*stubUser{},
		notifications: map[int][]domain.Notification{},
		orders:        map[int][]dto.Order{},
		otpCodes:      map[string]string{},
		nextID:        100,
	}

	s.seed()
	s.registerRoutes()

	return s
}

func (s *Server) App() *fiber.App {
	return s.app
}

func (s *Server) Listen(addr string) error {
	return s.app.Listen(addr)
}

// seed installs a development user, a small catalog and a few
// notifications so the CLI has something to show out of the box.
func (s *Server) seed() {
	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)

	s.users["dev@example.com"] = &stubUser{
		ID:           1,
		CustomerID:   10,
		Email:        "dev@example.com",
		Phone:        "+15550100",
		FullName:     "Dev Customer",
		PasswordHash: string(hash),
	}

	s.products = []domain.Product{
		{ID: 1, Name: "Ceramic Mug", Price: 120, OfferPrice: 100, Image: "mug.png", Stock: 5},
		{ID: 2, Name: "Dinner Plate", Price: 240, OfferPrice: 199, Image: "plate.png", Stock: 2},
		{ID: 3, Name: "Water Bottle", Price: 350, OfferPrice: 300, Image: "bottle.png", Stock: 0},
	}

	s.notifications[10] = []domain.Notification{
		{ID: 1, Type: domain.NotificationTypeOrderStatus, Message: "Your order has shipped", IsRead: false, CreatedAt: time.Now().Add(-time.Hour)},
		{ID: 2, Type: domain.NotificationTypeRatingRequest, Message: "Rate your last purchase", IsRead: false, CreatedAt: time.Now().Add(-30 * time.Minute)},
	}
}

func (s *Server) userByID(id int) *stubUser {
	for _, u := range s.users {
		if u.ID == id {
			return u
		}
	}

	return nil
}

func (s *Server) userByPhone(phone string) *stubUser {
	for _, u := range s.users {
		if u.Phone == phone {
			return u
		}
	}

	return nil
}

func userOutput(u *stubUser) domain.User {
	return domain.User{
		ID:         u.ID,
		FullName:   u.FullName,
		Email:      u.Email,
		Phone:      u.Phone,
		CustomerID: u.CustomerID,
	}
}
