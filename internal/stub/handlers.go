package stub

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/pulsarbalaji/storefront-client/internal/domain"
	"github.com/pulsarbalaji/storefront-client/internal/dto"
	"github.com/pulsarbalaji/storefront-client/pkg/constant"
)

// devOTPCode is issued for every OTP request; the stub sends no SMS.
const devOTPCode = "123456"

func (s *Server) requireAuth(c *fiber.Ctx) error {
	header := c.Get(constant.HeaderAuthorization)
	if !strings.HasPrefix(header, constant.BearerScheme) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing bearer token"})
	}

	claims, err := s.tokens.VerifyAccessToken(strings.TrimPrefix(header, constant.BearerScheme))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid access token"})
	}

	c.Locals("userID", claims.UserID)

	return c.Next()
}

func (s *Server) issueTokens(c *fiber.Ctx, u *stubUser) error {
	access, refresh, err := s.tokens.Generate(u.ID, u.Email)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to issue tokens"})
	}

	return c.Status(fiber.StatusOK).JSON(dto.TokenResponse{
		Access:  access,
		Refresh: refresh,
		User:    userOutput(u),
	})
}

func (s *Server) login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	s.mu.Lock()
	user := s.users[input.Email]
	s.mu.Unlock()

	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)) != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid credentials"})
	}

	return s.issueTokens(c, user)
}

func (s *Server) otpRequest(c *fiber.Ctx) error {
	var input dto.OTPRequestInput
	if err := c.BodyParser(&input); err != nil || input.Phone == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	s.mu.Lock()
	s.otpCodes[input.Phone] = devOTPCode
	s.mu.Unlock()

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true})
}

func (s *Server) otpVerify(c *fiber.Ctx) error {
	var input dto.OTPVerifyInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	s.mu.Lock()
	code, ok := s.otpCodes[input.Phone]
	if ok && code == input.Code {
		delete(s.otpCodes, input.Phone)
	}
	user := s.userByPhone(input.Phone)
	s.mu.Unlock()

	if !ok || code != input.Code {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid otp code"})
	}

	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unknown phone number"})
	}

	return s.issueTokens(c, user)
}

// googleAuth accepts any non-empty ID token and signs in the seeded dev
// user. Real verification belongs to the production backend.
func (s *Server) googleAuth(c *fiber.Ctx) error {
	var input dto.GoogleAuthInput
	if err := c.BodyParser(&input); err != nil || input.IDToken == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	s.mu.Lock()
	user := s.users["dev@example.com"]
	s.mu.Unlock()

	return s.issueTokens(c, user)
}

func (s *Server) tokenRefresh(c *fiber.Ctx) error {
	var input dto.RefreshInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	claims, err := s.tokens.VerifyRefreshToken(input.Refresh)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "refresh token invalid or expired"})
	}

	access, err := s.tokens.GenerateAccess(claims.UserID, claims.Email)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to issue token"})
	}

	return c.Status(fiber.StatusOK).JSON(dto.RefreshResponse{Access: access})
}

func (s *Server) logout(c *fiber.Ctx) error {
	// The stub keeps no token denylist; revocation is a no-op.
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true})
}

func (s *Server) listProducts(c *fiber.Ctx) error {
	s.mu.Lock()
	products := make([]domain.Product, len(s.products))
	copy(products, s.products)
	s.mu.Unlock()

	return c.Status(fiber.StatusOK).JSON(products)
}

func (s *Server) getProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid product id"})
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.products {
		if p.ID == id {
			return c.Status(fiber.StatusOK).JSON(p)
		}
	}

	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "product not found"})
}

// checkoutInitiate validates the cart against current stock, reserving
// what it can. Quantities are clamped to stock; unavailable products are
// dropped and reported.
func (s *Server) checkoutInitiate(c *fiber.Ctx) error {
	var input dto.CheckoutRequest
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	if len(input.Cart) == 0 {
		return c.Status(fiber.StatusOK).JSON(dto.CheckoutResponse{Status: false, Message: "cart is empty"})
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	resp := dto.CheckoutResponse{Status: true}

	for _, line := range input.Cart {
		var product *domain.Product
		for i := range s.products {
			if s.products[i].ID == line.ProductID {
				product = &s.products[i]
				break
			}
		}

		if product == nil || product.Stock == 0 {
			removed := dto.ReservedItem{ProductID: line.ProductID}
			if product != nil {
				removed.ProductName = product.Name
			}
			resp.RemovedItems = append(resp.RemovedItems, removed)

			continue
		}

		qty := line.Qty
		if qty > product.Stock {
			qty = product.Stock
		}

		item := dto.ReservedItem{
			ProductID:    product.ID,
			Qty:          qty,
			ProductName:  product.Name,
			Price:        product.Price,
			OfferPrice:   product.OfferPrice,
			ProductImage: product.Image,
		}
		resp.ReservedItems = append(resp.ReservedItems, item)

		if qty < line.Qty {
			resp.UpdatedItems = append(resp.UpdatedItems, item)
		}

		// Reserve the stock for this attempt.
		product.Stock -= qty
	}

	if len(resp.ReservedItems) == 0 {
		resp.Status = false
		resp.Message = "no items could be reserved"
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}

func (s *Server) orderPlace(c *fiber.Ctx) error {
	var input dto.OrderPlaceRequest
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	if len(input.Items) == 0 {
		return c.Status(fiber.StatusOK).JSON(dto.OrderPlaceResponse{Status: false, Message: "no items to order"})
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var total float64
	for _, item := range input.Items {
		for _, p := range s.products {
			if p.ID == item.ProductID {
				total += p.OfferPrice * float64(item.Qty)
				break
			}
		}
	}

	order := dto.Order{
		ID:        uuid.NewString(),
		Status:    "placed",
		Total:     total,
		CreatedAt: time.Now().Format(time.RFC3339),
	}
	s.orders[input.UserID] = append(s.orders[input.UserID], order)

	return c.Status(fiber.StatusOK).JSON(dto.OrderPlaceResponse{Status: true, OrderID: order.ID})
}

func (s *Server) listOrders(c *fiber.Ctx) error {
	customerID, err := c.ParamsInt("customerId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid customer id"})
	}

	s.mu.Lock()
	orders := make([]dto.Order, len(s.orders[customerID]))
	copy(orders, s.orders[customerID])
	s.mu.Unlock()

	return c.Status(fiber.StatusOK).JSON(orders)
}

func (s *Server) listNotifications(c *fiber.Ctx) error {
	customerID, err := c.ParamsInt("customerId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid customer id"})
	}

	s.mu.Lock()
	items := make([]domain.Notification, len(s.notifications[customerID]))
	copy(items, s.notifications[customerID])
	s.mu.Unlock()

	return c.Status(fiber.StatusOK).JSON(dto.NotificationList{
		Success: true,
		Data:    items,
		Total:   len(items),
	})
}

func (s *Server) markNotificationRead(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid notification id"})
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for customerID := range s.notifications {
		for i := range s.notifications[customerID] {
			if s.notifications[customerID][i].ID == id {
				s.notifications[customerID][i].IsRead = true
				return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true})
			}
		}
	}

	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "notification not found"})
}

func (s *Server) markAllNotificationsRead(c *fiber.Ctx) error {
	customerID, err := c.ParamsInt("customerId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid customer id"})
	}

	s.mu.Lock()
	for i := range s.notifications[customerID] {
		s.notifications[customerID][i].IsRead = true
	}
	s.mu.Unlock()

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true})
}

func (s *Server) deleteNotification(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid notification id"})
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for customerID, items := range s.notifications {
		for i := range items {
			if items[i].ID == id {
				s.notifications[customerID] = append(items[:i], items[i+1:]...)
				return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true})
			}
		}
	}

	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "notification not found"})
}

func (s *Server) clearNotifications(c *fiber.Ctx) error {
	customerID, err := c.ParamsInt("customerId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid customer id"})
	}

	s.mu.Lock()
	delete(s.notifications, customerID)
	s.mu.Unlock()

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true})
}
