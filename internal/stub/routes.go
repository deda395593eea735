package stub

func (s *Server) registerRoutes() {
	// Credential exchanges, no auth required.
	s.app.Post("/login/", s.login)
	s.app.Post("/otp-request/", s.otpRequest)
	s.app.Post("/otp-verify/", s.otpVerify)
	s.app.Post("/google-auth/", s.googleAuth)
	s.app.Post("/token/refresh/", s.tokenRefresh)
	s.app.Post("/logout/", s.logout)

	// Catalog is public.
	s.app.Get("/products/", s.listProducts)
	s.app.Get("/products/:id/", s.getProduct)

	// Customer-scoped endpoints require a valid access token.
	s.app.Post("/checkout-initiate/", s.requireAuth, s.checkoutInitiate)
	s.app.Post("/order-place/", s.requireAuth, s.orderPlace)
	s.app.Get("/orders/:customerId/", s.requireAuth, s.listOrders)
	s.app.Get("/customer-notifications/:customerId/", s.requireAuth, s.listNotifications)
	s.app.Put("/readnotifications/all/:customerId/", s.requireAuth, s.markAllNotificationsRead)
	s.app.Put("/readnotifications/:id/", s.requireAuth, s.markNotificationRead)
	s.app.Delete("/notification/:id/", s.requireAuth, s.deleteNotification)
	s.app.Delete("/notifications/clear/:customerId/", s.requireAuth, s.clearNotifications)
}
