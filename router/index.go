package router

import (
	"laundry_os/constants"
	"laundry_os/handler"
	"laundry_os/middleware"
	"laundry_os/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	staff := middleware.RequireRole(constants.ROLE_ADMIN, constants.ROLE_CASHIER)
	admin := middleware.RequireRole(constants.ROLE_ADMIN)

	auth := v1.Group("/auth")
	auth.Post("/login", handler.Login)
	auth.Post("/refresh-token", handler.RefreshToken)

	account := v1.Group("/account", logger.New())
	account.Get("/me", middleware.Protected(), staff, handler.Me)
	account.Get("/", middleware.Protected(), admin, handler.GetAccounts)
	account.Post("/", middleware.Protected(), admin, validate.CreateAccount(), handler.CreateAccount)
	account.Post("/change-password", middleware.Protected(), admin, validate.AdminChangePassword(), handler.AdminChangePassword)
	account.Patch("/:accountId/active", middleware.Protected(), admin, validate.GetById("accountId"), handler.ActiveAccount)

	customer := v1.Group("/customer", logger.New())
	customer.Get("/", middleware.Protected(), staff, handler.GetCustomers)
	customer.Get("/:customerId", middleware.Protected(), staff, validate.GetById("customerId"), handler.GetCustomerById)
	customer.Post("/", middleware.Protected(), staff, validate.CreateCustomer(), handler.CreateCustomer)
	customer.Put("/:customerId", middleware.Protected(), staff, validate.EditCustomer("customerId"), handler.EditCustomer)

	service := v1.Group("/service", logger.New())
	service.Get("/", middleware.Protected(), staff, handler.GetServices)
	service.Post("/", middleware.Protected(), admin, validate.CreateService(), handler.CreateService)
	service.Put("/:serviceId", middleware.Protected(), admin, validate.EditService("serviceId"), handler.EditService)
	service.Delete("/", middleware.Protected(), admin, validate.Delete(), handler.DeleteService)

	orders := v1.Group("/orders", logger.New())
	orders.Get("/stats/overview", middleware.Protected(), admin, handler.GetStatsOverview)
	orders.Get("/stats/history", middleware.Protected(), admin, handler.GetRevenueHistory)
	orders.Get("/", middleware.Protected(), staff, handler.GetOrders)
	orders.Post("/", middleware.Protected(), staff, validate.CreateOrder(), handler.CreateOrder)
	orders.Get("/:orderId", middleware.Protected(), staff, validate.GetById("orderId"), handler.GetOrderById)
	orders.Patch("/:orderId/status", middleware.Protected(), staff, validate.GetById("orderId"), validate.UpdateOrderStatus(), handler.UpdateOrderStatus)
	orders.Get("/:orderId/receipt", middleware.Protected(), staff, validate.GetById("orderId"), handler.GetOrderReceipt)
	orders.Post("/:orderId/stains", middleware.Protected(), staff, validate.GetById("orderId"), handler.UploadStainPhotos)

	board := v1.Group("/board")
	board.Get("/ws", websocket.New(handler.BoardWebsocket))
}
