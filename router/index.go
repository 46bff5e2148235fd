package router

import (
	"pizzeria_kassa/constants"
	"pizzeria_kassa/handler"
	"pizzeria_kassa/middleware"
	"pizzeria_kassa/validate"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func withCloudinary(cld *cloudinary.Cloudinary) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if cld != nil {
			c.Locals("cld", cld)
		}
		return c.Next()
	}
}

func upgradeOnly(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

func SetupRoutes(app *fiber.App, cld *cloudinary.Cloudinary) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1")

	admin := middleware.RequireRole(constants.ROLE_ADMIN)
	managers := middleware.RequireRole(constants.ROLE_ADMIN, constants.ROLE_MANAGER)
	staff := middleware.RequireRole(constants.ROLE...)

	auth := v1.Group("/auth")
	auth.Post("/login", validate.Login(), handler.Login)
	auth.Post("/refresh-token", handler.RefreshToken)
	auth.Post("/logout", middleware.Protected(), handler.Logout)

	account := v1.Group("/account", middleware.Protected())
	account.Get("/me", staff, handler.Me)
	account.Get("/", admin, handler.GetAccounts)
	account.Post("/", admin, validate.CreateAccount(), handler.CreateAccount)
	account.Patch("/:accountId/active", admin, validate.GetById("accountId"), validate.ActiveAccount(), handler.ActiveAccount)

	menu := v1.Group("/menu")
	menu.Get("/", handler.GetMenu)
	menu.Get("/:slug", handler.GetMenuSection)

	category := v1.Group("/category", middleware.Protected())
	category.Get("/", staff, handler.GetCategories)
	category.Post("/", managers, validate.Category(""), handler.CreateCategory)
	category.Put("/:categoryId", managers, validate.Category("categoryId"), handler.EditCategory)
	category.Delete("/", managers, validate.Delete(), handler.DeleteCategory)

	product := v1.Group("/product", middleware.Protected(), withCloudinary(cld))
	product.Get("/", staff, handler.GetProducts)
	product.Get("/:productId", staff, validate.GetById("productId"), handler.GetProductById)
	product.Post("/", managers, validate.Product(""), handler.CreateProduct)
	product.Put("/:productId", managers, validate.Product("productId"), handler.EditProduct)
	product.Delete("/", managers, validate.Delete(), handler.DeleteProduct)
	product.Post("/:productId/image", managers, validate.UploadProductImage("productId"), handler.UploadProductImage)

	extra := v1.Group("/extra", middleware.Protected())
	extra.Get("/", staff, handler.GetMenuExtras)
	extra.Post("/", managers, validate.MenuExtra(""), handler.CreateMenuExtra)
	extra.Put("/:extraId", managers, validate.MenuExtra("extraId"), handler.EditMenuExtra)
	extra.Delete("/", managers, validate.Delete(), handler.DeleteMenuExtra)

	customer := v1.Group("/customer", middleware.Protected())
	customer.Get("/", staff, handler.GetCustomer)
	customer.Get("/phone/:phone", staff, handler.GetCustomerByPhone)
	customer.Get("/:customerId", staff, validate.GetById("customerId"), handler.GetCustomerById)
	customer.Post("/", staff, validate.CreateCustomer(), handler.CreateCustomer)
	customer.Put("/:customerId", staff, validate.EditCustomer("customerId"), handler.EditCustomer)
	customer.Delete("/", managers, validate.Delete(), handler.DeleteCustomers)

	order := v1.Group("/order", middleware.Protected())
	order.Get("/", staff, handler.GetOrders)
	order.Post("/", staff, validate.CreateOrder(), handler.CreateOrder)
	order.Post("/preview", staff, validate.CreateOrder(), handler.PreviewOrder)
	order.Post("/renumber", admin, handler.RenumberReceipts)
	order.Delete("/", managers, validate.Delete(), handler.DeleteOrders)
	order.Get("/:orderId", staff, validate.GetById("orderId"), handler.GetOrderById)
	order.Get("/:orderId/bon", staff, validate.GetById("orderId"), handler.GetOrderBon)
	order.Patch("/:orderId/status", staff, validate.UpdateOrderStatus("orderId"), handler.UpdateOrderStatus)
	order.Delete("/:orderId", managers, validate.GetById("orderId"), handler.DeleteOrder)

	report := v1.Group("/report", middleware.Protected(), managers)
	report.Get("/daily", handler.DailyReport)
	report.Get("/range", handler.RangeReport)
	report.Get("/products", handler.ProductReport)
	report.Get("/customers/top", handler.TopCustomersReport)

	statistic := v1.Group("/statistic", middleware.Protected())
	statistic.Get("/", managers, handler.GetDashboardStats)

	kitchen := v1.Group("/kitchen")
	kitchen.Get("/ws", upgradeOnly, middleware.Protected(), staff, websocket.New(handler.KitchenWebsocket))

	// web shop
	online := v1.Group("/online", middleware.OptionalJWT(), middleware.OptionalAuth())
	online.Post("/order", validate.CreateOrder(), handler.CreateOnlineOrder)
	online.Get("/order/:code", handler.GetOnlineOrder)

	klant := v1.Group("/klant")
	klant.Post("/register", validate.RegisterCustomer(), handler.RegisterCustomer)
	klant.Post("/login", validate.CustomerLogin(), handler.CustomerLogin)
	klant.Get("/me", middleware.OptionalJWT(), middleware.OptionalAuth(), middleware.CustomerRequired(), handler.GetCurrentCustomer)
	klant.Get("/orders", middleware.OptionalJWT(), middleware.OptionalAuth(), middleware.CustomerRequired(), handler.GetMyOrders)
}
