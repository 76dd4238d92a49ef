package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/viewlist/viewlist-api/internal/application/auth"
	"github.com/viewlist/viewlist-api/internal/application/usecase"
	"github.com/viewlist/viewlist-api/internal/validation"
)

// RouterDeps wires use cases and settings into the route tree.
type RouterDeps struct {
	CompanyUC *usecase.CompanyUseCase
	ItemUC    *usecase.ItemUseCase
	SalesUC   *usecase.SalesUseCase
	AuthUC    *auth.AuthUseCase
	JWTSecret string
	Env       string
}

// Router mounts every route group on the app. Register and login are
// public; everything else sits behind the auth middleware.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", HealthCheck)
	app.Get("/", APIIndex)

	authGuard := AuthMiddleware(deps.JWTSecret)

	authHandler := NewAuthHandler(deps.AuthUC, deps.Env)
	authGroup := app.Group("/auth")
	authGroup.Post("/register", validation.Body(validation.UserRegister), authHandler.Register)
	authGroup.Post("/login", validation.Body(validation.UserLogin), authHandler.Login)
	authGroup.Get("/profile", authGuard, authHandler.GetProfile)
	authGroup.Put("/profile", authGuard, validation.Body(validation.UserUpdateProfile), authHandler.UpdateProfile)
	authGroup.Put("/change-password", authGuard, validation.Body(validation.UserChangePassword), authHandler.ChangePassword)
	authGroup.Delete("/:id", authGuard, authHandler.Delete)

	companyHandler := NewCompanyHandler(deps.CompanyUC, deps.Env)
	companyGroup := app.Group("/company", authGuard)
	companyGroup.Post("/", validation.Body(validation.CompanyCreate), companyHandler.Create)
	companyGroup.Get("/", companyHandler.GetAll)
	companyGroup.Post("/bulk-delete", companyHandler.BulkDelete)
	companyGroup.Get("/:id", companyHandler.GetByID)
	companyGroup.Put("/:id", validation.Body(validation.CompanyUpdate), companyHandler.Update)
	companyGroup.Delete("/:id", companyHandler.Delete)

	itemHandler := NewItemHandler(deps.ItemUC, deps.Env)
	itemGroup := app.Group("/item", authGuard)
	itemGroup.Post("/", validation.Body(validation.ItemCreate), itemHandler.Create)
	itemGroup.Get("/", itemHandler.GetAll)
	itemGroup.Post("/bulk-delete", itemHandler.BulkDelete)
	// Registered before /:id so "hsn" is not captured as an item id.
	itemGroup.Get("/hsn/:hsnCode", itemHandler.GetByHsnCode)
	itemGroup.Get("/:id", itemHandler.GetByID)
	itemGroup.Put("/:id", validation.Body(validation.ItemUpdate), itemHandler.Update)
	itemGroup.Delete("/:id", itemHandler.Delete)

	salesHandler := NewSalesHandler(deps.SalesUC, deps.Env)
	salesGroup := app.Group("/sales", authGuard)
	salesGroup.Post("/", validation.Body(validation.SalesCreate), salesHandler.Create)
	salesGroup.Get("/", salesHandler.GetAll)
	salesGroup.Get("/:id", salesHandler.GetByID)
	salesGroup.Put("/:id", validation.Body(validation.SalesUpdate), salesHandler.Update)
	salesGroup.Delete("/:id", salesHandler.Delete)
}
