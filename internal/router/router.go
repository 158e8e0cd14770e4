package router

import (
	"os"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/sujithsojan/etrackerbackend/internal/expense"
	handlers "github.com/sujithsojan/etrackerbackend/internal/http"
)

type Router struct {
	AuthHandler    *handlers.AuthHandler
	ExpenseHandler *expense.Handler
	AuthMW         fiber.Handler
}

// RegisterRoutes wires the HTTP surface. The bare /users, /auth/login and
// /expenses routes are the inherited open contract; everything under /api
// requires a bearer token.
func (r *Router) RegisterRoutes(app *fiber.App) {
	if r.AuthHandler != nil {
		app.Post("/users", r.AuthHandler.Register)
		app.Post("/auth/login", r.AuthHandler.Login)
		if r.AuthMW != nil {
			app.Get("/api/me", r.AuthMW, r.AuthHandler.Me)
		}

		if strings.EqualFold(os.Getenv("DEBUG"), "true") {
			app.Get("/api/debug/users", r.AuthHandler.DebugUsers)
		}
	}

	if r.ExpenseHandler != nil {
		app.Post("/expenses", r.ExpenseHandler.CreateExpense)
		app.Get("/expenses", r.ExpenseHandler.ListExpenses)

		if r.AuthMW != nil {
			app.Post("/api/expenses", r.AuthMW, r.ExpenseHandler.CreateOwnExpense)
			app.Get("/api/expenses", r.AuthMW, r.ExpenseHandler.ListOwnExpenses)
			app.Get("/api/expenses/summary", r.AuthMW, r.ExpenseHandler.Summary)
		}
	}
}
