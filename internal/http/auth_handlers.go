package http

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/sujithsojan/etrackerbackend/internal/auth"
	"github.com/sujithsojan/etrackerbackend/internal/users"
)

type AuthHandler struct {
	Service *auth.Service
	// Users is only needed for the DEBUG-gated listing endpoint.
	Users users.Repository
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type loginResponse struct {
	Token  string `json:"token"`
	UserID string `json:"userId"`
}

// Register creates an account and confirms with the public fields only.
// No token is issued here; the client logs in afterwards.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var body credentialsRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	user, err := h.Service.Register(c.UserContext(), body.Email, body.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrMissingCredentials):
			return fiber.NewError(fiber.StatusBadRequest, "email and password required")
		case errors.Is(err, auth.ErrDuplicateEmail):
			return fiber.NewError(fiber.StatusBadRequest, "user already exists")
		default:
			return fiber.NewError(fiber.StatusInternalServerError, "error saving user")
		}
	}

	return c.Status(fiber.StatusCreated).JSON(registerResponse{
		ID:    user.ID,
		Email: user.Email,
	})
}

// Login verifies credentials and returns a bearer token with the account id.
// Unknown email and wrong password collapse into the same 401 so responses
// never reveal whether an email is registered.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var body credentialsRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	token, user, err := h.Service.Login(c.UserContext(), body.Email, body.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrMissingCredentials):
			return fiber.NewError(fiber.StatusBadRequest, "email and password required")
		case errors.Is(err, auth.ErrInvalidCredentials):
			return fiber.NewError(fiber.StatusUnauthorized, "invalid credentials")
		default:
			return fiber.NewError(fiber.StatusInternalServerError, "server error")
		}
	}

	return c.JSON(loginResponse{Token: token, UserID: user.ID})
}

// Me returns the authenticated caller's identity as carried in the token.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	userID, ok := auth.UserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}
	email, _ := c.Locals(auth.LocalEmail).(string)
	return c.JSON(fiber.Map{"id": userID, "email": email})
}

// DebugUsers lists registered accounts (public fields only). Routed only when
// DEBUG=true.
func (h *AuthHandler) DebugUsers(c *fiber.Ctx) error {
	lister, ok := h.Users.(interface {
		All(ctx context.Context) ([]users.User, error)
	})
	if !ok {
		return fiber.NewError(fiber.StatusNotImplemented, "not supported by this store")
	}

	list, err := lister.All(c.UserContext())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "server error")
	}
	return c.JSON(list)
}
