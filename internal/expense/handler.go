package expense

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/sujithsojan/etrackerbackend/internal/auth"
)

type Handler struct {
	Store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{Store: store}
}

// CreateExpense is the legacy open endpoint: no auth, the caller supplies the
// owner id in the body. The stored record is echoed back with a 200, which is
// the inherited contract.
func (h *Handler) CreateExpense(c *fiber.Ctx) error {
	var req CreateExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	exp, err := h.insert(c, &req, req.UserID)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(exp)
}

// ListExpenses is the legacy open endpoint returning every record for every
// user.
func (h *Handler) ListExpenses(c *fiber.Ctx) error {
	items, err := h.Store.ListAll(c.UserContext())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "error fetching expenses")
	}
	return c.JSON(items)
}

// CreateOwnExpense stores an expense owned by the authenticated caller,
// ignoring any userId in the body.
func (h *Handler) CreateOwnExpense(c *fiber.Ctx) error {
	userID, ok := auth.UserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	var req CreateExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	exp, err := h.insert(c, &req, userID)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(exp)
}

// ListOwnExpenses returns only the authenticated caller's records.
func (h *Handler) ListOwnExpenses(c *fiber.Ctx) error {
	userID, ok := auth.UserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	items, err := h.Store.ListByUser(c.UserContext(), userID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "error fetching expenses")
	}
	return c.JSON(items)
}

// Summary returns the authenticated caller's monthly aggregate.
// Query params: year, month (defaults to the current month).
func (h *Handler) Summary(c *fiber.Ctx) error {
	userID, ok := auth.UserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	now := time.Now()
	year, month := now.Year(), int(now.Month())
	if v := c.Query("year"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "year invalid")
		}
		year = parsed
	}
	if v := c.Query("month"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1 || parsed > 12 {
			return fiber.NewError(fiber.StatusBadRequest, "month invalid")
		}
		month = parsed
	}

	sum, err := h.Store.MonthlySummary(c.UserContext(), userID, year, month)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "error building summary")
	}
	return c.JSON(sum)
}

func (h *Handler) insert(c *fiber.Ctx, req *CreateExpenseRequest, userID string) (*Expense, error) {
	if req.Date != "" {
		if _, err := time.Parse("2006-01-02", req.Date); err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, "date must be YYYY-MM-DD")
		}
	} else {
		req.Date = time.Now().Format("2006-01-02")
	}

	exp := &Expense{
		UserID:      userID,
		Date:        req.Date,
		Category:    req.Category,
		Description: req.Description,
		Amount:      req.Amount,
	}

	stored, err := h.Store.Insert(c.UserContext(), exp)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "error saving expense")
	}
	return stored, nil
}
