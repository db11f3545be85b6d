package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/xalt/xolt-api/internal/api/dto"
	"github.com/xalt/xolt-api/internal/service"
	"github.com/xalt/xolt-api/pkg/util"
)

// TodosHandler exposes todo endpoints.
type TodosHandler struct {
	todos *service.TodoService
}

// NewTodosHandler constructs the handler.
func NewTodosHandler(todoService *service.TodoService) *TodosHandler {
	return &TodosHandler{todos: todoService}
}

// List handles GET /api/todos.
func (h *TodosHandler) List(c *fiber.Ctx) error {
	todos, err := h.todos.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(dto.ToTodoResponses(todos))
}

// Get handles GET /api/todos/:id.
func (h *TodosHandler) Get(c *fiber.Ctx) error {
	todo, err := h.todos.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.ToTodoResponse(todo))
}

// Create handles POST /api/todos.
func (h *TodosHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateTodoRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("Invalid payload", nil)
	}
	if err := req.Validate(); err != nil {
		return util.NewValidationError("Validation failed", dto.ValidationDetails(err))
	}

	todo, err := h.todos.Create(c.Context(), req.Title, req.Completed)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.ToTodoResponse(todo))
}

// Update handles PUT /api/todos/:id.
func (h *TodosHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateTodoRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("Invalid payload", nil)
	}
	if err := req.Validate(); err != nil {
		return util.NewValidationError("Validation failed", dto.ValidationDetails(err))
	}

	todo, err := h.todos.Update(c.Context(), c.Params("id"), service.UpdateTodoInput{
		Title:     req.Title,
		Completed: req.Completed,
	})
	if err != nil {
		return err
	}
	return c.JSON(dto.ToTodoResponse(todo))
}

// Delete handles DELETE /api/todos/:id.
func (h *TodosHandler) Delete(c *fiber.Ctx) error {
	if err := h.todos.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
