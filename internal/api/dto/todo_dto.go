package dto

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/xalt/xolt-api/internal/domain"
)

// CreateTodoRequest payload for new todos.
type CreateTodoRequest struct {
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

func (r CreateTodoRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, 500)),
	)
}

// UpdateTodoRequest payload for partial todo updates.
type UpdateTodoRequest struct {
	Title     *string `json:"title"`
	Completed *bool   `json:"completed"`
}

func (r UpdateTodoRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.NilOrNotEmpty, validation.Length(1, 500)),
	)
}

// TodoResponse is the todo shape returned by the API.
type TodoResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToTodoResponse maps a domain todo.
func ToTodoResponse(t *domain.Todo) TodoResponse {
	return TodoResponse{ID: t.ID, Title: t.Title, Completed: t.Completed, CreatedAt: t.CreatedAt}
}

// ToTodoResponses maps a slice of domain todos.
func ToTodoResponses(todos []*domain.Todo) []TodoResponse {
	out := make([]TodoResponse, 0, len(todos))
	for _, t := range todos {
		out = append(out, ToTodoResponse(t))
	}
	return out
}
