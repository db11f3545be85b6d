package service

import (
	"context"
	"errors"
	"time"

	"github.com/xalt/xolt-api/internal/domain"
	"github.com/xalt/xolt-api/internal/repository"
	"github.com/xalt/xolt-api/pkg/util"
)

// UpdateTodoInput carries partial updates; nil fields are left untouched.
type UpdateTodoInput struct {
	Title     *string
	Completed *bool
}

// TodoService coordinates todo management.
type TodoService struct {
	todos repository.TodoRepository
}

// NewTodoService builds the service.
func NewTodoService(todos repository.TodoRepository) *TodoService {
	return &TodoService{todos: todos}
}

// Create stores a new todo.
func (s *TodoService) Create(ctx context.Context, title string, completed bool) (*domain.Todo, error) {
	todo := &domain.Todo{
		Title:     title,
		Completed: completed,
		CreatedAt: time.Now(),
	}
	if err := s.todos.Create(ctx, todo); err != nil {
		return nil, err
	}
	return todo, nil
}

// List returns all todos.
func (s *TodoService) List(ctx context.Context) ([]*domain.Todo, error) {
	return s.todos.List(ctx)
}

// Get fetches one todo by id.
func (s *TodoService) Get(ctx context.Context, id string) (*domain.Todo, error) {
	todo, err := s.todos.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, util.NewNotFound("todo", map[string]any{"id": id})
		}
		return nil, err
	}
	return todo, nil
}

// Update applies a partial update to a todo.
func (s *TodoService) Update(ctx context.Context, id string, input UpdateTodoInput) (*domain.Todo, error) {
	todo, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		todo.Title = *input.Title
	}
	if input.Completed != nil {
		todo.Completed = *input.Completed
	}

	if err := s.todos.Update(ctx, todo); err != nil {
		return nil, err
	}
	return todo, nil
}

// Delete removes a todo.
func (s *TodoService) Delete(ctx context.Context, id string) error {
	if err := s.todos.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return util.NewNotFound("todo", map[string]any{"id": id})
		}
		return err
	}
	return nil
}
