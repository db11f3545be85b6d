package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/xalt/xolt-api/internal/auth"
	"github.com/xalt/xolt-api/internal/config"
	"github.com/xalt/xolt-api/internal/domain"
	"github.com/xalt/xolt-api/internal/events"
	"github.com/xalt/xolt-api/internal/repository"
	"github.com/xalt/xolt-api/pkg/util"
)

// CreateUserInput carries validated fields for account creation.
type CreateUserInput struct {
	Name         string
	Email        string
	Password     string
	Roles        []string
	UserType     domain.UserType
	MobileNo     string
	CompanyName  string
	GstNo        string
	City         string
	ShippingAddr string
	BillingAddr  string
}

// UpdateUserInput carries partial updates; nil fields are left untouched.
type UpdateUserInput struct {
	Name         *string
	Password     *string
	Roles        []string
	UserType     *domain.UserType
	MobileNo     *string
	CompanyName  *string
	GstNo        *string
	City         *string
	ShippingAddr *string
	BillingAddr  *string
}

// UserService coordinates account management.
type UserService struct {
	users      repository.UserRepository
	dispatcher events.Dispatcher
	bcryptCost int
}

// NewUserService builds the service.
func NewUserService(cfg config.Config, users repository.UserRepository, dispatcher events.Dispatcher) *UserService {
	return &UserService{users: users, dispatcher: dispatcher, bcryptCost: cfg.Auth.BcryptCost}
}

// Create registers a new account. Roles default to the type-derived role.
func (s *UserService) Create(ctx context.Context, input CreateUserInput) (*domain.User, error) {
	if _, err := s.users.GetByEmail(ctx, input.Email); err == nil {
		return nil, util.NewConflict("Email already exists", nil)
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	userType := input.UserType
	if userType == "" {
		userType = domain.UserTypeUser
	}
	roles := input.Roles
	if len(roles) == 0 {
		roles = []string{string(userType)}
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	readableID, err := s.generateReadableID(ctx, userType)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &domain.User{
		ReadableID:   readableID,
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		Roles:        roles,
		UserType:     userType,
		MobileNo:     input.MobileNo,
		CompanyName:  input.CompanyName,
		GstNo:        input.GstNo,
		City:         input.City,
		ShippingAddr: input.ShippingAddr,
		BillingAddr:  input.BillingAddr,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	_ = s.dispatcher.Publish(ctx, events.Event{
		Type:   events.EventUserCreated,
		UserID: user.ID,
		Email:  user.Email,
	})
	return user, nil
}

// generateReadableID produces ids like USR004A3F, sequenced per type with
// a short random suffix for uniqueness.
func (s *UserService) generateReadableID(ctx context.Context, userType domain.UserType) (string, error) {
	prefix := "USR"
	if userType == domain.UserTypeSuperAdmin {
		prefix = "SUP"
	}
	count, err := s.users.CountByType(ctx, userType)
	if err != nil {
		return "", err
	}
	raw := uuid.New()
	suffix := fmt.Sprintf("%X", raw[:2])[:3]
	return fmt.Sprintf("%s%03d%s", prefix, count+1, suffix), nil
}

// List returns all accounts.
func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.users.List(ctx)
}

// Get fetches one account by id.
func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, util.NewNotFound("user", map[string]any{"id": id})
		}
		return nil, err
	}
	return user, nil
}

// Update applies a partial update to an account.
func (s *UserService) Update(ctx context.Context, id string, input UpdateUserInput) (*domain.User, error) {
	user, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Password != nil {
		hash, err := auth.HashPassword(*input.Password, s.bcryptCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}
	if len(input.Roles) > 0 {
		user.Roles = input.Roles
	}
	if input.UserType != nil {
		user.UserType = *input.UserType
	}
	if input.MobileNo != nil {
		user.MobileNo = *input.MobileNo
	}
	if input.CompanyName != nil {
		user.CompanyName = *input.CompanyName
	}
	if input.GstNo != nil {
		user.GstNo = *input.GstNo
	}
	if input.City != nil {
		user.City = *input.City
	}
	if input.ShippingAddr != nil {
		user.ShippingAddr = *input.ShippingAddr
	}
	if input.BillingAddr != nil {
		user.BillingAddr = *input.BillingAddr
	}
	user.UpdatedAt = time.Now()

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete removes an account.
func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := s.users.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return util.NewNotFound("user", map[string]any{"id": id})
		}
		return err
	}
	return nil
}

// BootstrapAdmin creates the first superAdmin; refused once any account
// exists.
func (s *UserService) BootstrapAdmin(ctx context.Context, name, email, password string) (*domain.User, error) {
	count, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, util.NewForbidden("SuperAdmin already exists")
	}
	return s.Create(ctx, CreateUserInput{
		Name:     name,
		Email:    email,
		Password: password,
		Roles:    []string{domain.RoleSuperAdmin},
		UserType: domain.UserTypeSuperAdmin,
	})
}
