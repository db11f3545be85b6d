package dto

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/xalt/xolt-api/internal/domain"
)

// CreateUserRequest payload for new accounts.
type CreateUserRequest struct {
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	Password     string   `json:"password"`
	Roles        []string `json:"roles"`
	UserType     string   `json:"userType"`
	MobileNo     string   `json:"mobileNo"`
	CompanyName  string   `json:"companyName"`
	GstNo        string   `json:"gstNo"`
	City         string   `json:"city"`
	ShippingAddr string   `json:"shippingAddress"`
	BillingAddr  string   `json:"billingAddress"`
}

func (r CreateUserRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required, validation.Length(6, 128)),
		validation.Field(&r.UserType, validation.In(string(domain.UserTypeUser), string(domain.UserTypeSuperAdmin))),
		validation.Field(&r.MobileNo, validation.Length(10, 15), is.Digit),
	)
}

// UpdateUserRequest payload for partial account updates.
type UpdateUserRequest struct {
	Name         *string  `json:"name"`
	Password     *string  `json:"password"`
	Roles        []string `json:"roles"`
	UserType     *string  `json:"userType"`
	MobileNo     *string  `json:"mobileNo"`
	CompanyName  *string  `json:"companyName"`
	GstNo        *string  `json:"gstNo"`
	City         *string  `json:"city"`
	ShippingAddr *string  `json:"shippingAddress"`
	BillingAddr  *string  `json:"billingAddress"`
}

func (r UpdateUserRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.NilOrNotEmpty, validation.Length(1, 200)),
		validation.Field(&r.Password, validation.NilOrNotEmpty, validation.Length(6, 128)),
		validation.Field(&r.UserType, validation.NilOrNotEmpty,
			validation.In(string(domain.UserTypeUser), string(domain.UserTypeSuperAdmin))),
	)
}

// BootstrapAdminRequest payload for first-run superAdmin creation.
type BootstrapAdminRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r BootstrapAdminRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required, validation.Length(6, 128)),
	)
}

// UserResponse is the account shape returned by the API. The password
// hash never leaves the service.
type UserResponse struct {
	ID           string    `json:"_id"`
	ReadableID   string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Roles        []string  `json:"roles"`
	UserType     string    `json:"userType"`
	MobileNo     string    `json:"mobileNo,omitempty"`
	CompanyName  string    `json:"companyName,omitempty"`
	GstNo        string    `json:"gstNo,omitempty"`
	City         string    `json:"city,omitempty"`
	ShippingAddr string    `json:"shippingAddress,omitempty"`
	BillingAddr  string    `json:"billingAddress,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// ToUserResponse maps a domain user into the response shape.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:           u.ID,
		ReadableID:   u.ReadableID,
		Name:         u.Name,
		Email:        u.Email,
		Roles:        u.Roles,
		UserType:     string(u.UserType),
		MobileNo:     u.MobileNo,
		CompanyName:  u.CompanyName,
		GstNo:        u.GstNo,
		City:         u.City,
		ShippingAddr: u.ShippingAddr,
		BillingAddr:  u.BillingAddr,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

// ToUserResponses maps a slice of domain users.
func ToUserResponses(users []*domain.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, ToUserResponse(u))
	}
	return out
}
