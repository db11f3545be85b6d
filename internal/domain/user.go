package domain

import "time"

// UserType classifies an account.
type UserType string

const (
	UserTypeUser       UserType = "user"
	UserTypeSuperAdmin UserType = "superAdmin"
)

// Valid reports whether the type is a known classification.
func (t UserType) Valid() bool {
	return t == UserTypeUser || t == UserTypeSuperAdmin
}

// RoleSuperAdmin gates administrative endpoints.
const RoleSuperAdmin = "superAdmin"

// User is the account document stored in the users collection.
type User struct {
	ID           string    `bson:"-"`
	ReadableID   string    `bson:"id"`
	Name         string    `bson:"name"`
	Email        string    `bson:"email"`
	PasswordHash string    `bson:"passwordHash"`
	Roles        []string  `bson:"roles"`
	UserType     UserType  `bson:"userType"`
	MobileNo     string    `bson:"mobileNo,omitempty"`
	CompanyName  string    `bson:"companyName,omitempty"`
	GstNo        string    `bson:"gstNo,omitempty"`
	City         string    `bson:"city,omitempty"`
	ShippingAddr string    `bson:"shippingAddress,omitempty"`
	BillingAddr  string    `bson:"billingAddress,omitempty"`
	CreatedAt    time.Time `bson:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt"`
}

// HasRole reports whether the user carries the given role.
func (u *User) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}
