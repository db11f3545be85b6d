package dto

import (
	"testing"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xalt/xolt-api/internal/domain"
)

func TestLoginRequestValidate(t *testing.T) {
	assert.NoError(t, LoginRequest{Email: "a@b.com", Password: "secret1"}.Validate())

	err := LoginRequest{Email: "not-an-email", Password: "secret1"}.Validate()
	require.Error(t, err)
	details := ValidationDetails(err)
	assert.Contains(t, details, "email")

	err = LoginRequest{Email: "a@b.com", Password: "short"}.Validate()
	require.Error(t, err)
	assert.Contains(t, ValidationDetails(err), "password")
}

func TestCreateUserRequestValidate(t *testing.T) {
	valid := CreateUserRequest{
		Name:     "Jo Client",
		Email:    "jo@b.com",
		Password: "password123",
		MobileNo: "9876543210",
	}
	assert.NoError(t, valid.Validate())

	bad := valid
	bad.UserType = "root"
	require.Error(t, bad.Validate())

	bad = valid
	bad.MobileNo = "not-digits!"
	require.Error(t, bad.Validate())

	// optional mobile number may be absent entirely
	noMobile := valid
	noMobile.MobileNo = ""
	assert.NoError(t, noMobile.Validate())
}

func TestProductSKURule(t *testing.T) {
	base := CreateProductRequest{EquipmentName: "Excavator", Price: 10}

	for _, sku := range []string{"EXC123", "a1", "123abc"} {
		req := base
		req.ProductSKU = sku
		assert.NoError(t, req.Validate(), sku)
	}

	for _, sku := range []string{"ONLYLETTERS", "123456", "has-dash1"} {
		req := base
		req.ProductSKU = sku
		assert.Error(t, req.Validate(), sku)
	}

	// SKU itself is optional
	assert.NoError(t, base.Validate())
}

func TestCreateProductRequestValidate(t *testing.T) {
	req := CreateProductRequest{
		EquipmentName: "Excavator",
		Price:         -1,
	}
	require.Error(t, req.Validate())

	req = CreateProductRequest{
		EquipmentName: "Excavator",
		DiscountType:  "bogus",
	}
	require.Error(t, req.Validate())

	req = CreateProductRequest{
		EquipmentName: "Excavator",
		DiscountType:  string(domain.DiscountPercent),
		DiscountValue: 10,
	}
	assert.NoError(t, req.Validate())
}

func TestValidationDetailsFlattens(t *testing.T) {
	err := LoginRequest{}.Validate()
	require.Error(t, err)

	var vErrs validation.Errors
	require.ErrorAs(t, err, &vErrs)

	details := ValidationDetails(err)
	assert.Len(t, details, len(vErrs))
	assert.Contains(t, details, "email")
	assert.Contains(t, details, "password")
}

func TestToProductResponseImageURL(t *testing.T) {
	now := time.Now()
	p := &domain.Product{
		ID:            "p1",
		EquipmentName: "Excavator",
		ProductImages: []string{"/uploads/abc.png", "/uploads/def.png"},
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	resp := ToProductResponse(p, "http://localhost:8000")
	require.NotNil(t, resp.ProductImage)
	assert.Equal(t, "http://localhost:8000/uploads/abc.png", *resp.ProductImage)

	p.ProductImages = nil
	resp = ToProductResponse(p, "http://localhost:8000")
	assert.Nil(t, resp.ProductImage)
}
