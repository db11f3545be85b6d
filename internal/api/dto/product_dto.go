package dto

import (
	"errors"
	"time"
	"unicode"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/xalt/xolt-api/internal/domain"
)

// skuRule requires an alphanumeric SKU containing both letters and digits.
func skuRule(value interface{}) error {
	sku, _ := value.(string)
	if sku == "" {
		return nil
	}
	var hasLetter, hasDigit bool
	for _, r := range sku {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			return errors.New("must be alphanumeric")
		}
	}
	if !hasLetter || !hasDigit {
		return errors.New("must contain both letters and numbers")
	}
	return nil
}

// CreateProductRequest payload for new catalog entries.
type CreateProductRequest struct {
	EquipmentName string   `json:"equipmentName"`
	ProductSKU    string   `json:"productSKU"`
	Description   string   `json:"description"`
	Price         float64  `json:"price"`
	InStockQty    int      `json:"inStockQty"`
	DiscountType  string   `json:"discountType"`
	DiscountValue float64  `json:"discountValue"`
	HsnSacCode    string   `json:"hsnSacCode"`
	ProductImages []string `json:"productImages"`
	ShippingAddr  string   `json:"shippingAddress"`
	BillingAddr   string   `json:"billingAddress"`
}

func (r CreateProductRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.EquipmentName, validation.Required, validation.Length(1, 300)),
		validation.Field(&r.ProductSKU, validation.By(skuRule)),
		validation.Field(&r.Price, validation.Min(0.0)),
		validation.Field(&r.InStockQty, validation.Min(0)),
		validation.Field(&r.DiscountType,
			validation.In(string(domain.DiscountPercent), string(domain.DiscountAbsolute))),
		validation.Field(&r.DiscountValue, validation.Min(0.0)),
	)
}

// UpdateProductRequest payload for partial catalog updates.
type UpdateProductRequest struct {
	EquipmentName *string  `json:"equipmentName"`
	ProductSKU    *string  `json:"productSKU"`
	Description   *string  `json:"description"`
	Price         *float64 `json:"price"`
	InStockQty    *int     `json:"inStockQty"`
	DiscountType  *string  `json:"discountType"`
	DiscountValue *float64 `json:"discountValue"`
	HsnSacCode    *string  `json:"hsnSacCode"`
	ProductImages []string `json:"productImages"`
	ShippingAddr  *string  `json:"shippingAddress"`
	BillingAddr   *string  `json:"billingAddress"`
}

func (r UpdateProductRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.EquipmentName, validation.NilOrNotEmpty, validation.Length(1, 300)),
		validation.Field(&r.DiscountType, validation.NilOrNotEmpty,
			validation.In(string(domain.DiscountPercent), string(domain.DiscountAbsolute))),
	)
}

// ProductResponse is the catalog shape returned by the API. The stored
// image list is flattened to a single absolute URL.
type ProductResponse struct {
	ID            string    `json:"id"`
	EquipmentName string    `json:"equipmentName"`
	ProductSKU    string    `json:"productSKU,omitempty"`
	Description   string    `json:"description,omitempty"`
	Price         float64   `json:"price"`
	InStockQty    int       `json:"inStockQty"`
	DiscountType  string    `json:"discountType,omitempty"`
	DiscountValue float64   `json:"discountValue,omitempty"`
	HsnSacCode    string    `json:"hsnSacCode,omitempty"`
	ProductImage  *string   `json:"productImage"`
	ShippingAddr  string    `json:"shippingAddress,omitempty"`
	BillingAddr   string    `json:"billingAddress,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// ToProductResponse maps a domain product, prefixing the first stored
// image path with the request's base URL.
func ToProductResponse(p *domain.Product, baseURL string) ProductResponse {
	var image *string
	if len(p.ProductImages) > 0 {
		url := baseURL + p.ProductImages[0]
		image = &url
	}
	return ProductResponse{
		ID:            p.ID,
		EquipmentName: p.EquipmentName,
		ProductSKU:    p.ProductSKU,
		Description:   p.Description,
		Price:         p.Price,
		InStockQty:    p.InStockQty,
		DiscountType:  string(p.DiscountType),
		DiscountValue: p.DiscountValue,
		HsnSacCode:    p.HsnSacCode,
		ProductImage:  image,
		ShippingAddr:  p.ShippingAddr,
		BillingAddr:   p.BillingAddr,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

// ToProductResponses maps a slice of domain products.
func ToProductResponses(products []*domain.Product, baseURL string) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, ToProductResponse(p, baseURL))
	}
	return out
}
