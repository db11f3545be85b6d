package service

import (
	"context"
	"errors"
	"time"

	"github.com/xalt/xolt-api/internal/domain"
	"github.com/xalt/xolt-api/internal/repository"
	"github.com/xalt/xolt-api/pkg/util"
)

// CreateProductInput carries validated fields for catalog entries.
type CreateProductInput struct {
	EquipmentName string
	ProductSKU    string
	Description   string
	Price         float64
	InStockQty    int
	DiscountType  domain.DiscountType
	DiscountValue float64
	HsnSacCode    string
	ProductImages []string
	ShippingAddr  string
	BillingAddr   string
}

// UpdateProductInput carries partial updates; nil fields are left untouched.
type UpdateProductInput struct {
	EquipmentName *string
	ProductSKU    *string
	Description   *string
	Price         *float64
	InStockQty    *int
	DiscountType  *domain.DiscountType
	DiscountValue *float64
	HsnSacCode    *string
	ProductImages []string
	ShippingAddr  *string
	BillingAddr   *string
}

// ProductService coordinates catalog management.
type ProductService struct {
	products repository.ProductRepository
}

// NewProductService builds the service.
func NewProductService(products repository.ProductRepository) *ProductService {
	return &ProductService{products: products}
}

// Create stores a new product.
func (s *ProductService) Create(ctx context.Context, input CreateProductInput) (*domain.Product, error) {
	now := time.Now()
	product := &domain.Product{
		EquipmentName: input.EquipmentName,
		ProductSKU:    input.ProductSKU,
		Description:   input.Description,
		Price:         input.Price,
		InStockQty:    input.InStockQty,
		DiscountType:  input.DiscountType,
		DiscountValue: input.DiscountValue,
		HsnSacCode:    input.HsnSacCode,
		ProductImages: input.ProductImages,
		ShippingAddr:  input.ShippingAddr,
		BillingAddr:   input.BillingAddr,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.products.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// List returns products, newest first.
func (s *ProductService) List(ctx context.Context) ([]*domain.Product, error) {
	return s.products.List(ctx)
}

// Get fetches one product by id.
func (s *ProductService) Get(ctx context.Context, id string) (*domain.Product, error) {
	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, util.NewNotFound("product", map[string]any{"id": id})
		}
		return nil, err
	}
	return product, nil
}

// Update applies a partial update to a product.
func (s *ProductService) Update(ctx context.Context, id string, input UpdateProductInput) (*domain.Product, error) {
	product, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.EquipmentName != nil {
		product.EquipmentName = *input.EquipmentName
	}
	if input.ProductSKU != nil {
		product.ProductSKU = *input.ProductSKU
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.InStockQty != nil {
		product.InStockQty = *input.InStockQty
	}
	if input.DiscountType != nil {
		product.DiscountType = *input.DiscountType
	}
	if input.DiscountValue != nil {
		product.DiscountValue = *input.DiscountValue
	}
	if input.HsnSacCode != nil {
		product.HsnSacCode = *input.HsnSacCode
	}
	if len(input.ProductImages) > 0 {
		product.ProductImages = input.ProductImages
	}
	if input.ShippingAddr != nil {
		product.ShippingAddr = *input.ShippingAddr
	}
	if input.BillingAddr != nil {
		product.BillingAddr = *input.BillingAddr
	}
	product.UpdatedAt = time.Now()

	if err := s.products.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// Delete removes a product.
func (s *ProductService) Delete(ctx context.Context, id string) error {
	if err := s.products.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return util.NewNotFound("product", map[string]any{"id": id})
		}
		return err
	}
	return nil
}
