package handlers

import (
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/xalt/xolt-api/internal/api/dto"
	"github.com/xalt/xolt-api/internal/domain"
	"github.com/xalt/xolt-api/internal/service"
	"github.com/xalt/xolt-api/pkg/util"
)

// ProductsHandler exposes catalog endpoints.
type ProductsHandler struct {
	products  *service.ProductService
	uploadDir string
}

// NewProductsHandler constructs the handler.
func NewProductsHandler(productService *service.ProductService, uploadDir string) *ProductsHandler {
	return &ProductsHandler{products: productService, uploadDir: uploadDir}
}

// List handles GET /api/products.
func (h *ProductsHandler) List(c *fiber.Ctx) error {
	products, err := h.products.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Products fetched successfully",
		"data":    dto.ToProductResponses(products, c.BaseURL()),
	})
}

// Create handles POST /api/products. Accepts JSON or multipart form
// data carrying image files alongside the fields.
func (h *ProductsHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateProductRequest

	if strings.Contains(c.Get(fiber.HeaderContentType), "multipart/form-data") {
		parsed, err := h.parseMultipart(c)
		if err != nil {
			return err
		}
		req = *parsed
	} else if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("Invalid payload", nil)
	}

	if err := req.Validate(); err != nil {
		return util.NewValidationError("Validation error", dto.ValidationDetails(err))
	}

	product, err := h.products.Create(c.Context(), service.CreateProductInput{
		EquipmentName: req.EquipmentName,
		ProductSKU:    req.ProductSKU,
		Description:   req.Description,
		Price:         req.Price,
		InStockQty:    req.InStockQty,
		DiscountType:  domain.DiscountType(req.DiscountType),
		DiscountValue: req.DiscountValue,
		HsnSacCode:    req.HsnSacCode,
		ProductImages: req.ProductImages,
		ShippingAddr:  req.ShippingAddr,
		BillingAddr:   req.BillingAddr,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Product added successfully",
		"data":    dto.ToProductResponse(product, c.BaseURL()),
	})
}

// parseMultipart extracts product fields and stores uploaded images.
func (h *ProductsHandler) parseMultipart(c *fiber.Ctx) (*dto.CreateProductRequest, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, util.NewValidationError("Invalid multipart form data", nil)
	}

	field := func(name string) string {
		if vals := form.Value[name]; len(vals) > 0 {
			return vals[0]
		}
		return ""
	}

	req := &dto.CreateProductRequest{
		EquipmentName: field("equipmentName"),
		ProductSKU:    field("productSKU"),
		Description:   field("description"),
		DiscountType:  field("discountType"),
		HsnSacCode:    field("hsnSacCode"),
		ShippingAddr:  field("shippingAddress"),
		BillingAddr:   field("billingAddress"),
	}
	if raw := field("price"); raw != "" {
		req.Price, _ = strconv.ParseFloat(raw, 64)
	}
	if raw := field("inStockQty"); raw != "" {
		req.InStockQty, _ = strconv.Atoi(raw)
	}
	if raw := field("discountValue"); raw != "" {
		req.DiscountValue, _ = strconv.ParseFloat(raw, 64)
	}

	for _, headers := range form.File {
		for _, file := range headers {
			ext := filepath.Ext(file.Filename)
			if ext == "" {
				ext = ".jpg"
			}
			name := uuid.NewString() + ext
			if err := c.SaveFile(file, filepath.Join(h.uploadDir, name)); err != nil {
				return nil, util.NewInternalError(err)
			}
			req.ProductImages = append(req.ProductImages, "/uploads/"+name)
		}
	}
	return req, nil
}

// Get handles GET /api/products/:id.
func (h *ProductsHandler) Get(c *fiber.Ctx) error {
	product, err := h.products.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Product fetched successfully",
		"data":    dto.ToProductResponse(product, c.BaseURL()),
	})
}

// Update handles PUT /api/products/:id.
func (h *ProductsHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("Invalid payload", nil)
	}
	if err := req.Validate(); err != nil {
		return util.NewValidationError("Validation error", dto.ValidationDetails(err))
	}

	input := service.UpdateProductInput{
		EquipmentName: req.EquipmentName,
		ProductSKU:    req.ProductSKU,
		Description:   req.Description,
		Price:         req.Price,
		InStockQty:    req.InStockQty,
		DiscountValue: req.DiscountValue,
		HsnSacCode:    req.HsnSacCode,
		ProductImages: req.ProductImages,
		ShippingAddr:  req.ShippingAddr,
		BillingAddr:   req.BillingAddr,
	}
	if req.DiscountType != nil {
		discountType := domain.DiscountType(*req.DiscountType)
		input.DiscountType = &discountType
	}

	product, err := h.products.Update(c.Context(), c.Params("id"), input)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Product updated successfully",
		"data":    dto.ToProductResponse(product, c.BaseURL()),
	})
}

// Delete handles DELETE /api/products/:id.
func (h *ProductsHandler) Delete(c *fiber.Ctx) error {
	if err := h.products.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
