package domain

import "time"

// DiscountType enumerates supported discount schemes.
type DiscountType string

const (
	DiscountPercent  DiscountType = "percent"
	DiscountAbsolute DiscountType = "absolute"
)

// Product is the catalog document stored in the products collection.
type Product struct {
	ID            string       `bson:"-"`
	EquipmentName string       `bson:"equipmentName"`
	ProductSKU    string       `bson:"productSKU,omitempty"`
	Description   string       `bson:"description,omitempty"`
	Price         float64      `bson:"price"`
	InStockQty    int          `bson:"inStockQty"`
	DiscountType  DiscountType `bson:"discountType,omitempty"`
	DiscountValue float64      `bson:"discountValue,omitempty"`
	HsnSacCode    string       `bson:"hsnSacCode,omitempty"`
	ProductImages []string     `bson:"productImages,omitempty"`
	ShippingAddr  string       `bson:"shippingAddress,omitempty"`
	BillingAddr   string       `bson:"billingAddress,omitempty"`
	CreatedAt     time.Time    `bson:"createdAt"`
	UpdatedAt     time.Time    `bson:"updatedAt"`
}
