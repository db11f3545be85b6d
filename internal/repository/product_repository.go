package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/xalt/xolt-api/internal/domain"
)

// ProductRepository defines persistence access for catalog products.
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	Update(ctx context.Context, product *domain.Product) error
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context) ([]*domain.Product, error)
	Delete(ctx context.Context, id string) error
}

type productDoc struct {
	OID            primitive.ObjectID `bson:"_id,omitempty"`
	domain.Product `bson:",inline"`
}

type productRepository struct {
	coll *mongo.Collection
}

// NewProductRepository returns a MongoDB-backed implementation.
func NewProductRepository(coll *mongo.Collection) ProductRepository {
	return &productRepository{coll: coll}
}

func (r *productRepository) Create(ctx context.Context, product *domain.Product) error {
	res, err := r.coll.InsertOne(ctx, productDoc{Product: *product})
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		product.ID = oid.Hex()
	}
	return nil
}

func (r *productRepository) Update(ctx context.Context, product *domain.Product) error {
	oid, err := primitive.ObjectIDFromHex(product.ID)
	if err != nil {
		return ErrNotFound
	}
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, productDoc{Product: *product})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *productRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	var doc productDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	product := doc.Product
	product.ID = doc.OID.Hex()
	return &product, nil
}

func (r *productRepository) List(ctx context.Context) ([]*domain.Product, error) {
	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var products []*domain.Product
	for cursor.Next(ctx) {
		var doc productDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		product := doc.Product
		product.ID = doc.OID.Hex()
		products = append(products, &product)
	}
	return products, cursor.Err()
}

func (r *productRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
