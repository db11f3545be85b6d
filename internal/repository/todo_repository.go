package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/xalt/xolt-api/internal/domain"
)

// TodoRepository defines persistence access for todos.
type TodoRepository interface {
	Create(ctx context.Context, todo *domain.Todo) error
	Update(ctx context.Context, todo *domain.Todo) error
	GetByID(ctx context.Context, id string) (*domain.Todo, error)
	List(ctx context.Context) ([]*domain.Todo, error)
	Delete(ctx context.Context, id string) error
}

type todoDoc struct {
	OID         primitive.ObjectID `bson:"_id,omitempty"`
	domain.Todo `bson:",inline"`
}

type todoRepository struct {
	coll *mongo.Collection
}

// NewTodoRepository returns a MongoDB-backed implementation.
func NewTodoRepository(coll *mongo.Collection) TodoRepository {
	return &todoRepository{coll: coll}
}

func (r *todoRepository) Create(ctx context.Context, todo *domain.Todo) error {
	res, err := r.coll.InsertOne(ctx, todoDoc{Todo: *todo})
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		todo.ID = oid.Hex()
	}
	return nil
}

func (r *todoRepository) Update(ctx context.Context, todo *domain.Todo) error {
	oid, err := primitive.ObjectIDFromHex(todo.ID)
	if err != nil {
		return ErrNotFound
	}
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, todoDoc{Todo: *todo})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *todoRepository) GetByID(ctx context.Context, id string) (*domain.Todo, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	var doc todoDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	todo := doc.Todo
	todo.ID = doc.OID.Hex()
	return &todo, nil
}

func (r *todoRepository) List(ctx context.Context) ([]*domain.Todo, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var todos []*domain.Todo
	for cursor.Next(ctx) {
		var doc todoDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		todo := doc.Todo
		todo.ID = doc.OID.Hex()
		todos = append(todos, &todo)
	}
	return todos, cursor.Err()
}

func (r *todoRepository) Delete(ctx context.Context, id string) error {
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
