package domain

import "time"

// Todo is the document stored in the todos collection.
type Todo struct {
	ID        string    `bson:"-"`
	Title     string    `bson:"title"`
	Completed bool      `bson:"completed"`
	CreatedAt time.Time `bson:"createdAt"`
}
