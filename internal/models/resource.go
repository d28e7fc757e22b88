package models

import "go.mongodb.org/mongo-driver/bson"

// Creatable is a bound create payload that builds a new document.
type Creatable[T any] interface {
	ToModel() *T
}

// Patch is a bound partial update payload.
type Patch interface {
	Fields() bson.M
}
