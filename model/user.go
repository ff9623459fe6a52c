package model

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	RoleStudent    = "student"
	RoleInstructor = "instructor"
	RoleAdmin      = "admin"
)

type User struct {
	Id    primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Email string             `json:"email" bson:"email"`
	Role  string             `json:"role" bson:"role"`
	Name  string             `json:"name,omitempty" bson:"name,omitempty"`
	Image string             `json:"image,omitempty" bson:"image,omitempty"`
}

// TokenRequest is the identity payload posted to /jwt.
type TokenRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name" validate:"omitempty,max=100"`
}

// UpsertUser carries the fields a client may set on PUT /users/{email}.
// Role is optional; new users without one default to the student role.
type UpsertUser struct {
	Name  string `json:"name" validate:"omitempty,max=100"`
	Image string `json:"image" validate:"omitempty,url"`
	Role  string `json:"role" validate:"omitempty,oneof=student instructor admin"`
}
