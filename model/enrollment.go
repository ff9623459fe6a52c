package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Enrollment records a student adding a class to their selection.
// ClassId is kept as the hex string the client sends; nothing guarantees
// the referenced class still exists.
type Enrollment struct {
	Id           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	StudentEmail string             `json:"studentEmail" bson:"studentEmail"`
	ClassId      string             `json:"classId" bson:"classId"`
	Selected     bool               `json:"selected" bson:"selected"`
}

type NewEnrollment struct {
	StudentEmail string `json:"studentEmail" validate:"required,email"`
	ClassId      string `json:"classId" validate:"required,len=24,hexadecimal"`
	Selected     bool   `json:"selected"`
}
