package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusDenied   = "denied"
)

// Feedback is one admin note attached to a class.
type Feedback struct {
	Id        string    `json:"id" bson:"id"`
	Text      string    `json:"text" bson:"text"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

type Class struct {
	Id              primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	InstructorEmail string             `json:"instructorEmail" bson:"instructorEmail"`
	InstructorName  string             `json:"instructorName,omitempty" bson:"instructorName,omitempty"`
	ClassName       string             `json:"className" bson:"className"`
	ClassPicture    string             `json:"classPicture,omitempty" bson:"classPicture,omitempty"`
	ClassPrice      float64            `json:"classPrice" bson:"classPrice"`
	AvailableSeats  int                `json:"availableSeats" bson:"availableSeats"`
	EnrolledStudent *int               `json:"enrolledStudent,omitempty" bson:"enrolledStudent,omitempty"`
	SelectedStudent string             `json:"selectedStudent,omitempty" bson:"selectedStudent,omitempty"`
	Status          string             `json:"status" bson:"status"`
	AdminFeedback   []Feedback         `json:"adminFeedback,omitempty" bson:"adminFeedback,omitempty"`
}

// NewClass is the body an instructor submits on POST /classes. Status is
// not part of it; the server always inserts with status pending.
type NewClass struct {
	InstructorEmail string  `json:"instructorEmail" validate:"required,email"`
	InstructorName  string  `json:"instructorName" validate:"omitempty,max=100"`
	ClassName       string  `json:"className" validate:"required,max=200"`
	ClassPicture    string  `json:"classPicture" validate:"omitempty,url"`
	ClassPrice      float64 `json:"classPrice" validate:"gte=0"`
	AvailableSeats  int     `json:"availableSeats" validate:"gte=0"`
}

type StatusUpdate struct {
	Status string `json:"status" validate:"required,oneof=pending approved denied"`
}

type FeedbackUpdate struct {
	FeedbackText string `json:"feedbackText" validate:"required,max=2000"`
}

type InstructorUpdate struct {
	ClassName    string  `json:"className" validate:"required,max=200"`
	ClassPicture string  `json:"classPicture" validate:"omitempty,url"`
	ClassPrice   float64 `json:"classPrice" validate:"gte=0"`
}

// StudentSelectionUpdate adjusts the seat count when a student picks a
// class. Negative seat counts are rejected up front.
type StudentSelectionUpdate struct {
	SelectedStudent string `json:"selectedStudent" validate:"omitempty,email"`
	AvailableSeats  int    `json:"availableSeats" validate:"gte=0"`
}
