package storage

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jinxsazzad/sportifyu-server/model"
	"github.com/jinxsazzad/sportifyu-server/util"
)

// InsertEnrollment stores a student's class selection. The class id is
// not checked against the classes collection.
func (s *Store) InsertEnrollment(enrollment model.Enrollment) (*model.Enrollment, error) {
	res, err := s.enrollments().InsertOne(context.Background(), enrollment)
	if err != nil {
		return nil, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		enrollment.Id = oid
	}
	return &enrollment, nil
}

// ListSelectedByStudent returns a student's active selections only.
func (s *Store) ListSelectedByStudent(email string) ([]model.Enrollment, error) {
	ctx := context.Background()
	cursor, err := s.enrollments().Find(ctx, bson.M{"studentEmail": email, "selected": true})
	if err != nil {
		return nil, err
	}

	enrollments := []model.Enrollment{}
	if err := cursor.All(ctx, &enrollments); err != nil {
		return nil, err
	}
	return enrollments, nil
}

func (s *Store) GetEnrollment(id string) (*model.Enrollment, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	var enrollment model.Enrollment
	err = s.enrollments().FindOne(context.Background(), bson.M{"_id": oid}).Decode(&enrollment)
	if err == mongo.ErrNoDocuments {
		return nil, util.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &enrollment, nil
}

// DeleteEnrollment removes a selection by id, idempotently.
func (s *Store) DeleteEnrollment(id string) (int64, error) {
	oid, err := objectID(id)
	if err != nil {
		return 0, err
	}
	res, err := s.enrollments().DeleteOne(context.Background(), bson.M{"_id": oid})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
