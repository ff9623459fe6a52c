package storage

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jinxsazzad/sportifyu-server/model"
	"github.com/jinxsazzad/sportifyu-server/util"
)

// InsertClass stores a newly submitted class. The caller decides the
// status; handlers always submit pending.
func (s *Store) InsertClass(class model.Class) (*model.Class, error) {
	res, err := s.classes().InsertOne(context.Background(), class)
	if err != nil {
		return nil, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		class.Id = oid
	}
	return &class, nil
}

func (s *Store) ListClasses() ([]model.Class, error) {
	return s.findClasses(bson.M{}, nil)
}

func (s *Store) ListClassesByStatus(status string) ([]model.Class, error) {
	return s.findClasses(bson.M{"status": status}, nil)
}

func (s *Store) ListClassesByInstructor(email string) ([]model.Class, error) {
	return s.findClasses(bson.M{"instructorEmail": email}, nil)
}

// PopularClasses returns at most six classes that have an enrolledStudent
// count, most enrolled first.
func (s *Store) PopularClasses() ([]model.Class, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "enrolledStudent", Value: -1}}).
		SetLimit(6)
	return s.findClasses(bson.M{"enrolledStudent": bson.M{"$exists": true}}, opts)
}

func (s *Store) GetClass(id string) (*model.Class, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	var class model.Class
	err = s.classes().FindOne(context.Background(), bson.M{"_id": oid}).Decode(&class)
	if err == mongo.ErrNoDocuments {
		return nil, util.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &class, nil
}

// SetClassStatus overwrites the status field and returns the updated
// document, or ErrNotFound when no class matches the id.
func (s *Store) SetClassStatus(id, status string) (*model.Class, error) {
	return s.updateClass(id, bson.M{"$set": bson.M{"status": status}})
}

// AttachFeedback appends one admin feedback entry to the class.
func (s *Store) AttachFeedback(id, text string) (*model.Class, error) {
	entry := model.Feedback{
		Id:        uuid.NewString(),
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}
	return s.updateClass(id, bson.M{"$push": bson.M{"adminFeedback": entry}})
}

// UpdateClassByInstructor overwrites the fields an instructor may edit.
func (s *Store) UpdateClassByInstructor(id string, update model.InstructorUpdate) (*model.Class, error) {
	return s.updateClass(id, bson.M{"$set": bson.M{
		"className":    update.ClassName,
		"classPicture": update.ClassPicture,
		"classPrice":   update.ClassPrice,
	}})
}

// UpdateClassSelection overwrites the selecting student and the remaining
// seat count.
func (s *Store) UpdateClassSelection(id string, update model.StudentSelectionUpdate) (*model.Class, error) {
	return s.updateClass(id, bson.M{"$set": bson.M{
		"selectedStudent": update.SelectedStudent,
		"availableSeats":  update.AvailableSeats,
	}})
}

// DeleteClass removes a class by id. Deleting an id that is already gone
// is not an error; the count tells the caller what happened.
func (s *Store) DeleteClass(id string) (int64, error) {
	oid, err := objectID(id)
	if err != nil {
		return 0, err
	}
	res, err := s.classes().DeleteOne(context.Background(), bson.M{"_id": oid})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (s *Store) updateClass(id string, update bson.M) (*model.Class, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	var class model.Class
	err = s.classes().FindOneAndUpdate(context.Background(), bson.M{"_id": oid}, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&class)
	if err == mongo.ErrNoDocuments {
		return nil, util.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &class, nil
}

func (s *Store) findClasses(filter bson.M, opts *options.FindOptions) ([]model.Class, error) {
	ctx := context.Background()

	var cursor *mongo.Cursor
	var err error
	if opts != nil {
		cursor, err = s.classes().Find(ctx, filter, opts)
	} else {
		cursor, err = s.classes().Find(ctx, filter)
	}
	if err != nil {
		return nil, err
	}

	classes := []model.Class{}
	if err := cursor.All(ctx, &classes); err != nil {
		return nil, err
	}
	return classes, nil
}
