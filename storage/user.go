package storage

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jinxsazzad/sportifyu-server/model"
	"github.com/jinxsazzad/sportifyu-server/util"
)

// UpsertUser creates a user on the first PUT for an email and merges the
// supplied fields on every later one. New users without an explicit role
// default to student.
func (s *Store) UpsertUser(email string, fields model.UpsertUser) (*model.User, error) {
	ctx := context.Background()

	var existing model.User
	err := s.users().FindOne(ctx, bson.M{"email": email}).Decode(&existing)
	if err == mongo.ErrNoDocuments {
		role := fields.Role
		if role == "" {
			role = model.RoleStudent
		}
		user := model.User{Email: email, Role: role, Name: fields.Name, Image: fields.Image}
		res, err := s.users().InsertOne(ctx, user)
		if err != nil {
			return nil, err
		}
		if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
			user.Id = oid
		}
		return &user, nil
	}
	if err != nil {
		return nil, err
	}

	set := bson.M{}
	if fields.Name != "" {
		set["name"] = fields.Name
	}
	if fields.Image != "" {
		set["image"] = fields.Image
	}
	if fields.Role != "" {
		set["role"] = fields.Role
	}
	if len(set) == 0 {
		return &existing, nil
	}

	var updated model.User
	err = s.users().FindOneAndUpdate(ctx, bson.M{"email": email}, bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&updated)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// GetUser looks up a user by the unique email key.
func (s *Store) GetUser(email string) (*model.User, error) {
	var user model.User
	err := s.users().FindOne(context.Background(), bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, util.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// RoleOf reports the stored role for an email. Every admin check calls
// this again; nothing is cached.
func (s *Store) RoleOf(email string) (string, error) {
	user, err := s.GetUser(email)
	if err != nil {
		return "", err
	}
	return user.Role, nil
}

func (s *Store) ListUsers() ([]model.User, error) {
	return s.findUsers(bson.M{})
}

func (s *Store) ListInstructors() ([]model.User, error) {
	return s.findUsers(bson.M{"role": model.RoleInstructor})
}

func (s *Store) findUsers(filter bson.M) ([]model.User, error) {
	ctx := context.Background()
	cursor, err := s.users().Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	users := []model.User{}
	for cursor.Next(ctx) {
		var user model.User
		if err := cursor.Decode(&user); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return users, nil
}
