package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"acronym-finder/internal/schemas"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	acronymsCollection = "acronyms"
	usersCollection    = "users"
)

type acronymDocument struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Acronym    string             `bson:"acronym"`
	Definition string             `bson:"definition"`
	Category   string             `bson:"category,omitempty"`
	Notes      string             `bson:"notes,omitempty"`
	CreatedAt  time.Time          `bson:"createdAt"`
}

func (d *acronymDocument) toAcronym() *schemas.Acronym {
	createdAt := d.CreatedAt
	return &schemas.Acronym{
		ID:         d.ID.Hex(),
		Acronym:    d.Acronym,
		Definition: d.Definition,
		Category:   d.Category,
		Notes:      d.Notes,
		CreatedAt:  &createdAt,
	}
}

type userDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Username  string             `bson:"username"`
	Password  string             `bson:"password"`
	FirstName string             `bson:"firstName"`
	LastName  string             `bson:"lastName"`
	CreatedAt time.Time          `bson:"createdAt"`
}

// MongoRepository implements AcronymRepository and UserRepository on a MongoDB database.
type MongoRepository struct {
	acronyms *mongo.Collection
	users    *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{
		acronyms: db.Collection(acronymsCollection),
		users:    db.Collection(usersCollection),
	}
}

// EnsureIndexes creates the unique username index the user operations rely on.
func (r *MongoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create username index: %w", err)
	}
	return nil
}

func (r *MongoRepository) ListAcronyms(ctx context.Context, offset, limit int) ([]*schemas.Acronym, error) {
	findOptions := options.Find().SetSkip(int64(offset))
	if limit > 0 {
		findOptions.SetLimit(int64(limit))
	}

	cursor, err := r.acronyms.Find(ctx, bson.D{}, findOptions)
	if err != nil {
		return nil, fmt.Errorf("list acronyms: %w", err)
	}

	var documents []acronymDocument
	if err := cursor.All(ctx, &documents); err != nil {
		return nil, fmt.Errorf("decode acronyms: %w", err)
	}

	acronyms := make([]*schemas.Acronym, 0, len(documents))
	for i := range documents {
		acronyms = append(acronyms, documents[i].toAcronym())
	}
	return acronyms, nil
}

func (r *MongoRepository) GetAcronym(ctx context.Context, id string) (*schemas.Acronym, error) {
	objectId, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var document acronymDocument
	if err := r.acronyms.FindOne(ctx, bson.M{"_id": objectId}).Decode(&document); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get acronym: %w", err)
	}

	return document.toAcronym(), nil
}

func (r *MongoRepository) CreateAcronym(ctx context.Context, acronym *schemas.Acronym) error {
	document := acronymDocument{
		ID:         primitive.NewObjectID(),
		Acronym:    acronym.Acronym,
		Definition: acronym.Definition,
		Category:   acronym.Category,
		Notes:      acronym.Notes,
		CreatedAt:  time.Now().UTC(),
	}

	if _, err := r.acronyms.InsertOne(ctx, document); err != nil {
		return fmt.Errorf("create acronym: %w", err)
	}

	acronym.ID = document.ID.Hex()
	acronym.CreatedAt = &document.CreatedAt
	return nil
}

func (r *MongoRepository) UpdateAcronym(ctx context.Context, acronym *schemas.Acronym) error {
	objectId, err := primitive.ObjectIDFromHex(acronym.ID)
	if err != nil {
		return ErrNotFound
	}

	update := bson.M{"$set": bson.M{
		"acronym":    acronym.Acronym,
		"definition": acronym.Definition,
		"category":   acronym.Category,
		"notes":      acronym.Notes,
	}}
	result, err := r.acronyms.UpdateOne(ctx, bson.M{"_id": objectId}, update)
	if err != nil {
		return fmt.Errorf("update acronym: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *MongoRepository) DeleteAcronym(ctx context.Context, id string) error {
	objectId, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	result, err := r.acronyms.DeleteOne(ctx, bson.M{"_id": objectId})
	if err != nil {
		return fmt.Errorf("delete acronym: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *MongoRepository) CreateUser(ctx context.Context, user *schemas.User) error {
	document := userDocument{
		ID:        primitive.NewObjectID(),
		Username:  user.Username,
		Password:  user.Password,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		CreatedAt: time.Now().UTC(),
	}

	if _, err := r.users.InsertOne(ctx, document); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrUsernameTaken
		}
		return fmt.Errorf("create user: %w", err)
	}

	user.ID = document.ID.Hex()
	user.CreatedAt = &document.CreatedAt
	return nil
}

func (r *MongoRepository) GetUserByUsername(ctx context.Context, username string) (*schemas.User, error) {
	var document userDocument
	if err := r.users.FindOne(ctx, bson.M{"username": username}).Decode(&document); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	return &schemas.User{
		ID:        document.ID.Hex(),
		Username:  document.Username,
		Password:  document.Password,
		FirstName: document.FirstName,
		LastName:  document.LastName,
		CreatedAt: &document.CreatedAt,
	}, nil
}

func (r *MongoRepository) DeleteUserByUsername(ctx context.Context, username string) error {
	result, err := r.users.DeleteOne(ctx, bson.M{"username": username})
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}

	return nil
}
