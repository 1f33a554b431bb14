package tokenRepo

import (
	"context"
	"fmt"
	"time"

	"staffstream/database"
	"staffstream/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoTokenRepo implements TokenRepository using MongoDB.
type MongoTokenRepo struct {
	coll *mongo.Collection
}

// NewMongoTokenRepo creates a new instance of TokenRepository using MongoDB.
func NewMongoTokenRepo() TokenRepository {
	coll := database.MongoClient.Database(database.DatabaseName).Collection("registration_tokens")
	repo := &MongoTokenRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoTokenRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "token", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoTokenRepo) findOne(filter bson.M) (*models.RegistrationToken, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var token models.RegistrationToken
	if err := r.coll.FindOne(ctx, filter).Decode(&token); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch registration token: %w", err)
	}
	return &token, nil
}

// Create inserts a new registration token document.
func (r *MongoTokenRepo) Create(token *models.RegistrationToken) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	token.CreatedAt = time.Now()
	if _, err := r.coll.InsertOne(ctx, token); err != nil {
		return fmt.Errorf("failed to create registration token: %w", err)
	}
	return nil
}

// GetByToken retrieves a token by its opaque value.
func (r *MongoTokenRepo) GetByToken(token string) (*models.RegistrationToken, error) {
	return r.findOne(bson.M{"token": token})
}

// GetByID retrieves a token by its unique ID.
func (r *MongoTokenRepo) GetByID(id string) (*models.RegistrationToken, error) {
	return r.findOne(bson.M{"id": id})
}

// MarkRegistered flips a pending token to registered. Filtering on the
// pending status keeps the flip one-way even under concurrent redemption.
func (r *MongoTokenRepo) MarkRegistered(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id, "status": models.TokenStatusPending}
	update := bson.M{"$set": bson.M{"status": models.TokenStatusRegistered}}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to mark token %s registered: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("token with id %s is not pending", id)
	}
	return nil
}

// ListAll returns the full token history, newest first.
func (r *MongoTokenRepo) ListAll() ([]models.RegistrationToken, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve token history: %w", err)
	}
	defer cursor.Close(ctx)

	var tokens []models.RegistrationToken
	for cursor.Next(ctx) {
		var t models.RegistrationToken
		if err := cursor.Decode(&t); err != nil {
			return nil, fmt.Errorf("failed to decode registration token: %w", err)
		}
		tokens = append(tokens, t)
	}
	return tokens, nil
}
