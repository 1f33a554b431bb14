package visaRepo

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

// MongoVisaRepo implements VisaRepository using MongoDB.
type MongoVisaRepo struct {
	coll *mongo.Collection
}

// NewMongoVisaRepo creates a new instance of VisaRepository using MongoDB.
func NewMongoVisaRepo() VisaRepository {
	coll := database.MongoClient.Database(database.DatabaseName).Collection("visa_applications")
	repo := &MongoVisaRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoVisaRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "userId", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoVisaRepo) findOne(filter bson.M) (*models.VisaApplication, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var visa models.VisaApplication
	if err := r.coll.FindOne(ctx, filter).Decode(&visa); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch visa application: %w", err)
	}
	return &visa, nil
}

// GetByUserID retrieves a user's visa application.
func (r *MongoVisaRepo) GetByUserID(userID string) (*models.VisaApplication, error) {
	return r.findOne(bson.M{"userId": userID})
}

// GetByID retrieves an application by its unique ID.
func (r *MongoVisaRepo) GetByID(id string) (*models.VisaApplication, error) {
	return r.findOne(bson.M{"id": id})
}

// Create inserts a new visa application document.
func (r *MongoVisaRepo) Create(visa *models.VisaApplication) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	visa.CreatedAt = now
	visa.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, visa); err != nil {
		return fmt.Errorf("failed to create visa application: %w", err)
	}
	return nil
}

// Save overwrites an existing visa application document, keyed by its ID.
func (r *MongoVisaRepo) Save(visa *models.VisaApplication) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	visa.UpdatedAt = time.Now()
	result, err := r.coll.ReplaceOne(ctx, bson.M{"id": visa.ID}, visa)
	if err != nil {
		return fmt.Errorf("failed to save visa application %s: %w", visa.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("visa application with id %s not found", visa.ID)
	}
	return nil
}

// ListAll retrieves every visa application.
func (r *MongoVisaRepo) ListAll() ([]models.VisaApplication, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve visa applications: %w", err)
	}
	defer cursor.Close(ctx)

	var visas []models.VisaApplication
	for cursor.Next(ctx) {
		var v models.VisaApplication
		if err := cursor.Decode(&v); err != nil {
			return nil, fmt.Errorf("failed to decode visa application: %w", err)
		}
		visas = append(visas, v)
	}
	return visas, nil
}
