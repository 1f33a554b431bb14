package onboardingRepo

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

// MongoOnboardingRepo implements OnboardingRepository using MongoDB.
type MongoOnboardingRepo struct {
	coll *mongo.Collection
}

// NewMongoOnboardingRepo creates a new instance of OnboardingRepository using MongoDB.
func NewMongoOnboardingRepo() OnboardingRepository {
	coll := database.MongoClient.Database(database.DatabaseName).Collection("onboarding_applications")
	repo := &MongoOnboardingRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoOnboardingRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "userId", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoOnboardingRepo) findOne(filter bson.M) (*models.OnboardingApplication, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var app models.OnboardingApplication
	if err := r.coll.FindOne(ctx, filter).Decode(&app); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch onboarding application: %w", err)
	}
	return &app, nil
}

// GetByUserID retrieves a user's application.
func (r *MongoOnboardingRepo) GetByUserID(userID string) (*models.OnboardingApplication, error) {
	return r.findOne(bson.M{"userId": userID})
}

// GetByID retrieves an application by its unique ID.
func (r *MongoOnboardingRepo) GetByID(id string) (*models.OnboardingApplication, error) {
	return r.findOne(bson.M{"id": id})
}

// Create inserts a new application document.
func (r *MongoOnboardingRepo) Create(app *models.OnboardingApplication) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	app.CreatedAt = now
	app.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, app); err != nil {
		return fmt.Errorf("failed to create onboarding application: %w", err)
	}
	return nil
}

// Replace overwrites an existing application document, keyed by its ID.
func (r *MongoOnboardingRepo) Replace(app *models.OnboardingApplication) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	app.UpdatedAt = time.Now()
	result, err := r.coll.ReplaceOne(ctx, bson.M{"id": app.ID}, app)
	if err != nil {
		return fmt.Errorf("failed to replace onboarding application %s: %w", app.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("onboarding application with id %s not found", app.ID)
	}
	return nil
}

// UpdateStatus sets the review status and rejection feedback.
func (r *MongoOnboardingRepo) UpdateStatus(id string, status models.ApplicationStatus, feedback string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"status":            status,
		"rejectionFeedback": feedback,
		"updatedAt":         time.Now(),
	}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update status of application %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("onboarding application with id %s not found", id)
	}
	return nil
}

// ListByStatus retrieves applications filtered by status; pass "" for all.
func (r *MongoOnboardingRepo) ListByStatus(status models.ApplicationStatus) ([]models.OnboardingApplication, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve onboarding applications: %w", err)
	}
	defer cursor.Close(ctx)

	var apps []models.OnboardingApplication
	for cursor.Next(ctx) {
		var a models.OnboardingApplication
		if err := cursor.Decode(&a); err != nil {
			return nil, fmt.Errorf("failed to decode onboarding application: %w", err)
		}
		apps = append(apps, a)
	}
	return apps, nil
}
