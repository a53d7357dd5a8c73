package partnerRepo

import (
	"context"
	"fmt"
	"time"

	"buildlanka/database"
	"buildlanka/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoPartnerRepo implements PartnerRepository using MongoDB.
type MongoPartnerRepo struct {
	coll *mongo.Collection
}

// NewMongoPartnerRepo creates a new instance of PartnerRepository using MongoDB.
func NewMongoPartnerRepo() PartnerRepository {
	coll := database.Collection("partners")
	repo := &MongoPartnerRepo{coll: coll}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("warning: failed to ensure partner indexes: %v\n", err)
	}
	return repo
}

func newContext(d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), d)
}

func (r *MongoPartnerRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	idIdx := mongo.IndexModel{
		Keys:    bson.D{{Key: "id", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	emailIdx := mongo.IndexModel{
		Keys: bson.D{{Key: "business.email", Value: 1}},
	}
	statusIdx := mongo.IndexModel{
		Keys: bson.D{{Key: "status", Value: 1}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{idIdx, emailIdx, statusIdx})
	if err != nil {
		return fmt.Errorf("failed to create partner indexes: %w", err)
	}
	return nil
}

func (r *MongoPartnerRepo) GetByID(id string) (*models.Partner, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var partner models.Partner
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&partner)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch partner with id %s: %w", id, err)
	}
	return &partner, nil
}

func (r *MongoPartnerRepo) GetByEmail(email string) (*models.Partner, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var partner models.Partner
	err := r.coll.FindOne(ctx, bson.M{"business.email": email}).Decode(&partner)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch partner with email %s: %w", email, err)
	}
	return &partner, nil
}

func (r *MongoPartnerRepo) ListByStatus(status string) ([]models.Partner, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"status": status}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query partners by status %s: %w", status, err)
	}
	defer cursor.Close(ctx)

	var partners []models.Partner
	if err := cursor.All(ctx, &partners); err != nil {
		return nil, fmt.Errorf("failed to decode partners: %w", err)
	}
	return partners, nil
}

// Create inserts a new partner document.
func (r *MongoPartnerRepo) Create(partner *models.Partner) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, partner); err != nil {
		return fmt.Errorf("failed to create partner: %w", err)
	}
	return nil
}

// UpdateStatus moves a partner document to a new review status.
func (r *MongoPartnerRepo) UpdateStatus(id string, status string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	update := bson.M{"$set": bson.M{"status": status}}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update partner %s status: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("partner with id %s not found", id)
	}
	return nil
}

// Delete removes a partner document by its ID.
func (r *MongoPartnerRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete partner with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("partner with id %s not found", id)
	}
	return nil
}
