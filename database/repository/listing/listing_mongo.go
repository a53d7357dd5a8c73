package listingRepo

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

// MongoListingRepo implements ListingRepository using MongoDB.
type MongoListingRepo struct {
	coll *mongo.Collection
}

// NewMongoListingRepo creates a new instance of ListingRepository using MongoDB.
func NewMongoListingRepo() ListingRepository {
	coll := database.Collection("listings")
	repo := &MongoListingRepo{coll: coll}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("warning: failed to ensure listing indexes: %v\n", err)
	}
	return repo
}

func newContext(d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), d)
}

func (r *MongoListingRepo) GetByID(id string) (*models.Listing, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var listing models.Listing
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&listing)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch listing with id %s: %w", id, err)
	}
	return &listing, nil
}

func (r *MongoListingRepo) GetAll() ([]models.Listing, error) {
	return r.find(bson.M{})
}

func (r *MongoListingRepo) GetByKind(kind models.ListingKind) ([]models.Listing, error) {
	return r.find(bson.M{"kind": kind})
}

// find runs a filter query sorted by insertion order so that catalog
// filtering downstream stays stable.
func (r *MongoListingRepo) find(filter bson.M) ([]models.Listing, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query listings: %w", err)
	}
	defer cursor.Close(ctx)

	var listings []models.Listing
	if err := cursor.All(ctx, &listings); err != nil {
		return nil, fmt.Errorf("failed to decode listings: %w", err)
	}
	return listings, nil
}

// Create inserts a new listing document.
func (r *MongoListingRepo) Create(listing *models.Listing) error {
	if err := listing.Validate(); err != nil {
		return fmt.Errorf("refusing to store invalid listing: %w", err)
	}

	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, listing); err != nil {
		return fmt.Errorf("failed to create listing: %w", err)
	}
	return nil
}

// Update modifies an existing listing document.
func (r *MongoListingRepo) Update(listing *models.Listing) error {
	if err := listing.Validate(); err != nil {
		return fmt.Errorf("refusing to store invalid listing: %w", err)
	}

	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": listing.ID}
	update := bson.M{"$set": listing}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update listing with id %s: %w", listing.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("listing with id %s not found", listing.ID)
	}
	return nil
}

// Delete removes a listing document by its ID.
func (r *MongoListingRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete listing with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("listing with id %s not found", id)
	}
	return nil
}

// SetAvailability flips the availability flag on a listing document.
func (r *MongoListingRepo) SetAvailability(id string, available bool) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	update := bson.M{"$set": bson.M{"available": available}}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to set availability on listing %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("listing with id %s not found", id)
	}
	return nil
}
