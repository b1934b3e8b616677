package catalog

import (
	"context"
	"fmt"
	"time"

	"stayx/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const servicesCollection = "services"

// MongoCatalogRepo implements Repository on MongoDB.
type MongoCatalogRepo struct {
	coll *mongo.Collection
}

// NewMongoCatalogRepo creates the catalog repository and ensures indexes.
func NewMongoCatalogRepo(db *mongo.Database) (*MongoCatalogRepo, error) {
	repo := &MongoCatalogRepo{coll: db.Collection(servicesCollection)}
	if err := repo.ensureIndexes(context.Background()); err != nil {
		return nil, err
	}
	return repo, nil
}

func (r *MongoCatalogRepo) ensureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	model := mongo.IndexModel{
		Keys: bson.D{
			{Key: "status", Value: 1},
			{Key: "sortOrder", Value: 1},
		},
	}
	if _, err := r.coll.Indexes().CreateOne(ctx, model); err != nil {
		return fmt.Errorf("failed to create services index: %w", err)
	}
	return nil
}

func (r *MongoCatalogRepo) Upsert(ctx context.Context, s *models.ServiceOffering) error {
	now := time.Now()
	s.UpdatedAt = now

	filter := bson.M{"_id": s.ID}
	update := bson.M{
		"$set": bson.M{
			"name":        s.Name,
			"description": s.Description,
			"icon":        s.Icon,
			"status":      s.Status,
			"sortOrder":   s.SortOrder,
			"updatedAt":   s.UpdatedAt,
		},
		"$setOnInsert": bson.M{"createdAt": now},
	}
	opts := options.Update().SetUpsert(true)
	if _, err := r.coll.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("failed to upsert service offering %q: %w", s.ID, err)
	}
	return nil
}

func (r *MongoCatalogRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("failed to delete service offering %q: %w", id, err)
	}
	return nil
}

func (r *MongoCatalogRepo) ListByStatus(ctx context.Context, status models.OfferingStatus) ([]models.ServiceOffering, error) {
	opts := options.Find().SetSort(bson.D{{Key: "sortOrder", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"status": status}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query service offerings: %w", err)
	}
	defer cursor.Close(ctx)

	var offerings []models.ServiceOffering
	if err := cursor.All(ctx, &offerings); err != nil {
		return nil, fmt.Errorf("failed to decode service offerings: %w", err)
	}
	return offerings, nil
}
