package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/campusworks/placement-portal/internal/core/domain"
)

const collectionPlacements = "placements"

type PlacementRepository struct {
	col *mongo.Collection
}

func NewPlacementRepository(db *mongo.Database) *PlacementRepository {
	return &PlacementRepository{col: db.Collection(collectionPlacements)}
}

func (r *PlacementRepository) Create(ctx context.Context, rec *domain.PlacementRecord) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, rec); err != nil {
		return fmt.Errorf("insert placement: %w", err)
	}
	return nil
}

func (r *PlacementRepository) List(ctx context.Context) ([]*domain.PlacementRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "placed_date", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list placements: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.PlacementRecord
	for cur.Next(ctx) {
		var rec domain.PlacementRecord
		if err := cur.Decode(&rec); err != nil {
			return nil, fmt.Errorf("decode placement: %w", err)
		}
		out = append(out, &rec)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list placements: %w", err)
	}
	return out, nil
}

func (r *PlacementRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count placements: %w", err)
	}
	return n, nil
}
