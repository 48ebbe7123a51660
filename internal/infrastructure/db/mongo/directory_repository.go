package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/campusworks/placement-portal/internal/core/domain"
)

const collectionUsers = "users"

// DirectoryRepository stores the user catalogue rendered by the admin views.
type DirectoryRepository struct {
	col *mongo.Collection
}

func NewDirectoryRepository(db *mongo.Database) *DirectoryRepository {
	return &DirectoryRepository{col: db.Collection(collectionUsers)}
}

type directoryUser struct {
	ID         string    `bson:"_id"`
	Name       string    `bson:"name"`
	Email      string    `bson:"email"`
	Role       string    `bson:"role"`
	Department string    `bson:"department,omitempty"`
	Company    string    `bson:"company,omitempty"`
	Phone      string    `bson:"phone,omitempty"`
	CreatedAt  time.Time `bson:"created_at"`
}

// Upsert inserts or replaces the directory entry for the identity.
func (r *DirectoryRepository) Upsert(ctx context.Context, identity *domain.Identity) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := directoryUser{
		ID:         identity.ID,
		Name:       identity.Name,
		Email:      identity.Email,
		Role:       string(identity.Role),
		Department: identity.Department,
		Company:    identity.Company,
		Phone:      identity.Phone,
		CreatedAt:  identity.CreatedAt,
	}

	opts := options.Replace().SetUpsert(true)
	if _, err := r.col.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc, opts); err != nil {
		return fmt.Errorf("upsert user: %w", err)
	}
	return nil
}

// List returns directory entries, optionally restricted to one role, newest first.
func (r *DirectoryRepository) List(ctx context.Context, role domain.Role) ([]*domain.Identity, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if role != "" {
		filter["role"] = string(role)
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.Identity
	for cur.Next(ctx) {
		var du directoryUser
		if err := cur.Decode(&du); err != nil {
			return nil, fmt.Errorf("decode user: %w", err)
		}
		out = append(out, &domain.Identity{
			ID:         du.ID,
			Name:       du.Name,
			Email:      du.Email,
			Role:       domain.Role(du.Role),
			Department: du.Department,
			Company:    du.Company,
			Phone:      du.Phone,
			CreatedAt:  du.CreatedAt,
		})
	}
	if err := cur.Err(); err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return out, nil
}

// CountByRole counts directory entries holding the given role.
func (r *DirectoryRepository) CountByRole(ctx context.Context, role domain.Role) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.col.CountDocuments(ctx, bson.M{"role": string(role)})
	if err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}
