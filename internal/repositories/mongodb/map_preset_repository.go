package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"staticmaps/internal/models"
	"staticmaps/internal/repositories/interfaces"
	"staticmaps/internal/utils"
	"staticmaps/pkg/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mapPresetRepository struct {
	collection *mongo.Collection
}

func NewMapPresetRepository(db *mongo.Database) interfaces.MapPresetRepository {
	return &mapPresetRepository{
		collection: db.Collection(database.PresetsCollection),
	}
}

func (r *mapPresetRepository) Upsert(ctx context.Context, preset *models.MapPreset) error {
	now := time.Now()
	preset.UpdatedAt = now

	// _id, created_by and created_at are only written on insert
	update := bson.M{
		"$set": bson.M{
			"name":        preset.Name,
			"description": preset.Description,
			"request":     preset.Request,
			"updated_at":  now,
		},
		"$setOnInsert": bson.M{
			"_id":        primitive.NewObjectID(),
			"created_by": preset.CreatedBy,
			"created_at": now,
		},
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var saved models.MapPreset
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"name": preset.Name}, update, opts).Decode(&saved)
	if err != nil {
		return fmt.Errorf("failed to save map preset: %w", err)
	}

	preset.ID = saved.ID
	preset.CreatedBy = saved.CreatedBy
	preset.CreatedAt = saved.CreatedAt
	return nil
}

func (r *mapPresetRepository) GetByName(ctx context.Context, name string) (*models.MapPreset, error) {
	var preset models.MapPreset
	err := r.collection.FindOne(ctx, bson.M{"name": name}).Decode(&preset)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, interfaces.ErrPresetNotFound
		}
		return nil, fmt.Errorf("failed to get map preset: %w", err)
	}

	return &preset, nil
}

func (r *mapPresetRepository) Delete(ctx context.Context, name string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"name": name})
	if err != nil {
		return fmt.Errorf("failed to delete map preset: %w", err)
	}

	if result.DeletedCount == 0 {
		return interfaces.ErrPresetNotFound
	}

	return nil
}

func (r *mapPresetRepository) List(ctx context.Context, params *utils.PaginationParams) ([]*models.MapPreset, int64, error) {
	filter := params.SearchFilter("name", "description")

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count map presets: %w", err)
	}

	cursor, err := r.collection.Find(ctx, filter, params.FindOptions())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list map presets: %w", err)
	}
	defer cursor.Close(ctx)

	presets := make([]*models.MapPreset, 0, params.Limit)
	if err := cursor.All(ctx, &presets); err != nil {
		return nil, 0, fmt.Errorf("failed to decode map presets: %w", err)
	}

	return presets, total, nil
}
