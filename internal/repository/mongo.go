package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/mealsmith/backend/internal/model"
	"github.com/mealsmith/backend/internal/service"
)

const recipeCollection = "recipes"

// MongoRecipes is the document-store implementation of the recipe
// repository.
type MongoRecipes struct {
	col    *mongo.Collection
	logger *zap.Logger
}

func NewMongoRecipes(db *mongo.Database, logger *zap.Logger) *MongoRecipes {
	return &MongoRecipes{
		col:    db.Collection(recipeCollection),
		logger: logger,
	}
}

// Owner returns a store bound to the given owner. The scope owns the
// _id+owner_id filter for every operation; nothing above it repeats the
// ownership check.
func (r *MongoRecipes) Owner(ownerID string) service.RecipeStore {
	return &mongoScope{col: r.col, owner: ownerID, logger: r.logger}
}

type mongoScope struct {
	col    *mongo.Collection
	owner  string
	logger *zap.Logger
}

func (s *mongoScope) filter(id primitive.ObjectID) bson.M {
	return bson.M{"_id": id, "owner_id": s.owner}
}

func (s *mongoScope) Create(ctx context.Context, recipe *model.Recipe) (*model.Recipe, error) {
	recipe.ID = primitive.NewObjectID()
	recipe.OwnerID = s.owner
	recipe.CreatedAt = time.Now().UTC()

	if _, err := s.col.InsertOne(ctx, recipe); err != nil {
		return nil, fmt.Errorf("inserting recipe: %w", err)
	}
	return recipe, nil
}

func (s *mongoScope) List(ctx context.Context) ([]model.Recipe, error) {
	cursor, err := s.col.Find(ctx, bson.M{"owner_id": s.owner})
	if err != nil {
		return nil, fmt.Errorf("listing recipes: %w", err)
	}

	recipes := make([]model.Recipe, 0)
	if err := cursor.All(ctx, &recipes); err != nil {
		return nil, fmt.Errorf("decoding recipes: %w", err)
	}
	return recipes, nil
}

func (s *mongoScope) Get(ctx context.Context, id string) (*model.Recipe, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, service.ErrNotFound
	}

	var recipe model.Recipe
	err = s.col.FindOne(ctx, s.filter(oid)).Decode(&recipe)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, service.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("fetching recipe: %w", err)
	}
	return &recipe, nil
}

func (s *mongoScope) Update(ctx context.Context, id string, patch model.RecipePatch) (*model.Recipe, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, service.ErrNotFound
	}

	set := bson.M{}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.Ingredients != nil {
		set["ingredients"] = *patch.Ingredients
	}
	if patch.Instructions != nil {
		set["instructions"] = *patch.Instructions
	}
	if patch.Servings != nil {
		set["servings"] = *patch.Servings
	}
	if patch.Tags != nil {
		set["tags"] = *patch.Tags
	}
	if patch.Nutrition != nil {
		set["nutrition"] = patch.Nutrition
	}
	if patch.Favourite != nil {
		set["favourite"] = *patch.Favourite
	}
	if len(set) == 0 {
		return s.Get(ctx, id)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated model.Recipe
	err = s.col.FindOneAndUpdate(ctx, s.filter(oid), bson.M{"$set": set}, opts).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, service.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("updating recipe: %w", err)
	}
	return &updated, nil
}

func (s *mongoScope) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return service.ErrNotFound
	}

	err = s.col.FindOneAndDelete(ctx, s.filter(oid)).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return service.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("deleting recipe: %w", err)
	}
	return nil
}
