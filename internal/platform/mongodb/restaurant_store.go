package mongodb

import (
	"context"
	"log/slog"

	"github.com/phrazzld/restaurant-api/internal/domain"
	"github.com/phrazzld/restaurant-api/internal/platform/logger"
	"github.com/phrazzld/restaurant-api/internal/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const restaurantEntity = "restaurant"

// RestaurantStore implements store.RestaurantStore over a MongoDB collection.
type RestaurantStore struct {
	coll   *mongo.Collection
	logger *slog.Logger
}

// NewRestaurantStore creates a RestaurantStore over coll.
// If logger is nil, a default logger will be used.
func NewRestaurantStore(coll *mongo.Collection, logger *slog.Logger) *RestaurantStore {
	if coll == nil {
		panic("collection cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &RestaurantStore{
		coll:   coll,
		logger: logger.With(slog.String("component", "restaurant_store")),
	}
}

var _ store.RestaurantStore = (*RestaurantStore)(nil)

// List implements store.RestaurantStore.List
func (s *RestaurantStore) List(ctx context.Context) ([]*domain.Restaurant, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	cursor, err := s.coll.Find(ctx, bson.D{})
	if err != nil {
		log.Error("failed to list restaurants", slog.String("error", err.Error()))
		return nil, MapError(err, restaurantEntity, "list", store.ErrRestaurantNotFound)
	}
	defer cursor.Close(ctx)

	var docs []restaurantDocument
	if err := cursor.All(ctx, &docs); err != nil {
		log.Error("failed to decode restaurants", slog.String("error", err.Error()))
		return nil, MapError(err, restaurantEntity, "list", store.ErrRestaurantNotFound)
	}

	restaurants := make([]*domain.Restaurant, 0, len(docs))
	for i := range docs {
		restaurants = append(restaurants, docs[i].toDomain())
	}
	return restaurants, nil
}

// GetByID implements store.RestaurantStore.GetByID
func (s *RestaurantStore) GetByID(ctx context.Context, id string) (*domain.Restaurant, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		log.Debug("restaurant id is not an ObjectID", slog.String("restaurant_id", id))
		return nil, store.ErrRestaurantNotFound
	}

	var doc restaurantDocument
	err = s.coll.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&doc)
	if err != nil {
		mapped := MapError(err, restaurantEntity, "get", store.ErrRestaurantNotFound)
		if store.IsNotFoundError(mapped) {
			log.Debug("restaurant not found", slog.String("restaurant_id", id))
		} else {
			log.Error("failed to get restaurant",
				slog.String("error", err.Error()),
				slog.String("restaurant_id", id))
		}
		return nil, mapped
	}

	return doc.toDomain(), nil
}

// Create implements store.RestaurantStore.Create
func (s *RestaurantStore) Create(ctx context.Context, restaurant *domain.Restaurant) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := restaurant.Validate(); err != nil {
		log.Warn("restaurant validation failed during create", slog.String("error", err.Error()))
		return err
	}

	doc := restaurantDocument{
		ID:      primitive.NewObjectID(),
		Name:    restaurant.Name,
		Address: restaurant.Address,
		Hours:   restaurant.Hours,
	}
	if _, err := s.coll.InsertOne(ctx, doc); err != nil {
		log.Error("failed to create restaurant", slog.String("error", err.Error()))
		return MapError(err, restaurantEntity, "create", store.ErrRestaurantNotFound)
	}

	restaurant.ID = doc.ID.Hex()
	log.Info("restaurant created successfully", slog.String("restaurant_id", restaurant.ID))
	return nil
}

// Update implements store.RestaurantStore.Update
// An empty patch returns the current record unchanged.
func (s *RestaurantStore) Update(
	ctx context.Context,
	id string,
	patch domain.RestaurantPatch,
) (*domain.Restaurant, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if patch.IsEmpty() {
		return s.GetByID(ctx, id)
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, store.ErrRestaurantNotFound
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc restaurantDocument
	err = s.coll.FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: oid}},
		bson.D{{Key: "$set", Value: restaurantSet(patch)}},
		opts,
	).Decode(&doc)
	if err != nil {
		mapped := MapError(err, restaurantEntity, "update", store.ErrRestaurantNotFound)
		if !store.IsNotFoundError(mapped) {
			log.Error("failed to update restaurant",
				slog.String("error", err.Error()),
				slog.String("restaurant_id", id))
		}
		return nil, mapped
	}

	log.Info("restaurant updated successfully", slog.String("restaurant_id", id))
	return doc.toDomain(), nil
}

// Delete implements store.RestaurantStore.Delete
func (s *RestaurantStore) Delete(ctx context.Context, id string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return store.ErrRestaurantNotFound
	}

	res, err := s.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		log.Error("failed to delete restaurant",
			slog.String("error", err.Error()),
			slog.String("restaurant_id", id))
		return MapError(err, restaurantEntity, "delete", store.ErrRestaurantNotFound)
	}
	if res.DeletedCount == 0 {
		return store.ErrRestaurantNotFound
	}

	log.Info("restaurant deleted successfully", slog.String("restaurant_id", id))
	return nil
}
