package mongodb

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/restaurant-api/internal/domain"
	"github.com/phrazzld/restaurant-api/internal/platform/logger"
	"github.com/phrazzld/restaurant-api/internal/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const menuItemEntity = "menu_item"

// MenuItemStore implements store.MenuItemStore over a MongoDB collection.
type MenuItemStore struct {
	coll   *mongo.Collection
	logger *slog.Logger
}

// NewMenuItemStore creates a MenuItemStore over coll.
// If logger is nil, a default logger will be used.
func NewMenuItemStore(coll *mongo.Collection, logger *slog.Logger) *MenuItemStore {
	if coll == nil {
		panic("collection cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &MenuItemStore{
		coll:   coll,
		logger: logger.With(slog.String("component", "menu_item_store")),
	}
}

var _ store.MenuItemStore = (*MenuItemStore)(nil)

// Create implements store.MenuItemStore.Create
// The restaurant id must be an ObjectID; the restaurant itself is not looked up.
func (s *MenuItemStore) Create(ctx context.Context, item *domain.MenuItem) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := item.Validate(); err != nil {
		log.Warn("menu item validation failed during create", slog.String("error", err.Error()))
		return err
	}

	restaurantOID, err := primitive.ObjectIDFromHex(item.RestaurantID)
	if err != nil {
		return domain.NewValidationError("restaurant_id",
			fmt.Sprintf("%q is not a valid id", item.RestaurantID), domain.ErrInvalidID)
	}

	doc := menuItemDocument{
		ID:           primitive.NewObjectID(),
		RestaurantID: restaurantOID,
		Name:         item.Name,
		Description:  item.Description,
		Price:        item.Price,
		Availability: item.Availability,
	}
	if _, err := s.coll.InsertOne(ctx, doc); err != nil {
		log.Error("failed to create menu item",
			slog.String("error", err.Error()),
			slog.String("restaurant_id", item.RestaurantID))
		return MapError(err, menuItemEntity, "create", store.ErrMenuItemNotFound)
	}

	item.ID = doc.ID.Hex()
	log.Info("menu item created successfully",
		slog.String("menu_item_id", item.ID),
		slog.String("restaurant_id", item.RestaurantID))
	return nil
}

// ListByRestaurant implements store.MenuItemStore.ListByRestaurant
func (s *MenuItemStore) ListByRestaurant(ctx context.Context, restaurantID string) ([]*domain.MenuItem, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	oid, err := primitive.ObjectIDFromHex(restaurantID)
	if err != nil {
		return []*domain.MenuItem{}, nil
	}

	cursor, err := s.coll.Find(ctx, bson.D{{Key: "restaurant_id", Value: oid}})
	if err != nil {
		log.Error("failed to list menu items",
			slog.String("error", err.Error()),
			slog.String("restaurant_id", restaurantID))
		return nil, MapError(err, menuItemEntity, "list", store.ErrMenuItemNotFound)
	}
	defer cursor.Close(ctx)

	var docs []menuItemDocument
	if err := cursor.All(ctx, &docs); err != nil {
		log.Error("failed to decode menu items", slog.String("error", err.Error()))
		return nil, MapError(err, menuItemEntity, "list", store.ErrMenuItemNotFound)
	}

	items := make([]*domain.MenuItem, 0, len(docs))
	for i := range docs {
		items = append(items, docs[i].toDomain())
	}
	return items, nil
}

// GetByID implements store.MenuItemStore.GetByID
func (s *MenuItemStore) GetByID(ctx context.Context, id string) (*domain.MenuItem, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, store.ErrMenuItemNotFound
	}

	var doc menuItemDocument
	if err := s.coll.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&doc); err != nil {
		mapped := MapError(err, menuItemEntity, "get", store.ErrMenuItemNotFound)
		if !store.IsNotFoundError(mapped) {
			log.Error("failed to get menu item",
				slog.String("error", err.Error()),
				slog.String("menu_item_id", id))
		}
		return nil, mapped
	}
	return doc.toDomain(), nil
}

// Update implements store.MenuItemStore.Update
// An empty patch returns the current record unchanged.
func (s *MenuItemStore) Update(ctx context.Context, id string, patch domain.MenuItemPatch) (*domain.MenuItem, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if patch.IsEmpty() {
		return s.GetByID(ctx, id)
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, store.ErrMenuItemNotFound
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc menuItemDocument
	err = s.coll.FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: oid}},
		bson.D{{Key: "$set", Value: menuItemSet(patch)}},
		opts,
	).Decode(&doc)
	if err != nil {
		mapped := MapError(err, menuItemEntity, "update", store.ErrMenuItemNotFound)
		if !store.IsNotFoundError(mapped) {
			log.Error("failed to update menu item",
				slog.String("error", err.Error()),
				slog.String("menu_item_id", id))
		}
		return nil, mapped
	}

	log.Info("menu item updated successfully", slog.String("menu_item_id", id))
	return doc.toDomain(), nil
}

// Delete implements store.MenuItemStore.Delete
func (s *MenuItemStore) Delete(ctx context.Context, id string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return store.ErrMenuItemNotFound
	}

	res, err := s.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		log.Error("failed to delete menu item",
			slog.String("error", err.Error()),
			slog.String("menu_item_id", id))
		return MapError(err, menuItemEntity, "delete", store.ErrMenuItemNotFound)
	}
	if res.DeletedCount == 0 {
		return store.ErrMenuItemNotFound
	}

	log.Info("menu item deleted successfully", slog.String("menu_item_id", id))
	return nil
}

// DeleteByRestaurant implements store.MenuItemStore.DeleteByRestaurant
func (s *MenuItemStore) DeleteByRestaurant(ctx context.Context, restaurantID string) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	oid, err := primitive.ObjectIDFromHex(restaurantID)
	if err != nil {
		return 0, nil
	}

	res, err := s.coll.DeleteMany(ctx, bson.D{{Key: "restaurant_id", Value: oid}})
	if err != nil {
		log.Error("failed to delete menu items of restaurant",
			slog.String("error", err.Error()),
			slog.String("restaurant_id", restaurantID))
		return 0, MapError(err, menuItemEntity, "delete_by_restaurant", store.ErrMenuItemNotFound)
	}

	log.Info("menu items deleted for restaurant",
		slog.String("restaurant_id", restaurantID),
		slog.Int64("deleted", res.DeletedCount))
	return res.DeletedCount, nil
}
