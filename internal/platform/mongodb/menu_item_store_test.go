package mongodb

import (
	"context"
	"testing"

	"github.com/phrazzld/restaurant-api/internal/domain"
	"github.com/phrazzld/restaurant-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func menuItemDoc(id, restaurantID primitive.ObjectID, name string, price float64) bson.D {
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "restaurant_id", Value: restaurantID},
		{Key: "name", Value: name},
		{Key: "description", Value: "house special"},
		{Key: "price", Value: price},
		{Key: "availability", Value: true},
	}
}

func TestMenuItemStore(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("create assigns id", func(mt *mtest.T) {
		s := NewMenuItemStore(mt.Coll, nil)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		item := &domain.MenuItem{
			RestaurantID: primitive.NewObjectID().Hex(),
			Name:         "Margherita",
			Description:  "Tomato and mozzarella",
			Price:        9.5,
			Availability: true,
		}
		require.NoError(mt, s.Create(ctx, item))
		assert.Len(mt, item.ID, 24)
	})

	mt.Run("create rejects malformed restaurant id", func(mt *mtest.T) {
		s := NewMenuItemStore(mt.Coll, nil)

		err := s.Create(ctx, &domain.MenuItem{
			RestaurantID: "restaurant-1",
			Name:         "Margherita",
			Description:  "Tomato and mozzarella",
			Price:        9.5,
		})
		assert.ErrorIs(mt, err, domain.ErrInvalidID)
	})

	mt.Run("list by restaurant", func(mt *mtest.T) {
		s := NewMenuItemStore(mt.Coll, nil)
		restaurantID := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "db.menuitems", mtest.FirstBatch,
			menuItemDoc(primitive.NewObjectID(), restaurantID, "Margherita", 9.5),
			menuItemDoc(primitive.NewObjectID(), restaurantID, "Marinara", 7)))

		items, err := s.ListByRestaurant(ctx, restaurantID.Hex())

		require.NoError(mt, err)
		require.Len(mt, items, 2)
		assert.Equal(mt, restaurantID.Hex(), items[0].RestaurantID)
		assert.Equal(mt, 7.0, items[1].Price)
	})

	mt.Run("list with malformed restaurant id is empty", func(mt *mtest.T) {
		s := NewMenuItemStore(mt.Coll, nil)

		items, err := s.ListByRestaurant(ctx, "nope")

		require.NoError(mt, err)
		assert.Empty(mt, items)
	})

	mt.Run("update availability", func(mt *mtest.T) {
		s := NewMenuItemStore(mt.Coll, nil)
		id, restaurantID := primitive.NewObjectID(), primitive.NewObjectID()
		doc := menuItemDoc(id, restaurantID, "Margherita", 9.5)
		doc[5] = bson.E{Key: "availability", Value: false}
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "value", Value: doc}})

		unavailable := false
		item, err := s.Update(ctx, id.Hex(), domain.MenuItemPatch{Availability: &unavailable})

		require.NoError(mt, err)
		assert.False(mt, item.Availability)
		assert.Equal(mt, id.Hex(), item.ID)
	})

	mt.Run("update missing", func(mt *mtest.T) {
		s := NewMenuItemStore(mt.Coll, nil)
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}})

		price := 3.0
		_, err := s.Update(ctx, primitive.NewObjectID().Hex(), domain.MenuItemPatch{Price: &price})
		assert.ErrorIs(mt, err, store.ErrMenuItemNotFound)
	})

	mt.Run("delete missing", func(mt *mtest.T) {
		s := NewMenuItemStore(mt.Coll, nil)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))

		assert.ErrorIs(mt, s.Delete(ctx, primitive.NewObjectID().Hex()), store.ErrMenuItemNotFound)
	})

	mt.Run("delete by restaurant reports count", func(mt *mtest.T) {
		s := NewMenuItemStore(mt.Coll, nil)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 3}))

		n, err := s.DeleteByRestaurant(ctx, primitive.NewObjectID().Hex())

		require.NoError(mt, err)
		assert.EqualValues(mt, 3, n)
	})

	mt.Run("delete by restaurant failure", func(mt *mtest.T) {
		s := NewMenuItemStore(mt.Coll, nil)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code: 2, Name: "BadValue", Message: "boom",
		}))

		_, err := s.DeleteByRestaurant(ctx, primitive.NewObjectID().Hex())

		var storeErr *store.StoreError
		assert.ErrorAs(mt, err, &storeErr)
	})
}
