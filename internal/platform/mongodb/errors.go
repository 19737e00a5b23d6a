package mongodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/phrazzld/restaurant-api/internal/store"
	"go.mongodb.org/mongo-driver/mongo"
)

// MapError maps a driver error to a store error for the given entity and
// operation. notFound is returned for mongo.ErrNoDocuments.
func MapError(err error, entity, operation string, notFound error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return notFound
	case mongo.IsDuplicateKeyError(err):
		return store.NewStoreError(entity, operation, "duplicate key",
			fmt.Errorf("%w: %v", store.ErrDuplicate, err))
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return store.NewStoreError(entity, operation, "request cancelled", err)
	case mongo.IsTimeout(err), mongo.IsNetworkError(err):
		return store.NewStoreError(entity, operation, "database unavailable", err)
	default:
		return store.NewStoreError(entity, operation, "database error", err)
	}
}
