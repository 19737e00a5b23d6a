package sqlstore

import (
	"context"
	"fmt"
	"log/slog"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/phrazzld/restaurant-api/internal/domain"
	"github.com/phrazzld/restaurant-api/internal/platform/logger"
	"github.com/phrazzld/restaurant-api/internal/store"
)

const (
	restaurantsTable = "restaurants"
	restaurantEntity = "restaurant"
)

// RestaurantStore implements store.RestaurantStore on a SQL database.
type RestaurantStore struct {
	db      store.DBTX
	builder sq.StatementBuilderType
	logger  *slog.Logger
}

// NewRestaurantStore creates a RestaurantStore for the given dialect.
// If logger is nil, a default logger will be used.
func NewRestaurantStore(db store.DBTX, dialect Dialect, logger *slog.Logger) *RestaurantStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &RestaurantStore{
		db:      db,
		builder: dialect.builder(),
		logger:  logger.With(slog.String("component", "restaurant_store")),
	}
}

var _ store.RestaurantStore = (*RestaurantStore)(nil)

// List implements store.RestaurantStore.List
func (s *RestaurantStore) List(ctx context.Context) ([]*domain.Restaurant, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query, args, err := s.builder.Select(restaurantColumns...).From(restaurantsTable).OrderBy("name").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to list restaurants", slog.String("error", err.Error()))
		return nil, MapError(err, restaurantEntity, "list", store.ErrRestaurantNotFound)
	}
	defer rows.Close()

	restaurants := []*domain.Restaurant{}
	for rows.Next() {
		r, err := scanRestaurant(rows)
		if err != nil {
			log.Error("failed to scan restaurant row", slog.String("error", err.Error()))
			return nil, MapError(err, restaurantEntity, "list", store.ErrRestaurantNotFound)
		}
		restaurants = append(restaurants, r)
	}
	if err := rows.Err(); err != nil {
		log.Error("failed iterating restaurant rows", slog.String("error", err.Error()))
		return nil, MapError(err, restaurantEntity, "list", store.ErrRestaurantNotFound)
	}

	return restaurants, nil
}

// GetByID implements store.RestaurantStore.GetByID
func (s *RestaurantStore) GetByID(ctx context.Context, id string) (*domain.Restaurant, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query, args, err := s.builder.Select(restaurantColumns...).
		From(restaurantsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get query: %w", err)
	}

	r, err := scanRestaurant(s.db.QueryRowContext(ctx, query, args...))
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
	return r, nil
}

// Create implements store.RestaurantStore.Create
func (s *RestaurantStore) Create(ctx context.Context, restaurant *domain.Restaurant) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := restaurant.Validate(); err != nil {
		log.Warn("restaurant validation failed during create", slog.String("error", err.Error()))
		return err
	}

	id := uuid.NewString()
	query, args, err := s.builder.Insert(restaurantsTable).
		Columns(restaurantColumns...).
		Values(id, restaurant.Name, restaurant.Address, restaurant.Hours).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert query: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		log.Error("failed to create restaurant", slog.String("error", err.Error()))
		return MapError(err, restaurantEntity, "create", store.ErrRestaurantNotFound)
	}

	restaurant.ID = id
	log.Info("restaurant created successfully", slog.String("restaurant_id", id))
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

	query, args, err := s.builder.Update(restaurantsTable).
		SetMap(restaurantSetMap(patch)).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING id, name, address, hours").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build update query: %w", err)
	}

	r, err := scanRestaurant(s.db.QueryRowContext(ctx, query, args...))
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
	return r, nil
}

// Delete implements store.RestaurantStore.Delete
func (s *RestaurantStore) Delete(ctx context.Context, id string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query, args, err := s.builder.Delete(restaurantsTable).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete query: %w", err)
	}

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to delete restaurant",
			slog.String("error", err.Error()),
			slog.String("restaurant_id", id))
		return MapError(err, restaurantEntity, "delete", store.ErrRestaurantNotFound)
	}
	if err := checkRowsAffected(result, store.ErrRestaurantNotFound); err != nil {
		return err
	}

	log.Info("restaurant deleted successfully", slog.String("restaurant_id", id))
	return nil
}
