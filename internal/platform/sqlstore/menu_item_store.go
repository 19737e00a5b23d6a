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
	menuItemsTable = "menu_items"
	menuItemEntity = "menu_item"
)

// MenuItemStore implements store.MenuItemStore on a SQL database.
type MenuItemStore struct {
	db      store.DBTX
	builder sq.StatementBuilderType
	logger  *slog.Logger
}

// NewMenuItemStore creates a MenuItemStore for the given dialect.
// If logger is nil, a default logger will be used.
func NewMenuItemStore(db store.DBTX, dialect Dialect, logger *slog.Logger) *MenuItemStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &MenuItemStore{
		db:      db,
		builder: dialect.builder(),
		logger:  logger.With(slog.String("component", "menu_item_store")),
	}
}

var _ store.MenuItemStore = (*MenuItemStore)(nil)

// Create implements store.MenuItemStore.Create
func (s *MenuItemStore) Create(ctx context.Context, item *domain.MenuItem) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := item.Validate(); err != nil {
		log.Warn("menu item validation failed during create", slog.String("error", err.Error()))
		return err
	}

	id := uuid.NewString()
	query, args, err := s.builder.Insert(menuItemsTable).
		Columns(menuItemColumns...).
		Values(id, item.RestaurantID, item.Name, item.Description, item.Price, item.Availability).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert query: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		log.Error("failed to create menu item",
			slog.String("error", err.Error()),
			slog.String("restaurant_id", item.RestaurantID))
		return MapError(err, menuItemEntity, "create", store.ErrMenuItemNotFound)
	}

	item.ID = id
	log.Info("menu item created successfully",
		slog.String("menu_item_id", id),
		slog.String("restaurant_id", item.RestaurantID))
	return nil
}

// ListByRestaurant implements store.MenuItemStore.ListByRestaurant
func (s *MenuItemStore) ListByRestaurant(ctx context.Context, restaurantID string) ([]*domain.MenuItem, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query, args, err := s.builder.Select(menuItemColumns...).
		From(menuItemsTable).
		Where(sq.Eq{"restaurant_id": restaurantID}).
		OrderBy("name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to list menu items",
			slog.String("error", err.Error()),
			slog.String("restaurant_id", restaurantID))
		return nil, MapError(err, menuItemEntity, "list", store.ErrMenuItemNotFound)
	}
	defer rows.Close()

	items := []*domain.MenuItem{}
	for rows.Next() {
		item, err := scanMenuItem(rows)
		if err != nil {
			log.Error("failed to scan menu item row", slog.String("error", err.Error()))
			return nil, MapError(err, menuItemEntity, "list", store.ErrMenuItemNotFound)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		log.Error("failed iterating menu item rows", slog.String("error", err.Error()))
		return nil, MapError(err, menuItemEntity, "list", store.ErrMenuItemNotFound)
	}

	return items, nil
}

// GetByID implements store.MenuItemStore.GetByID
func (s *MenuItemStore) GetByID(ctx context.Context, id string) (*domain.MenuItem, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query, args, err := s.builder.Select(menuItemColumns...).
		From(menuItemsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get query: %w", err)
	}

	item, err := scanMenuItem(s.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		mapped := MapError(err, menuItemEntity, "get", store.ErrMenuItemNotFound)
		if !store.IsNotFoundError(mapped) {
			log.Error("failed to get menu item",
				slog.String("error", err.Error()),
				slog.String("menu_item_id", id))
		}
		return nil, mapped
	}
	return item, nil
}

// Update implements store.MenuItemStore.Update
// An empty patch returns the current record unchanged.
func (s *MenuItemStore) Update(ctx context.Context, id string, patch domain.MenuItemPatch) (*domain.MenuItem, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if patch.IsEmpty() {
		return s.GetByID(ctx, id)
	}

	query, args, err := s.builder.Update(menuItemsTable).
		SetMap(menuItemSetMap(patch)).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING id, restaurant_id, name, description, price, availability").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build update query: %w", err)
	}

	item, err := scanMenuItem(s.db.QueryRowContext(ctx, query, args...))
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
	return item, nil
}

// Delete implements store.MenuItemStore.Delete
func (s *MenuItemStore) Delete(ctx context.Context, id string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query, args, err := s.builder.Delete(menuItemsTable).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete query: %w", err)
	}

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to delete menu item",
			slog.String("error", err.Error()),
			slog.String("menu_item_id", id))
		return MapError(err, menuItemEntity, "delete", store.ErrMenuItemNotFound)
	}
	if err := checkRowsAffected(result, store.ErrMenuItemNotFound); err != nil {
		return err
	}

	log.Info("menu item deleted successfully", slog.String("menu_item_id", id))
	return nil
}

// DeleteByRestaurant implements store.MenuItemStore.DeleteByRestaurant
func (s *MenuItemStore) DeleteByRestaurant(ctx context.Context, restaurantID string) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query, args, err := s.builder.Delete(menuItemsTable).
		Where(sq.Eq{"restaurant_id": restaurantID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build delete query: %w", err)
	}

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to delete menu items of restaurant",
			slog.String("error", err.Error()),
			slog.String("restaurant_id", restaurantID))
		return 0, MapError(err, menuItemEntity, "delete_by_restaurant", store.ErrMenuItemNotFound)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return 0, MapError(err, menuItemEntity, "delete_by_restaurant", store.ErrMenuItemNotFound)
	}

	log.Info("menu items deleted for restaurant",
		slog.String("restaurant_id", restaurantID),
		slog.Int64("deleted", n))
	return n, nil
}
