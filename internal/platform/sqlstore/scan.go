package sqlstore

import "github.com/phrazzld/restaurant-api/internal/domain"

var (
	restaurantColumns = []string{"id", "name", "address", "hours"}
	menuItemColumns   = []string{"id", "restaurant_id", "name", "description", "price", "availability"}
)

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanRestaurant(row rowScanner) (*domain.Restaurant, error) {
	var r domain.Restaurant
	if err := row.Scan(&r.ID, &r.Name, &r.Address, &r.Hours); err != nil {
		return nil, err
	}
	return &r, nil
}

func scanMenuItem(row rowScanner) (*domain.MenuItem, error) {
	var m domain.MenuItem
	if err := row.Scan(&m.ID, &m.RestaurantID, &m.Name, &m.Description, &m.Price, &m.Availability); err != nil {
		return nil, err
	}
	return &m, nil
}

func restaurantSetMap(p domain.RestaurantPatch) map[string]any {
	set := make(map[string]any, 3)
	if p.Name != nil {
		set["name"] = *p.Name
	}
	if p.Address != nil {
		set["address"] = *p.Address
	}
	if p.Hours != nil {
		set["hours"] = *p.Hours
	}
	return set
}

func menuItemSetMap(p domain.MenuItemPatch) map[string]any {
	set := make(map[string]any, 4)
	if p.Name != nil {
		set["name"] = *p.Name
	}
	if p.Description != nil {
		set["description"] = *p.Description
	}
	if p.Price != nil {
		set["price"] = *p.Price
	}
	if p.Availability != nil {
		set["availability"] = *p.Availability
	}
	return set
}
