package mongodb

import (
	"github.com/phrazzld/restaurant-api/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type restaurantDocument struct {
	ID      primitive.ObjectID `bson:"_id,omitempty"`
	Name    string             `bson:"name"`
	Address string             `bson:"address"`
	Hours   string             `bson:"hours"`
}

func (d *restaurantDocument) toDomain() *domain.Restaurant {
	return &domain.Restaurant{
		ID:      d.ID.Hex(),
		Name:    d.Name,
		Address: d.Address,
		Hours:   d.Hours,
	}
}

type menuItemDocument struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	RestaurantID primitive.ObjectID `bson:"restaurant_id"`
	Name         string             `bson:"name"`
	Description  string             `bson:"description"`
	Price        float64            `bson:"price"`
	Availability bool               `bson:"availability"`
}

func (d *menuItemDocument) toDomain() *domain.MenuItem {
	return &domain.MenuItem{
		ID:           d.ID.Hex(),
		RestaurantID: d.RestaurantID.Hex(),
		Name:         d.Name,
		Description:  d.Description,
		Price:        d.Price,
		Availability: d.Availability,
	}
}

// restaurantSet builds the $set document for a patch.
func restaurantSet(p domain.RestaurantPatch) bson.D {
	set := bson.D{}
	if p.Name != nil {
		set = append(set, bson.E{Key: "name", Value: *p.Name})
	}
	if p.Address != nil {
		set = append(set, bson.E{Key: "address", Value: *p.Address})
	}
	if p.Hours != nil {
		set = append(set, bson.E{Key: "hours", Value: *p.Hours})
	}
	return set
}

// menuItemSet builds the $set document for a patch.
func menuItemSet(p domain.MenuItemPatch) bson.D {
	set := bson.D{}
	if p.Name != nil {
		set = append(set, bson.E{Key: "name", Value: *p.Name})
	}
	if p.Description != nil {
		set = append(set, bson.E{Key: "description", Value: *p.Description})
	}
	if p.Price != nil {
		set = append(set, bson.E{Key: "price", Value: *p.Price})
	}
	if p.Availability != nil {
		set = append(set, bson.E{Key: "availability", Value: *p.Availability})
	}
	return set
}
