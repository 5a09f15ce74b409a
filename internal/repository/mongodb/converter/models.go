package converter

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LocalizedModel — двуязычное поле документа.
type LocalizedModel struct {
	EN string `bson:"en"`
	AR string `bson:"ar"`
}

// MenuItemModel представляет документ коллекции menuItems в MongoDB.
type MenuItemModel struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        LocalizedModel     `bson:"name"`
	Description LocalizedModel     `bson:"description"`
	Price       int64              `bson:"price"`
	Image       string             `bson:"image"`
	ImageID     *string            `bson:"imageId"`
	Category    string             `bson:"category"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}
