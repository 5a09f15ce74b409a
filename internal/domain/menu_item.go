package domain

import "time"

// PlaceholderImageURL — изображение по умолчанию для позиций без собственного фото.
const PlaceholderImageURL = "https://images.unsplash.com/photo-1546069901-ba9599a7e63c?w=400&h=300&fit=crop"

// LocalizedText — двуязычное текстовое поле (английский и арабский).
type LocalizedText struct {
	EN string
	AR string
}

// MenuItem описывает позицию меню.
type MenuItem struct {
	ID          string
	Name        LocalizedText
	Description LocalizedText
	Price       int64
	Image       string
	ImageID     string // ключ объекта в хранилище изображений; пустой, если изображение внешнее или placeholder
	Category    Category
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewMenuItem(name, description LocalizedText, price int64, image, imageID string, category Category) *MenuItem {
	if image == "" {
		image = PlaceholderImageURL
	}
	return &MenuItem{
		Name:        name,
		Description: description,
		Price:       price,
		Image:       image,
		ImageID:     imageID,
		Category:    category,
	}
}
