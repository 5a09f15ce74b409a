package converter

import "time"

// LocalizedRedisModel — двуязычное поле в кэше.
type LocalizedRedisModel struct {
	EN string `json:"en"`
	AR string `json:"ar"`
}

// MenuItemRedisModel — позиция меню в Redis-кэше.
type MenuItemRedisModel struct {
	ID          string              `json:"id"`
	Name        LocalizedRedisModel `json:"name"`
	Description LocalizedRedisModel `json:"description"`
	Price       int64               `json:"price"`
	Image       string              `json:"image"`
	ImageID     string              `json:"image_id,omitempty"`
	Category    string              `json:"category"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}
