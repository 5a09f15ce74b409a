package usecase

import (
	"context"

	"github.com/sisters-restaurant/go-backend/internal/domain"
)

type MenuRepository interface {
	Create(ctx context.Context, item *domain.MenuItem) (*domain.MenuItem, error)
	GetAll(ctx context.Context) ([]domain.MenuItem, error)
	GetByCategory(ctx context.Context, category domain.Category) ([]domain.MenuItem, error)
	GetByID(ctx context.Context, id string) (*domain.MenuItem, error)
	Update(ctx context.Context, item *domain.MenuItem) (*domain.MenuItem, error)
	Delete(ctx context.Context, id string) error
}

type ImageRepository interface {
	Upload(ctx context.Context, image *domain.Image) (string, error)
	Delete(ctx context.Context, key string) error
	PublicURL(key string) string
}

type CacheRepository interface {
	GetMenu(ctx context.Context, key string) ([]domain.MenuItem, error)
	SetMenu(ctx context.Context, key string, items []domain.MenuItem) error
	InvalidateMenu(ctx context.Context) error
}
