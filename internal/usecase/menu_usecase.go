package usecase

import (
	"context"
	"time"

	"github.com/sisters-restaurant/go-backend/internal/domain"
	"github.com/sisters-restaurant/go-backend/pkg/e"
	"github.com/sisters-restaurant/go-backend/pkg/logger"
)

// Ключ кэша для полного списка позиций; позиции одного раздела
// кэшируются под ключом самого раздела.
const cacheKeyAll = "all"

// MenuUseCase реализует бизнес-логику управления меню ресторана.
type MenuUseCase struct {
	menuRepo  MenuRepository
	cacheRepo CacheRepository
	images    ImagesInfra
	logger    logger.Logger
}

func NewMenuUC(
	menuRepo MenuRepository,
	cacheRepo CacheRepository,
	images ImagesInfra,
	logger logger.Logger,
) *MenuUseCase {
	return &MenuUseCase{
		menuRepo:  menuRepo,
		cacheRepo: cacheRepo,
		images:    images,
		logger:    logger,
	}
}

// GetMenu возвращает все позиции меню, разложенные по шести разделам.
// Позиции отсортированы от новых к старым.
func (m *MenuUseCase) GetMenu(ctx context.Context) (GroupedMenuRes, error) {
	const op = "MenuUseCase.GetMenu"

	items, err := m.loadItems(ctx, cacheKeyAll, m.menuRepo.GetAll)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return NewGroupedMenuRes(domain.GroupByCategory(items)), nil
}

// GetCategory возвращает позиции одного раздела меню.
func (m *MenuUseCase) GetCategory(ctx context.Context, category string) ([]ItemRes, error) {
	const op = "MenuUseCase.GetCategory"

	c, ok := domain.ParseCategory(category)
	if !ok {
		return nil, e.Wrap(op, e.ErrInvalidCategory)
	}

	items, err := m.loadItems(ctx, category, func(ctx context.Context) ([]domain.MenuItem, error) {
		return m.menuRepo.GetByCategory(ctx, c)
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return NewItemResList(items), nil
}

// CreateItem проверяет и нормализует входные данные и сохраняет новую позицию.
// Простое строковое значение name/description дублируется в обе локали,
// отсутствующее изображение заменяется на placeholder.
func (m *MenuUseCase) CreateItem(ctx context.Context, req *CreateItemReq) (*ItemRes, error) {
	const op = "MenuUseCase.CreateItem"

	if req.Name.Empty() || req.Description.Empty() || !req.Price.Defined() {
		return nil, e.Wrap(op, e.ErrMissingFields)
	}

	category, ok := domain.ParseCategory(req.Category)
	if !ok {
		return nil, e.Wrap(op, e.ErrInvalidCategory)
	}

	if req.Price.Value() < 0 {
		return nil, e.Wrap(op, e.ErrInvalidPrice)
	}

	name, err := req.Name.Normalize()
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	description, err := req.Description.Normalize()
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	// Ключ объекта сохраняется только вместе с изображением: без URL он
	// указывал бы на ресурс, которого позиция не показывает.
	imageID := ""
	if req.Image != "" {
		imageID = req.ImageID
	}

	item := domain.NewMenuItem(name, description, req.Price.Value(), req.Image, imageID, category)

	created, err := m.menuRepo.Create(ctx, item)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	m.invalidateCache(op)

	return NewItemRes(created), nil
}

// UpdateItem применяет частичное обновление позиции.
// Передача category в теле переносит позицию в другой раздел; без неё
// раздел из пути обязан совпадать с сохранённым. Новое изображение
// вытесняет старое: прежний объект хранилища удаляется в фоне,
// неудача удаления логируется и не прерывает обновление.
func (m *MenuUseCase) UpdateItem(ctx context.Context, req *UpdateItemReq) (*ItemRes, error) {
	const op = "MenuUseCase.UpdateItem"

	item, err := m.menuRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if req.NewCategory != "" && req.NewCategory != req.PathCategory {
		category, ok := domain.ParseCategory(req.NewCategory)
		if !ok {
			return nil, e.Wrap(op, e.ErrInvalidCategory)
		}
		m.logger.Infof("moving item %s from %s to %s", item.ID, item.Category, category)
		item.Category = category
	} else if string(item.Category) != req.PathCategory {
		return nil, e.Wrap(op, e.ErrCategoryMismatch)
	}

	if !req.Name.Empty() {
		item.Name = req.Name.MergeInto(item.Name)
	}
	if !req.Description.Empty() {
		item.Description = req.Description.MergeInto(item.Description)
	}

	// Цена 0 — допустимое обновление (бесплатная позиция).
	if req.Price.Defined() {
		if req.Price.Value() < 0 {
			return nil, e.Wrap(op, e.ErrInvalidPrice)
		}
		item.Price = req.Price.Value()
	}

	if req.Image != "" {
		if item.ImageID != "" && req.Image != item.Image {
			m.images.DeleteImage(item.ImageID)
		}
		item.Image = req.Image
		item.ImageID = req.ImageID
	}

	updated, err := m.menuRepo.Update(ctx, item)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	m.invalidateCache(op)

	return NewItemRes(updated), nil
}

// DeleteItem удаляет позицию меню и, при наличии, её изображение в хранилище.
func (m *MenuUseCase) DeleteItem(ctx context.Context, category, id string) error {
	const op = "MenuUseCase.DeleteItem"

	item, err := m.menuRepo.GetByID(ctx, id)
	if err != nil {
		return e.Wrap(op, err)
	}

	if string(item.Category) != category {
		return e.Wrap(op, e.ErrCategoryMismatch)
	}

	if item.ImageID != "" {
		m.images.DeleteImage(item.ImageID)
	}

	if err := m.menuRepo.Delete(ctx, id); err != nil {
		return e.Wrap(op, err)
	}

	m.invalidateCache(op)

	return nil
}

// UploadImage загружает изображение в хранилище и возвращает публичный URL
// вместе с ключом объекта для последующего удаления.
func (m *MenuUseCase) UploadImage(ctx context.Context, req *UploadImageReq) (*UploadImageRes, error) {
	const op = "MenuUseCase.UploadImage"

	if !m.images.Enabled() {
		return nil, e.Wrap(op, e.ErrImageStoreDisabled)
	}

	res, err := m.images.UploadImage(ctx, req)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return res, nil
}

// loadItems читает список позиций из кэша, при промахе — из репозитория
// с фоновым наполнением кэша. Ошибки кэша логируются и не влияют на ответ.
func (m *MenuUseCase) loadItems(ctx context.Context, key string, fetch func(context.Context) ([]domain.MenuItem, error)) ([]domain.MenuItem, error) {
	cached, err := m.cacheRepo.GetMenu(ctx, key)
	if err != nil {
		m.logger.Warnf("menu cache read failed: %v", err)
	}
	if cached != nil {
		return cached, nil
	}

	items, err := fetch(ctx)
	if err != nil {
		return nil, err
	}

	// Фоновое добавление списка в кэш
	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
		defer cancel()

		if err := m.cacheRepo.SetMenu(bgCtx, key, items); err != nil {
			m.logger.Warnf("failed to cache menu in background: %v", err)
		}
	}()

	return items, nil
}

// invalidateCache сбрасывает все ключи меню после записи.
func (m *MenuUseCase) invalidateCache(op string) {
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	if err := m.cacheRepo.InvalidateMenu(ctx); err != nil {
		m.logger.Warnf("failed to invalidate menu cache: %v", e.Wrap(op, err))
	}
}
