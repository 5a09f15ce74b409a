package converter

import "github.com/sisters-restaurant/go-backend/internal/domain"

// MenuItemConverter преобразует сущности MenuItem между domain и моделью Redis.
type MenuItemConverter interface {
	ToRedisModel(entity *domain.MenuItem) *MenuItemRedisModel
	ToEntity(model *MenuItemRedisModel) *domain.MenuItem
	ToArrRedisModel(entities []domain.MenuItem) []MenuItemRedisModel
	ToArrEntity(models []MenuItemRedisModel) []domain.MenuItem
}

type menuItemConverterImpl struct{}

func NewMenuItemConverterImpl() MenuItemConverter {
	return &menuItemConverterImpl{}
}

func (c *menuItemConverterImpl) ToRedisModel(entity *domain.MenuItem) *MenuItemRedisModel {
	return &MenuItemRedisModel{
		ID:          entity.ID,
		Name:        LocalizedRedisModel{EN: entity.Name.EN, AR: entity.Name.AR},
		Description: LocalizedRedisModel{EN: entity.Description.EN, AR: entity.Description.AR},
		Price:       entity.Price,
		Image:       entity.Image,
		ImageID:     entity.ImageID,
		Category:    string(entity.Category),
		CreatedAt:   entity.CreatedAt,
		UpdatedAt:   entity.UpdatedAt,
	}
}

func (c *menuItemConverterImpl) ToEntity(model *MenuItemRedisModel) *domain.MenuItem {
	return &domain.MenuItem{
		ID:          model.ID,
		Name:        domain.LocalizedText{EN: model.Name.EN, AR: model.Name.AR},
		Description: domain.LocalizedText{EN: model.Description.EN, AR: model.Description.AR},
		Price:       model.Price,
		Image:       model.Image,
		ImageID:     model.ImageID,
		Category:    domain.Category(model.Category),
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}

func (c *menuItemConverterImpl) ToArrRedisModel(entities []domain.MenuItem) []MenuItemRedisModel {
	models := make([]MenuItemRedisModel, 0, len(entities))
	for i := range entities {
		models = append(models, *c.ToRedisModel(&entities[i]))
	}
	return models
}

func (c *menuItemConverterImpl) ToArrEntity(models []MenuItemRedisModel) []domain.MenuItem {
	entities := make([]domain.MenuItem, 0, len(models))
	for i := range models {
		entities = append(entities, *c.ToEntity(&models[i]))
	}
	return entities
}
