package converter

import (
	"github.com/sisters-restaurant/go-backend/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MenuItemConverter преобразует сущности MenuItem между domain и моделью MongoDB.
type MenuItemConverter interface {
	ToModel(entity *domain.MenuItem) *MenuItemModel
	ToEntity(model *MenuItemModel) *domain.MenuItem
	ToArrEntity(models []MenuItemModel) []domain.MenuItem
}

type menuItemConverterImpl struct{}

func NewMenuItemConverterImpl() MenuItemConverter {
	return &menuItemConverterImpl{}
}

func (c *menuItemConverterImpl) ToModel(entity *domain.MenuItem) *MenuItemModel {
	model := &MenuItemModel{
		Name:        LocalizedModel{EN: entity.Name.EN, AR: entity.Name.AR},
		Description: LocalizedModel{EN: entity.Description.EN, AR: entity.Description.AR},
		Price:       entity.Price,
		Image:       entity.Image,
		Category:    string(entity.Category),
		CreatedAt:   entity.CreatedAt,
		UpdatedAt:   entity.UpdatedAt,
	}

	if entity.ID != "" {
		if oid, err := primitive.ObjectIDFromHex(entity.ID); err == nil {
			model.ID = oid
		}
	}

	// null в документе, когда изображение внешнее или placeholder
	if entity.ImageID != "" {
		imageID := entity.ImageID
		model.ImageID = &imageID
	}

	return model
}

func (c *menuItemConverterImpl) ToEntity(model *MenuItemModel) *domain.MenuItem {
	entity := &domain.MenuItem{
		ID:          model.ID.Hex(),
		Name:        domain.LocalizedText{EN: model.Name.EN, AR: model.Name.AR},
		Description: domain.LocalizedText{EN: model.Description.EN, AR: model.Description.AR},
		Price:       model.Price,
		Image:       model.Image,
		Category:    domain.Category(model.Category),
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}

	if model.ImageID != nil {
		entity.ImageID = *model.ImageID
	}

	return entity
}

func (c *menuItemConverterImpl) ToArrEntity(models []MenuItemModel) []domain.MenuItem {
	entities := make([]domain.MenuItem, 0, len(models))
	for i := range models {
		entities = append(entities, *c.ToEntity(&models[i]))
	}
	return entities
}
