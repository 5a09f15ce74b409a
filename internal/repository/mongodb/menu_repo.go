package mongodb

import (
	"context"
	"errors"
	"time"

	"github.com/sisters-restaurant/go-backend/internal/domain"
	"github.com/sisters-restaurant/go-backend/internal/repository/mongodb/converter"
	"github.com/sisters-restaurant/go-backend/pkg/e"
	"github.com/jimlawless/whereami"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const menuItemsCollection = "menuItems"

// MenuRepo реализует репозиторий позиций меню поверх MongoDB.
type MenuRepo struct {
	coll *mongo.Collection
	conv converter.MenuItemConverter
}

func NewMenuRepo(db *mongo.Database, conv converter.MenuItemConverter) *MenuRepo {
	return &MenuRepo{
		coll: db.Collection(menuItemsCollection),
		conv: conv,
	}
}

// Create сохраняет новую позицию и возвращает её с присвоенным идентификатором.
func (m *MenuRepo) Create(ctx context.Context, item *domain.MenuItem) (*domain.MenuItem, error) {
	model := m.conv.ToModel(item)
	model.ID = primitive.NewObjectID()

	now := time.Now().UTC()
	model.CreatedAt = now
	model.UpdatedAt = now

	if _, err := m.coll.InsertOne(ctx, model); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return m.conv.ToEntity(model), nil
}

// GetAll возвращает все позиции от новых к старым.
func (m *MenuRepo) GetAll(ctx context.Context) ([]domain.MenuItem, error) {
	return m.find(ctx, bson.M{})
}

// GetByCategory возвращает позиции одного раздела от новых к старым.
func (m *MenuRepo) GetByCategory(ctx context.Context, category domain.Category) ([]domain.MenuItem, error) {
	return m.find(ctx, bson.M{"category": string(category)})
}

// GetByID возвращает позицию по идентификатору.
// Некорректный или отсутствующий идентификатор — e.ErrItemNotFound.
func (m *MenuRepo) GetByID(ctx context.Context, id string) (*domain.MenuItem, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), e.ErrItemNotFound)
	}

	var model converter.MenuItemModel
	if err := m.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&model); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrItemNotFound)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return m.conv.ToEntity(&model), nil
}

// Update замещает изменяемые поля позиции и возвращает обновлённый документ.
func (m *MenuRepo) Update(ctx context.Context, item *domain.MenuItem) (*domain.MenuItem, error) {
	oid, err := primitive.ObjectIDFromHex(item.ID)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), e.ErrItemNotFound)
	}

	model := m.conv.ToModel(item)
	update := bson.M{"$set": bson.M{
		"name":        model.Name,
		"description": model.Description,
		"price":       model.Price,
		"image":       model.Image,
		"imageId":     model.ImageID,
		"category":    model.Category,
		"updatedAt":   time.Now().UTC(),
	}}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated converter.MenuItemModel
	if err := m.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&updated); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrItemNotFound)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return m.conv.ToEntity(&updated), nil
}

// Delete удаляет позицию по идентификатору.
func (m *MenuRepo) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), e.ErrItemNotFound)
	}

	res, err := m.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if res.DeletedCount == 0 {
		return e.Wrap(whereami.WhereAmI(), e.ErrItemNotFound)
	}

	return nil
}

func (m *MenuRepo) find(ctx context.Context, filter bson.M) ([]domain.MenuItem, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := m.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer cursor.Close(ctx)

	var models []converter.MenuItemModel
	if err := cursor.All(ctx, &models); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return m.conv.ToArrEntity(models), nil
}
