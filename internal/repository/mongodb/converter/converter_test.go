package converter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sisters-restaurant/go-backend/internal/domain"
)

func TestToModel_ImageIDStoredAsNullWhenAbsent(t *testing.T) {
	conv := NewMenuItemConverterImpl()

	model := conv.ToModel(&domain.MenuItem{Category: domain.CategoryGrills})
	assert.Nil(t, model.ImageID)

	model = conv.ToModel(&domain.MenuItem{ImageID: "folder/key.png", Category: domain.CategoryGrills})
	require.NotNil(t, model.ImageID)
	assert.Equal(t, "folder/key.png", *model.ImageID)
}

func TestToEntity_UsesHexObjectID(t *testing.T) {
	conv := NewMenuItemConverterImpl()
	oid := primitive.NewObjectID()

	entity := conv.ToEntity(&MenuItemModel{ID: oid, Category: "desserts"})

	assert.Equal(t, oid.Hex(), entity.ID)
	assert.Equal(t, domain.CategoryDesserts, entity.Category)
	assert.Empty(t, entity.ImageID)
}

func TestToModel_InvalidHexIDLeftZero(t *testing.T) {
	conv := NewMenuItemConverterImpl()

	model := conv.ToModel(&domain.MenuItem{ID: "not-a-hex-id", Category: domain.CategoryGrills})

	assert.True(t, model.ID.IsZero())
}
