package usecase

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sisters-restaurant/go-backend/internal/domain"
	"github.com/sisters-restaurant/go-backend/pkg/e"
)

func TestTextInput_UnmarshalString(t *testing.T) {
	var in TextInput
	require.NoError(t, json.Unmarshal([]byte(`"Hummus"`), &in))

	require.NotNil(t, in.Plain)
	assert.Equal(t, "Hummus", *in.Plain)
	assert.Nil(t, in.Localized)
}

func TestTextInput_UnmarshalObject(t *testing.T) {
	var in TextInput
	require.NoError(t, json.Unmarshal([]byte(`{"en": "Hummus", "ar": "حمص"}`), &in))

	require.NotNil(t, in.Localized)
	assert.Nil(t, in.Plain)
	assert.Equal(t, "Hummus", *in.Localized.EN)
	assert.Equal(t, "حمص", *in.Localized.AR)
}

func TestTextInput_UnmarshalRejectsOtherTypes(t *testing.T) {
	var in TextInput
	err := json.Unmarshal([]byte(`42`), &in)

	require.Error(t, err)
	assert.ErrorIs(t, err, e.ErrInvalidBody)
}

func TestTextInput_Normalize(t *testing.T) {
	en, ar := "Hummus", "حمص"
	onlyEN := LocalizedInput{EN: &en}

	tests := []struct {
		name    string
		in      TextInput
		want    domain.LocalizedText
		wantErr error
	}{
		{
			name: "plain string duplicated to both locales",
			in:   TextInput{Plain: &en},
			want: domain.LocalizedText{EN: "Hummus", AR: "Hummus"},
		},
		{
			name: "full object kept as is",
			in:   TextInput{Localized: &LocalizedInput{EN: &en, AR: &ar}},
			want: domain.LocalizedText{EN: "Hummus", AR: "حمص"},
		},
		{
			name:    "partial object rejected",
			in:      TextInput{Localized: &onlyEN},
			wantErr: e.ErrMissingFields,
		},
		{
			name:    "absent value rejected",
			in:      TextInput{},
			wantErr: e.ErrMissingFields,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.in.Normalize()
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestTextInput_MergeInto(t *testing.T) {
	current := domain.LocalizedText{EN: "Old", AR: "قديم"}
	newEN := "New"
	newAR := "جديد"

	t.Run("plain string replaces both locales", func(t *testing.T) {
		got := TextInput{Plain: &newEN}.MergeInto(current)
		assert.Equal(t, domain.LocalizedText{EN: "New", AR: "New"}, got)
	})

	t.Run("partial object updates only provided locale", func(t *testing.T) {
		got := TextInput{Localized: &LocalizedInput{AR: &newAR}}.MergeInto(current)
		assert.Equal(t, domain.LocalizedText{EN: "Old", AR: "جديد"}, got)
	})

	t.Run("empty input keeps current value", func(t *testing.T) {
		got := TextInput{}.MergeInto(current)
		assert.Equal(t, current, got)
	})
}

func TestTextInput_Empty(t *testing.T) {
	blank := "   "
	filled := "x"

	assert.True(t, TextInput{}.Empty())
	assert.True(t, TextInput{Plain: &blank}.Empty())
	assert.True(t, TextInput{Localized: &LocalizedInput{}}.Empty())
	assert.False(t, TextInput{Plain: &filled}.Empty())
	assert.False(t, TextInput{Localized: &LocalizedInput{AR: &filled}}.Empty())
}

func TestPriceInput_Unmarshal(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    int64
		wantErr bool
	}{
		{"integer", `12`, 12, false},
		{"zero", `0`, 0, false},
		{"fraction truncated", `9.99`, 9, false},
		{"numeric string", `"15"`, 15, false},
		{"numeric string with spaces", `" 15 "`, 15, false},
		{"non-numeric string", `"abc"`, 0, true},
		{"boolean", `true`, 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var p PriceInput
			err := json.Unmarshal([]byte(tc.payload), &p)
			if tc.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, e.ErrInvalidPrice)
				return
			}
			require.NoError(t, err)
			assert.True(t, p.Defined())
			assert.Equal(t, tc.want, p.Value())
		})
	}
}

func TestPriceInput_UndefinedWhenAbsent(t *testing.T) {
	var req UpdateItemReq
	require.NoError(t, json.Unmarshal([]byte(`{"image": "x"}`), &req))

	assert.False(t, req.Price.Defined())
}

func TestNewItemRes_ImageIDSerialization(t *testing.T) {
	t.Run("null for items without stored image", func(t *testing.T) {
		res := NewItemRes(&domain.MenuItem{ID: "1", Category: domain.CategoryGrills})

		data, err := json.Marshal(res)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"imageId":null`)
	})

	t.Run("object key for stored images", func(t *testing.T) {
		res := NewItemRes(&domain.MenuItem{ID: "1", ImageID: "folder/pic-1.jpg", Category: domain.CategoryGrills})

		require.NotNil(t, res.ImageID)
		assert.Equal(t, "folder/pic-1.jpg", *res.ImageID)
	})
}

func TestNewGroupedMenuRes_UsesStringKeys(t *testing.T) {
	grouped := domain.GroupByCategory([]domain.MenuItem{{ID: "1", Category: domain.CategorySandwiches}})

	res := NewGroupedMenuRes(grouped)

	require.Len(t, res, len(domain.Categories))
	assert.Len(t, res["sandwiches"], 1)
	assert.Empty(t, res["grills"])
}
