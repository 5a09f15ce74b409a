package usecase

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/sisters-restaurant/go-backend/internal/domain"
	"github.com/sisters-restaurant/go-backend/pkg/e"
)

// MENU USECASE

// LocalizedInput — частичное двуязычное значение из тела запроса.
type LocalizedInput struct {
	EN *string `json:"en"`
	AR *string `json:"ar"`
}

// TextInput — размеченное объединение для текстовых полей API:
// либо простая строка, либо объект {en, ar}.
// Нормализуется в domain.LocalizedText до попадания в бизнес-логику.
type TextInput struct {
	Plain     *string
	Localized *LocalizedInput
}

func (t *TextInput) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		t.Plain = &s
		return nil
	}

	var loc LocalizedInput
	if err := json.Unmarshal(data, &loc); err != nil {
		return e.Wrap("text field must be a string or an {en, ar} object", e.ErrInvalidBody)
	}

	t.Localized = &loc
	return nil
}

// Empty сообщает, что поле не было передано или передано пустым.
func (t TextInput) Empty() bool {
	if t.Plain != nil {
		return strings.TrimSpace(*t.Plain) == ""
	}
	if t.Localized != nil {
		return localeEmpty(t.Localized.EN) && localeEmpty(t.Localized.AR)
	}
	return true
}

// Normalize приводит входное значение к каноническому двуязычному виду.
// Простая строка дублируется в обе локали; объект обязан содержать
// непустые en и ar.
func (t TextInput) Normalize() (domain.LocalizedText, error) {
	if t.Plain != nil {
		return domain.LocalizedText{EN: *t.Plain, AR: *t.Plain}, nil
	}
	if t.Localized != nil {
		if localeEmpty(t.Localized.EN) || localeEmpty(t.Localized.AR) {
			return domain.LocalizedText{}, e.ErrMissingFields
		}
		return domain.LocalizedText{EN: *t.Localized.EN, AR: *t.Localized.AR}, nil
	}
	return domain.LocalizedText{}, e.ErrMissingFields
}

// MergeInto накладывает входное значение на сохранённое: строка заменяет
// обе локали, объект обновляет только переданные непустые локали.
func (t TextInput) MergeInto(current domain.LocalizedText) domain.LocalizedText {
	if t.Plain != nil {
		return domain.LocalizedText{EN: *t.Plain, AR: *t.Plain}
	}
	if t.Localized != nil {
		if !localeEmpty(t.Localized.EN) {
			current.EN = *t.Localized.EN
		}
		if !localeEmpty(t.Localized.AR) {
			current.AR = *t.Localized.AR
		}
	}
	return current
}

func localeEmpty(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}

// PriceInput принимает цену как JSON-число или числовую строку
// и приводит её к целому (дробная часть отбрасывается).
type PriceInput struct {
	value   int64
	defined bool
}

func (p *PriceInput) UnmarshalJSON(data []byte) error {
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return e.Wrap("price must be a number", e.ErrInvalidPrice)
		}
		num = json.Number(strings.TrimSpace(s))
	}

	f, err := num.Float64()
	if err != nil {
		return e.Wrap("price must be a number", e.ErrInvalidPrice)
	}

	p.value = int64(f)
	p.defined = true
	return nil
}

// Defined сообщает, была ли цена передана в запросе (включая 0).
func (p PriceInput) Defined() bool {
	return p.defined
}

func (p PriceInput) Value() int64 {
	return p.value
}

// NewPriceInput — конструктор для тестов и внутренних вызовов.
func NewPriceInput(v int64) PriceInput {
	return PriceInput{value: v, defined: true}
}

// CreateItemReq — запрос на создание позиции меню.
// Category берётся из пути и подставляется слоем доставки.
type CreateItemReq struct {
	Name        TextInput  `json:"name"`
	Description TextInput  `json:"description"`
	Price       PriceInput `json:"price"`
	Image       string     `json:"image"`
	ImageID     string     `json:"imageId"`
	Category    string     `json:"-"`
}

// UpdateItemReq — запрос на частичное обновление позиции меню.
// ID и PathCategory берутся из пути; NewCategory — из тела (поле category).
type UpdateItemReq struct {
	Name         TextInput  `json:"name"`
	Description  TextInput  `json:"description"`
	Price        PriceInput `json:"price"`
	Image        string     `json:"image"`
	ImageID      string     `json:"imageId"`
	NewCategory  string     `json:"category"`
	ID           string     `json:"-"`
	PathCategory string     `json:"-"`
}

// LocalizedRes — двуязычное поле в ответе API.
type LocalizedRes struct {
	EN string `json:"en"`
	AR string `json:"ar"`
}

// ItemRes — DTO позиции меню для внешнего использования.
type ItemRes struct {
	ID          string       `json:"id"`
	Name        LocalizedRes `json:"name"`
	Description LocalizedRes `json:"description"`
	Price       int64        `json:"price"`
	Image       string       `json:"image"`
	ImageID     *string      `json:"imageId"`
	Category    string       `json:"category"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

// GroupedMenuRes — меню, разложенное по шести разделам.
type GroupedMenuRes map[string][]ItemRes

// INFRASTRUCTURE

// UploadImageReq — изображение, загруженное через multipart/form-data.
type UploadImageReq struct {
	Data     []byte // байты изображения
	MimeType string // определённый Content-Type (image/jpeg)
	Size     int64  // фактический размер в байтах
	Name     string // оригинальное имя файла
}

// UploadImageRes — результат загрузки изображения.
type UploadImageRes struct {
	URL string `json:"imageUrl"`
	Key string `json:"imageId"`
}

// MAPPERS

func NewItemRes(item *domain.MenuItem) *ItemRes {
	res := &ItemRes{
		ID:          item.ID,
		Name:        LocalizedRes{EN: item.Name.EN, AR: item.Name.AR},
		Description: LocalizedRes{EN: item.Description.EN, AR: item.Description.AR},
		Price:       item.Price,
		Image:       item.Image,
		Category:    string(item.Category),
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
	if item.ImageID != "" {
		imageID := item.ImageID
		res.ImageID = &imageID
	}
	return res
}

func NewItemResList(items []domain.MenuItem) []ItemRes {
	result := make([]ItemRes, 0, len(items))
	for i := range items {
		result = append(result, *NewItemRes(&items[i]))
	}
	return result
}

func NewGroupedMenuRes(grouped domain.GroupedMenu) GroupedMenuRes {
	result := make(GroupedMenuRes, len(grouped))
	for category, items := range grouped {
		result[string(category)] = NewItemResList(items)
	}
	return result
}

func NewUploadImageReq(data []byte, mimeType string, size int64, name string) *UploadImageReq {
	return &UploadImageReq{
		Data:     data,
		MimeType: mimeType,
		Size:     size,
		Name:     name,
	}
}

func NewUploadImageRes(url, key string) *UploadImageRes {
	return &UploadImageRes{
		URL: url,
		Key: key,
	}
}
