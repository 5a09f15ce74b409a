package domain

// Category описывает раздел меню
type Category string

const (
	CategoryAppetizers Category = "appetizers"
	CategoryMainDishes Category = "mainDishes"
	CategoryGrills     Category = "grills"
	CategoryDesserts   Category = "desserts"
	CategoryBeverages  Category = "beverages"
	CategorySandwiches Category = "sandwiches"
)

// Categories перечисляет разделы меню в порядке отображения.
var Categories = []Category{
	CategoryAppetizers,
	CategoryMainDishes,
	CategoryGrills,
	CategoryDesserts,
	CategoryBeverages,
	CategorySandwiches,
}

// ParseCategory проверяет, что строка является одним из шести разделов меню.
func ParseCategory(s string) (Category, bool) {
	for _, c := range Categories {
		if s == string(c) {
			return c, true
		}
	}
	return "", false
}

// GroupedMenu — позиции меню, разложенные по разделам.
type GroupedMenu map[Category][]MenuItem

// GroupByCategory раскладывает позиции по шести фиксированным разделам.
// Все шесть ключей присутствуют всегда; позиции с неизвестным разделом
// молча отбрасываются и никогда не прерывают сборку.
func GroupByCategory(items []MenuItem) GroupedMenu {
	grouped := make(GroupedMenu, len(Categories))
	for _, c := range Categories {
		grouped[c] = []MenuItem{}
	}

	for _, item := range items {
		if _, ok := grouped[item.Category]; ok {
			grouped[item.Category] = append(grouped[item.Category], item)
		}
	}

	return grouped
}
