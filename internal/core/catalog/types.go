package catalog

import "slices"

// ImageRef 圖片引用（URL 或路徑），對引擎而言不透明
type ImageRef string

// CategoryTag 菜單分類標籤
type CategoryTag string

// Family 圖庫風格家族
type Family string

const (
	FamilyIllustrated  Family = "illustrated"
	FamilyPhotographic Family = "photographic"
)

// 分類標籤
const (
	CategoryAppetizer CategoryTag = "appetizer"
	CategorySoup      CategoryTag = "soup"
	CategorySalad     CategoryTag = "salad"
	CategoryMain      CategoryTag = "main"
	CategoryPizza     CategoryTag = "pizza"
	CategoryPasta     CategoryTag = "pasta"
	CategoryBurger    CategoryTag = "burger"
	CategoryGrill     CategoryTag = "grill"
	CategoryFish      CategoryTag = "fish"
	CategoryAsian     CategoryTag = "asian"
	CategorySide      CategoryTag = "side"
	CategoryDessert   CategoryTag = "dessert"
	CategoryBreakfast CategoryTag = "breakfast"
	CategoryDrink     CategoryTag = "drink"
	CategoryCoffee    CategoryTag = "coffee"
)

// ParseFamily 解析圖庫風格名稱
func ParseFamily(s string) (Family, bool) {
	switch Family(Normalize(s)) {
	case FamilyIllustrated:
		return FamilyIllustrated, true
	case FamilyPhotographic, "photo", "professional":
		return FamilyPhotographic, true
	default:
		return "", false
	}
}

// Entry 圖庫條目
type Entry struct {
	ID       string      `json:"id" yaml:"id"`
	Keywords []string    `json:"keywords" yaml:"keywords"`
	Image    ImageRef    `json:"image" yaml:"image"`
	Label    string      `json:"label" yaml:"label"`
	Category CategoryTag `json:"category" yaml:"category"`
}

func (e Entry) clone() Entry {
	e.Keywords = slices.Clone(e.Keywords)
	return e
}
