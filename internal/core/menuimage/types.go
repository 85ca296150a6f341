package menuimage

import (
	"fmt"

	"menu-image-resolver/internal/core/catalog"
	"menu-image-resolver/internal/pkg/common"
)

// Strategy 餐廳層級的圖片策略
type Strategy string

const (
	StrategyIllustrated  Strategy = "illustrated"
	StrategyPhotographic Strategy = "photographic"
	// StrategyProfessional 與 StrategyPhotographic 行為相同，保留歷史名稱
	StrategyProfessional Strategy = "professional"
	StrategyMixed        Strategy = "mixed"
	StrategyNone         Strategy = "none"
)

// canonical 將別名收斂為同一個行為分支
func (s Strategy) canonical() Strategy {
	if s == StrategyProfessional {
		return StrategyPhotographic
	}
	return s
}

// Mode 菜品層級的圖片模式
type Mode string

const (
	ModeAuto    Mode = "auto"
	ModeLibrary Mode = "library"
	ModeCustom  Mode = "custom"
	ModeNone    Mode = "none"
)

// Style 解析結果的圖片風格
type Style string

const (
	StyleIllustrated  Style = "illustrated"
	StylePhotographic Style = "photographic"
	StyleCustom       Style = "custom"
	StyleNone         Style = "none"
)

// styleOf 圖庫家族對應的結果風格
func styleOf(f catalog.Family) Style {
	switch f {
	case catalog.FamilyIllustrated:
		return StyleIllustrated
	case catalog.FamilyPhotographic:
		return StylePhotographic
	default:
		return StyleNone
	}
}

// ImageResult 解析出的圖片
type ImageResult struct {
	URL   catalog.ImageRef `json:"url"`
	Style Style            `json:"style"`
	Label string           `json:"label,omitempty"`
}

// Item 菜品的圖片相關欄位
type Item struct {
	Name       string
	Category   string
	Mode       Mode
	CustomURL  string
	LibraryKey string
}

// Restaurant 餐廳的圖片相關設定
type Restaurant struct {
	Strategy          Strategy
	AutoImagesEnabled bool
}

// ParseStrategy 解析策略名稱，空字串為 illustrated
func ParseStrategy(s string) (Strategy, error) {
	switch v := Strategy(catalog.Normalize(s)); v {
	case "":
		return StrategyIllustrated, nil
	case StrategyIllustrated, StrategyPhotographic, StrategyProfessional, StrategyMixed, StrategyNone:
		return v, nil
	default:
		return "", common.NewValidationError(fmt.Sprintf("unknown image strategy %q", s))
	}
}

// ParseMode 解析模式名稱，空字串為 auto
func ParseMode(s string) (Mode, error) {
	switch v := Mode(catalog.Normalize(s)); v {
	case "":
		return ModeAuto, nil
	case ModeAuto, ModeLibrary, ModeCustom, ModeNone:
		return v, nil
	default:
		return "", common.NewValidationError(fmt.Sprintf("unknown image mode %q", s))
	}
}
