package menuimage

import (
	"unicode/utf16"

	"menu-image-resolver/internal/core/catalog"
)

// Selector 混合策略的分支選擇器
//
// 以菜名 UTF-16 編碼單元總和的奇偶決定：奇數為攝影，偶數為插畫。
// 與執行環境無關，同一菜名永遠選同一分支。
func Selector(dishName string) Style {
	var sum uint64
	for _, u := range utf16.Encode([]rune(dishName)) {
		sum += uint64(u)
	}
	if sum%2 == 1 {
		return StylePhotographic
	}
	return StyleIllustrated
}

// ResolveByStrategy 依餐廳策略自動解析菜品圖片
func (r *Resolver) ResolveByStrategy(dishName, categoryName string, strategy Strategy) (ImageResult, bool) {
	if catalog.IsBlank(dishName) {
		return ImageResult{}, false
	}

	switch strategy.canonical() {
	case StrategyIllustrated:
		return r.illustratedMatch(dishName)

	case StrategyPhotographic:
		if res, ok := r.photographicMatch(dishName); ok {
			return res, true
		}
		// 攝影策略不退回插畫圖庫
		return ImageResult{
			URL:   r.fallbacks.Fallback(categoryName),
			Style: StylePhotographic,
			Label: dishName,
		}, true

	case StrategyMixed:
		if Selector(dishName) == StylePhotographic {
			if res, ok := r.photographicMatch(dishName); ok {
				return res, true
			}
		}
		return r.illustratedMatch(dishName)

	default:
		return ImageResult{}, false
	}
}

// illustratedMatch 佔位條目視為未命中
func (r *Resolver) illustratedMatch(dishName string) (ImageResult, bool) {
	e, ok := r.illustrated.Classify(dishName)
	if !ok || r.illustrated.IsPlaceholder(e.ID) {
		return ImageResult{}, false
	}
	return fromEntry(e, StyleIllustrated), true
}

func (r *Resolver) photographicMatch(dishName string) (ImageResult, bool) {
	e, ok := r.photographic.Classify(dishName)
	if !ok || r.photographic.IsPlaceholder(e.ID) {
		return ImageResult{}, false
	}
	return fromEntry(e, StylePhotographic), true
}

func fromEntry(e catalog.Entry, style Style) ImageResult {
	return ImageResult{URL: e.Image, Style: style, Label: e.Label}
}
