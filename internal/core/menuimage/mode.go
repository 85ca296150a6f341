package menuimage

import "menu-image-resolver/internal/core/catalog"

// ResolveMode 依菜品模式決定是否進入策略解析
func (r *Resolver) ResolveMode(item Item, strategy Strategy) (ImageResult, bool) {
	switch item.Mode {
	case ModeNone:
		return ImageResult{}, false

	case ModeCustom:
		// 上傳尚未完成時可能已標記為 custom
		if catalog.IsBlank(item.CustomURL) {
			return ImageResult{}, false
		}
		return ImageResult{URL: catalog.ImageRef(item.CustomURL), Style: StyleCustom}, true

	case ModeLibrary:
		return r.libraryPick(item.LibraryKey)

	case ModeAuto:
		return r.ResolveByStrategy(item.Name, item.Category, strategy)

	default:
		return ImageResult{}, false
	}
}

// libraryPick 先查插畫圖庫再查攝影圖庫
//
// 圖庫瀏覽介面列出的每個條目（包含佔位條目）都可被選取。
func (r *Resolver) libraryPick(key string) (ImageResult, bool) {
	if catalog.IsBlank(key) {
		return ImageResult{}, false
	}
	for _, c := range []*catalog.Catalog{r.illustrated, r.photographic} {
		if e, ok := c.ByID(key); ok {
			return fromEntry(e, styleOf(c.Family())), true
		}
	}
	return ImageResult{}, false
}
