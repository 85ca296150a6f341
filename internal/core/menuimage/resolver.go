package menuimage

import (
	"errors"
	"sync"

	"menu-image-resolver/internal/core/catalog"
)

// Resolver 菜品圖片解析器
//
// 只持有唯讀圖庫，沒有可變狀態，可在任意數量的 goroutine 中同時使用。
type Resolver struct {
	illustrated  *catalog.Catalog
	photographic *catalog.Catalog
	fallbacks    *catalog.Fallbacks
}

// NewResolver 創建解析器
func NewResolver(illustrated, photographic *catalog.Catalog, fallbacks *catalog.Fallbacks) *Resolver {
	return &Resolver{
		illustrated:  illustrated,
		photographic: photographic,
		fallbacks:    fallbacks,
	}
}

var (
	defaultOnce     sync.Once
	defaultResolver *Resolver
)

// Default 使用內建圖庫的解析器
func Default() *Resolver {
	defaultOnce.Do(func() {
		defaultResolver = NewResolver(
			catalog.Illustrated(),
			catalog.Photographic(),
			catalog.PhotographicFallbacks(),
		)
	})
	return defaultResolver
}

// Illustrated 插畫圖庫
func (r *Resolver) Illustrated() *catalog.Catalog {
	return r.illustrated
}

// Photographic 攝影圖庫
func (r *Resolver) Photographic() *catalog.Catalog {
	return r.photographic
}

// Fallbacks 攝影分類備用圖表
func (r *Resolver) Fallbacks() *catalog.Fallbacks {
	return r.fallbacks
}

// Verify 檢查解析器持有的圖庫與備用圖表
func (r *Resolver) Verify() error {
	if r.illustrated == nil || r.photographic == nil || r.fallbacks == nil {
		return errors.New("resolver: catalogs and fallbacks are required")
	}
	return errors.Join(
		catalog.Verify(r.illustrated, r.fallbacks),
		catalog.Verify(r.photographic, r.fallbacks),
	)
}

// Catalog 依風格家族返回圖庫
func (r *Resolver) Catalog(f catalog.Family) (*catalog.Catalog, bool) {
	switch f {
	case catalog.FamilyIllustrated:
		return r.illustrated, true
	case catalog.FamilyPhotographic:
		return r.photographic, true
	default:
		return nil, false
	}
}

// Resolve 解析單一菜品的圖片，第二個返回值為 false 表示沒有圖片
//
// 自動圖片開關關閉時，只有 custom 模式的圖片仍會顯示。
func (r *Resolver) Resolve(item Item, restaurant Restaurant) (ImageResult, bool) {
	if !restaurant.AutoImagesEnabled && item.Mode != ModeCustom {
		return ImageResult{}, false
	}
	return r.ResolveMode(item, restaurant.Strategy)
}

// ResolveMenu 依序解析整份菜單，沒有圖片的位置為 nil
func (r *Resolver) ResolveMenu(items []Item, restaurant Restaurant) []*ImageResult {
	out := make([]*ImageResult, len(items))
	for i, item := range items {
		if res, ok := r.Resolve(item, restaurant); ok {
			out[i] = &res
		}
	}
	return out
}
