package catalog

import (
	"errors"
	"fmt"
)

// Verify 檢查圖庫資料完整性，返回所有違規項目的合併錯誤
//
// 重複 id 已在 New 時拒絕；這裡檢查圖片引用、關鍵字，
// 以及每個條目的分類在 fallbacks 中都有對應（fallbacks 為 nil 時略過）。
func Verify(c *Catalog, fallbacks *Fallbacks) error {
	var errs []error
	for i, e := range c.entries {
		if IsBlank(string(e.Image)) {
			errs = append(errs, fmt.Errorf("%s/%s: empty image reference", c.family, e.ID))
		}
		if IsBlank(e.Label) {
			errs = append(errs, fmt.Errorf("%s/%s: empty label", c.family, e.ID))
		}
		if len(c.keywords[i]) == 0 && i != c.placeholder {
			errs = append(errs, fmt.Errorf("%s/%s: no keywords", c.family, e.ID))
		}
		if len(c.keywords[i]) != len(e.Keywords) {
			errs = append(errs, fmt.Errorf("%s/%s: blank keyword", c.family, e.ID))
		}
		if e.Category == "" {
			errs = append(errs, fmt.Errorf("%s/%s: empty category", c.family, e.ID))
		} else if fallbacks != nil && !fallbacks.Has(e.Category) {
			errs = append(errs, fmt.Errorf("%s/%s: category %q has no fallback image", c.family, e.ID, e.Category))
		}
	}
	return errors.Join(errs...)
}

// VerifyEmbedded 檢查內建的兩個圖庫
func VerifyEmbedded() error {
	fb := PhotographicFallbacks()
	return errors.Join(
		Verify(Illustrated(), fb),
		Verify(Photographic(), fb),
	)
}
