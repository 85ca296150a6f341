package catalog

import "strings"

// Classify 以最長關鍵字匹配找出菜名對應的條目
//
// 每個條目只計算其最長的匹配關鍵字；長度相同時，宣告順序較前的條目勝出。
// 空白菜名直接返回 false，不掃描圖庫。
func (c *Catalog) Classify(dishName string) (Entry, bool) {
	if IsBlank(dishName) {
		return Entry{}, false
	}
	name := Normalize(dishName)

	best, bestLen := -1, 0
	for i := range c.entries {
		matched := 0
		for _, kw := range c.keywords[i] {
			if kw.length > matched && strings.Contains(name, kw.text) {
				matched = kw.length
			}
		}
		// 嚴格大於：相同長度保留較早的條目
		if matched > bestLen {
			best, bestLen = i, matched
		}
	}

	if best < 0 {
		return Entry{}, false
	}
	return c.entries[best].clone(), true
}

// Classify 對指定圖庫執行分類
func Classify(c *Catalog, dishName string) (Entry, bool) {
	return c.Classify(dishName)
}
