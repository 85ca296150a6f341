package catalog

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Catalog 不可變的圖庫，建立後不再新增、刪除或修改條目
type Catalog struct {
	family      Family
	entries     []Entry
	keywords    [][]keyword
	index       map[string]int
	placeholder int
}

// keyword 預先正規化的關鍵字
type keyword struct {
	text   string
	length int
}

// New 建立圖庫，entries 的順序即為迭代順序
//
// placeholderID 為空表示沒有佔位條目。
func New(family Family, entries []Entry, placeholderID string) (*Catalog, error) {
	c := &Catalog{
		family:      family,
		entries:     make([]Entry, 0, len(entries)),
		keywords:    make([][]keyword, 0, len(entries)),
		index:       make(map[string]int, len(entries)),
		placeholder: -1,
	}

	for i, e := range entries {
		if IsBlank(e.ID) {
			return nil, fmt.Errorf("%s catalog: entry %d has an empty id", family, i)
		}
		if _, dup := c.index[e.ID]; dup {
			return nil, fmt.Errorf("%s catalog: duplicate entry id %q", family, e.ID)
		}

		e = e.clone()
		e.Category = CategoryTag(Normalize(string(e.Category)))

		kws := make([]keyword, 0, len(e.Keywords))
		for _, raw := range e.Keywords {
			text := Normalize(raw)
			if text == "" {
				continue
			}
			kws = append(kws, keyword{text: text, length: utf8.RuneCountInString(text)})
		}

		c.index[e.ID] = len(c.entries)
		c.entries = append(c.entries, e)
		c.keywords = append(c.keywords, kws)
	}

	if placeholderID != "" {
		i, ok := c.index[placeholderID]
		if !ok {
			return nil, fmt.Errorf("%s catalog: placeholder %q is not an entry", family, placeholderID)
		}
		c.placeholder = i
	}

	return c, nil
}

// Family 返回圖庫風格
func (c *Catalog) Family() Family {
	return c.family
}

// Len 返回條目數量
func (c *Catalog) Len() int {
	return len(c.entries)
}

// ByID 依 id 查詢條目
func (c *Catalog) ByID(id string) (Entry, bool) {
	i, ok := c.index[id]
	if !ok {
		return Entry{}, false
	}
	return c.entries[i].clone(), true
}

// All 依宣告順序返回全部條目
func (c *Catalog) All() []Entry {
	out := make([]Entry, len(c.entries))
	for i, e := range c.entries {
		out[i] = e.clone()
	}
	return out
}

// Placeholder 返回佔位條目（若有）
func (c *Catalog) Placeholder() (Entry, bool) {
	if c.placeholder < 0 {
		return Entry{}, false
	}
	return c.entries[c.placeholder].clone(), true
}

// IsPlaceholder 判斷 id 是否為佔位條目
func (c *Catalog) IsPlaceholder(id string) bool {
	return c.placeholder >= 0 && c.entries[c.placeholder].ID == id
}

// Categories 依首次出現順序返回使用到的分類
func (c *Catalog) Categories() []CategoryTag {
	seen := make(map[CategoryTag]bool)
	var out []CategoryTag
	for _, e := range c.entries {
		if !seen[e.Category] {
			seen[e.Category] = true
			out = append(out, e.Category)
		}
	}
	return out
}

// ListByCategory 返回指定分類的條目
func (c *Catalog) ListByCategory(category string) []Entry {
	tag := CategoryTag(Normalize(category))
	var out []Entry
	for _, e := range c.entries {
		if e.Category == tag {
			out = append(out, e.clone())
		}
	}
	return out
}

// Search 搜尋條目，依序為：標籤完全相符、關鍵字包含查詢字串、查詢字串包含關鍵字
//
// 每個條目只出現一次，同一層級內保持宣告順序；空白查詢返回全部條目。
func (c *Catalog) Search(query string) []Entry {
	q := Normalize(query)
	if q == "" {
		return c.All()
	}

	tiers := make([][]Entry, 3)
	for i, e := range c.entries {
		switch {
		case Normalize(e.Label) == q:
			tiers[0] = append(tiers[0], e.clone())
		case c.anyKeyword(i, func(kw string) bool { return strings.Contains(kw, q) }):
			tiers[1] = append(tiers[1], e.clone())
		case c.anyKeyword(i, func(kw string) bool { return strings.Contains(q, kw) }):
			tiers[2] = append(tiers[2], e.clone())
		}
	}

	out := make([]Entry, 0, len(tiers[0])+len(tiers[1])+len(tiers[2]))
	for _, tier := range tiers {
		out = append(out, tier...)
	}
	return out
}

func (c *Catalog) anyKeyword(i int, match func(string) bool) bool {
	for _, kw := range c.keywords[i] {
		if match(kw.text) {
			return true
		}
	}
	return false
}
