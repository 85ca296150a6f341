package catalog

import (
	"errors"
	"fmt"
)

// FallbackRule 分類備用圖規則
type FallbackRule struct {
	Category CategoryTag `yaml:"category"`
	Image    ImageRef    `yaml:"image"`
	Synonyms []string    `yaml:"synonyms"`
}

// Fallbacks 依菜單分類名稱選擇備用圖，只用於攝影風格
type Fallbacks struct {
	defaultImage ImageRef
	images       map[CategoryTag]ImageRef
	synonyms     map[string]CategoryTag
	order        []CategoryTag
}

// NewFallbacks 建立備用圖表，分類標籤本身自動視為同義詞
func NewFallbacks(defaultImage ImageRef, rules []FallbackRule) (*Fallbacks, error) {
	if IsBlank(string(defaultImage)) {
		return nil, errors.New("fallbacks: default image is required")
	}

	f := &Fallbacks{
		defaultImage: defaultImage,
		images:       make(map[CategoryTag]ImageRef, len(rules)),
		synonyms:     make(map[string]CategoryTag),
	}

	for _, rule := range rules {
		tag := CategoryTag(Normalize(string(rule.Category)))
		if tag == "" {
			return nil, errors.New("fallbacks: rule with empty category")
		}
		if IsBlank(string(rule.Image)) {
			return nil, fmt.Errorf("fallbacks: category %q has no image", tag)
		}
		if _, dup := f.images[tag]; dup {
			return nil, fmt.Errorf("fallbacks: category %q declared twice", tag)
		}
		f.images[tag] = rule.Image
		f.order = append(f.order, tag)

		names := append([]string{string(tag)}, rule.Synonyms...)
		for _, name := range names {
			key := Normalize(name)
			if key == "" {
				continue
			}
			if prev, ok := f.synonyms[key]; ok && prev != tag {
				return nil, fmt.Errorf("fallbacks: synonym %q maps to both %q and %q", key, prev, tag)
			}
			f.synonyms[key] = tag
		}
	}

	return f, nil
}

// Lookup 依分類名稱查詢備用圖，第二個返回值表示是否命中
func (f *Fallbacks) Lookup(categoryName string) (ImageRef, bool) {
	tag, ok := f.synonyms[Normalize(categoryName)]
	if !ok {
		return "", false
	}
	return f.images[tag], true
}

// Fallback 返回分類備用圖，未命中或分類為空時返回通用預設圖，永不為空
func (f *Fallbacks) Fallback(categoryName string) ImageRef {
	if img, ok := f.Lookup(categoryName); ok {
		return img
	}
	return f.defaultImage
}

// Default 通用預設圖
func (f *Fallbacks) Default() ImageRef {
	return f.defaultImage
}

// Has 判斷分類標籤是否有對應的備用圖
func (f *Fallbacks) Has(tag CategoryTag) bool {
	_, ok := f.images[tag]
	return ok
}

// Categories 依宣告順序返回有備用圖的分類
func (f *Fallbacks) Categories() []CategoryTag {
	return append([]CategoryTag(nil), f.order...)
}
