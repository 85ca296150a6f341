package catalog

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var dataFS embed.FS

// document 圖庫資料檔格式
type document struct {
	Style       string        `yaml:"style"`
	Placeholder string        `yaml:"placeholder"`
	Entries     []Entry       `yaml:"entries"`
	Fallbacks   *fallbackData `yaml:"fallbacks"`
}

type fallbackData struct {
	Default    ImageRef       `yaml:"default"`
	Categories []FallbackRule `yaml:"categories"`
}

// Load 從 YAML 讀取圖庫，文件沒有 fallbacks 區段時第二個返回值為 nil
func Load(r io.Reader) (*Catalog, *Fallbacks, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		return nil, nil, fmt.Errorf("failed to decode catalog: %w", err)
	}

	family, ok := ParseFamily(doc.Style)
	if !ok {
		return nil, nil, fmt.Errorf("unknown catalog style %q", doc.Style)
	}

	c, err := New(family, doc.Entries, doc.Placeholder)
	if err != nil {
		return nil, nil, err
	}

	if doc.Fallbacks == nil {
		return c, nil, nil
	}
	fb, err := NewFallbacks(doc.Fallbacks.Default, doc.Fallbacks.Categories)
	if err != nil {
		return nil, nil, fmt.Errorf("%s catalog: %w", family, err)
	}
	return c, fb, nil
}

var (
	loadOnce           sync.Once
	illustrated        *Catalog
	photographic       *Catalog
	photographicFbacks *Fallbacks
)

func loadEmbedded() {
	loadOnce.Do(func() {
		illustrated, _ = mustLoad("data/illustrated.yaml")
		photographic, photographicFbacks = mustLoad("data/photographic.yaml")
		if photographicFbacks == nil {
			panic("catalog: photographic data has no fallbacks")
		}
	})
}

// 內嵌資料等同編譯期資料，解析失敗視為建置錯誤
func mustLoad(name string) (*Catalog, *Fallbacks) {
	raw, err := dataFS.ReadFile(name)
	if err != nil {
		panic(fmt.Sprintf("catalog: %s: %v", name, err))
	}
	c, fb, err := Load(bytes.NewReader(raw))
	if err != nil {
		panic(fmt.Sprintf("catalog: %s: %v", name, err))
	}
	return c, fb
}

// Illustrated 內建插畫圖庫
func Illustrated() *Catalog {
	loadEmbedded()
	return illustrated
}

// Photographic 內建攝影圖庫
func Photographic() *Catalog {
	loadEmbedded()
	return photographic
}

// PhotographicFallbacks 內建攝影分類備用圖表
func PhotographicFallbacks() *Fallbacks {
	loadEmbedded()
	return photographicFbacks
}
