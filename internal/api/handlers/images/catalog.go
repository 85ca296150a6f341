package images

import (
	"net/http"

	"menu-image-resolver/internal/core/catalog"
	"menu-image-resolver/internal/pkg/common"

	"github.com/gin-gonic/gin"
)

// EntriesResponse 圖庫條目列表
type EntriesResponse struct {
	Style   catalog.Family  `json:"style"`
	Entries []catalog.Entry `json:"entries"`
}

// CategoriesResponse 圖庫分類列表
type CategoriesResponse struct {
	Style      catalog.Family        `json:"style"`
	Categories []catalog.CategoryTag `json:"categories"`
}

// lookupCatalog 依路徑參數 :style 取得圖庫
func (h *Handler) lookupCatalog(c *gin.Context) (*catalog.Catalog, bool) {
	family, ok := catalog.ParseFamily(c.Param("style"))
	if !ok {
		h.writeError(c, common.ErrUnknownCatalog)
		return nil, false
	}
	cat, ok := h.resolver.Catalog(family)
	if !ok {
		h.writeError(c, common.ErrUnknownCatalog)
		return nil, false
	}
	return cat, true
}

func entries(list []catalog.Entry) []catalog.Entry {
	if list == nil {
		return []catalog.Entry{}
	}
	return list
}

// HandleListCatalog 列出圖庫全部條目
func (h *Handler) HandleListCatalog(c *gin.Context) {
	cat, ok := h.lookupCatalog(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, EntriesResponse{Style: cat.Family(), Entries: entries(cat.All())})
}

// HandleSearch 搜尋圖庫條目，查詢參數 q
func (h *Handler) HandleSearch(c *gin.Context) {
	cat, ok := h.lookupCatalog(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, EntriesResponse{Style: cat.Family(), Entries: entries(cat.Search(c.Query("q")))})
}

// HandleCategories 列出圖庫使用的分類
func (h *Handler) HandleCategories(c *gin.Context) {
	cat, ok := h.lookupCatalog(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, CategoriesResponse{Style: cat.Family(), Categories: cat.Categories()})
}

// HandleListByCategory 列出指定分類的條目
func (h *Handler) HandleListByCategory(c *gin.Context) {
	cat, ok := h.lookupCatalog(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, EntriesResponse{
		Style:   cat.Family(),
		Entries: entries(cat.ListByCategory(c.Param("category"))),
	})
}

// HandleEntry 依 id 取得條目
func (h *Handler) HandleEntry(c *gin.Context) {
	cat, ok := h.lookupCatalog(c)
	if !ok {
		return
	}
	entry, ok := cat.ByID(c.Param("id"))
	if !ok {
		h.writeError(c, common.ErrEntryNotFound)
		return
	}
	c.JSON(http.StatusOK, entry)
}

// HandleStats 返回解析結果統計
func (h *Handler) HandleStats(c *gin.Context) {
	if h.recorder == nil {
		h.writeError(c, common.ErrStatsDisabled)
		return
	}
	counts, err := h.recorder.Snapshot(c.Request.Context())
	if err != nil {
		h.writeError(c, common.ErrStatsBackend.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"outcomes": counts})
}
