package images

import (
	"net/http"

	"menu-image-resolver/internal/core/menuimage"
	"menu-image-resolver/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HandleResolve 處理 /images/resolve 單一菜品圖片解析
func (h *Handler) HandleResolve(c *gin.Context) {
	requestID := getRequestID(c)

	var req menuimage.ResolveRequest
	if err := common.DecodeJSONStrict(c.Request.Body, &req); err != nil {
		common.LogWarn("請求格式無效",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		h.writeError(c, common.ErrInvalidRequest.Wrap(err))
		return
	}

	item, err := req.Item.ToItem()
	if err != nil {
		h.writeError(c, err)
		return
	}
	restaurant, err := req.Restaurant.ToRestaurant()
	if err != nil {
		h.writeError(c, err)
		return
	}

	var image *menuimage.ImageResult
	if res, ok := h.resolver.Resolve(item, restaurant); ok {
		image = &res
	}

	common.LogResolution(requestID, item.Name, string(restaurant.Strategy), string(item.Mode), outcomeOf(image))
	h.record(c.Request.Context(), requestID, image)

	c.JSON(http.StatusOK, menuimage.ResolveResponse{Image: image})
}

// HandleResolveBatch 處理 /images/resolve/batch 整份菜單圖片解析
func (h *Handler) HandleResolveBatch(c *gin.Context) {
	requestID := getRequestID(c)

	var req menuimage.BatchResolveRequest
	if err := common.DecodeJSONStrict(c.Request.Body, &req); err != nil {
		common.LogWarn("請求格式無效",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		h.writeError(c, common.ErrInvalidRequest.Wrap(err))
		return
	}

	restaurant, err := req.Restaurant.ToRestaurant()
	if err != nil {
		h.writeError(c, err)
		return
	}

	items := make([]menuimage.Item, len(req.Items))
	for i, r := range req.Items {
		if items[i], err = r.ToItem(); err != nil {
			h.writeError(c, err)
			return
		}
	}

	images := h.resolver.ResolveMenu(items, restaurant)

	common.LogInfo("整份菜單解析完成",
		zap.String("request_id", requestID),
		zap.String("strategy", string(restaurant.Strategy)),
		zap.Int("items", len(items)),
	)
	h.record(c.Request.Context(), requestID, images...)

	c.JSON(http.StatusOK, menuimage.BatchResolveResponse{Images: images})
}
