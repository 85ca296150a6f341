package images

import (
	"context"
	"errors"

	"menu-image-resolver/internal/core/menuimage"
	"menu-image-resolver/internal/core/stats"
	"menu-image-resolver/internal/pkg/common"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler 圖片解析與圖庫瀏覽處理程序
type Handler struct {
	resolver *menuimage.Resolver
	recorder stats.Recorder
	debug    bool
}

// NewHandler 創建處理程序，recorder 為 nil 表示不統計
func NewHandler(resolver *menuimage.Resolver, recorder stats.Recorder, debug bool) *Handler {
	return &Handler{
		resolver: resolver,
		recorder: recorder,
		debug:    debug,
	}
}

// getRequestID 取得請求 ID，requestid 中間件未設置時自行生成
func getRequestID(c *gin.Context) string {
	if id := requestid.Get(c); id != "" {
		return id
	}
	id := common.GenerateUUID()
	c.Header("X-Request-ID", id)
	return id
}

// writeError 寫入錯誤響應；驗證錯誤一律為 400
func (h *Handler) writeError(c *gin.Context, err error) {
	var ce *common.CustomError
	switch {
	case errors.As(err, &ce):
	case common.IsValidationError(err):
		ce = common.ErrInvalidRequest.Wrap(err)
	default:
		ce = common.ErrInternalError.Wrap(err)
	}

	resp := ce.Response(h.debug)
	if common.IsValidationError(err) {
		// 驗證訊息對呼叫端有意義，不受 debug 限制
		resp.Details = err.Error()
	}
	c.AbortWithStatusJSON(ce.Status, resp)
}

// outcomeOf 解析結果對應的統計類型
func outcomeOf(res *menuimage.ImageResult) string {
	if res == nil {
		return stats.OutcomeNone
	}
	switch res.Style {
	case menuimage.StyleIllustrated:
		return stats.OutcomeIllustrated
	case menuimage.StylePhotographic:
		return stats.OutcomePhotographic
	case menuimage.StyleCustom:
		return stats.OutcomeCustom
	default:
		return stats.OutcomeNone
	}
}

// record 統計失敗只記錄警告，不影響回應
func (h *Handler) record(ctx context.Context, requestID string, results ...*menuimage.ImageResult) {
	if h.recorder == nil {
		return
	}
	for _, res := range results {
		if err := h.recorder.Record(ctx, outcomeOf(res)); err != nil {
			common.LogWarn("統計記錄失敗",
				zap.Error(err),
				zap.String("request_id", requestID),
			)
			return
		}
	}
}
