package user

import (
	"errors"
	"net/http"

	"gitee.com/taoJie_1/shop-advisor/internal/llm"
	"gitee.com/taoJie_1/shop-advisor/model/common"
	"github.com/gin-gonic/gin"
)

type ApiGroup struct {
	ChatApi      ChatApi
	RecommendApi RecommendApi
	AnalysisApi  AnalysisApi
	PageApi      PageApi
}

// failFromLlmError 把中转层错误映射为HTTP响应:
// 上游非200沿用上游状态码, 其余一律500
func failFromLlmError(ctx *gin.Context, err error) {
	var provErr *llm.ProviderError
	if errors.As(err, &provErr) {
		status := provErr.Status
		if status == 0 {
			status = http.StatusInternalServerError
		}
		common.Fail(ctx, status, provErr.Error())
		return
	}
	common.Fail(ctx, http.StatusInternalServerError, err.Error())
}
