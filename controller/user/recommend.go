package user

import (
	"net/http"

	"gitee.com/taoJie_1/shop-advisor/global"
	"gitee.com/taoJie_1/shop-advisor/model/common"
	"gitee.com/taoJie_1/shop-advisor/model/enum"
	"gitee.com/taoJie_1/shop-advisor/service"
	"github.com/gin-gonic/gin"
)

type RecommendApi struct{}

func (a *RecommendApi) HandleRecommend(ctx *gin.Context) {
	var req common.RecommendRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		global.Log.Errorf("推荐请求数据格式错误: %v", err)
		common.Fail(ctx, http.StatusBadRequest, "请求数据格式错误")
		return
	}
	global.Log.Debugf("收到推荐请求: %+v", req)

	if err := service.Service.UserServiceGroup.Validator.ValidateRecommendRequest(&req); err != nil {
		common.Fail(ctx, http.StatusBadRequest, err.Error())
		return
	}
	productType := enum.NormalizeProductType(req.ProductType)

	result, raw, err := service.Service.UserServiceGroup.RecommendService.Recommend(ctx.Request.Context(), req.Preference, productType)
	if err != nil {
		failFromLlmError(ctx, err)
		return
	}

	// 解析降级时回退为原始文本, 状态码仍为200
	if result == nil {
		common.SuccessMessage(ctx, raw)
		return
	}
	common.SuccessData(ctx, result)
}
