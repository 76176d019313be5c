package user

import (
	"net/http"

	"gitee.com/taoJie_1/shop-advisor/global"
	"gitee.com/taoJie_1/shop-advisor/model/common"
	"gitee.com/taoJie_1/shop-advisor/service"
	"github.com/gin-gonic/gin"
)

type ChatApi struct{}

func (a *ChatApi) HandleChat(ctx *gin.Context) {
	var req common.ChatRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		global.Log.Errorf("聊天请求数据格式错误: %v", err)
		common.Fail(ctx, http.StatusBadRequest, "请求数据格式错误")
		return
	}
	global.Log.Debugf("收到聊天请求: %+v", req)

	if err := service.Service.UserServiceGroup.Validator.ValidateChatRequest(&req); err != nil {
		common.Fail(ctx, http.StatusBadRequest, err.Error())
		return
	}

	answer, err := service.Service.UserServiceGroup.LlmService.Chat(ctx.Request.Context(), req.Message, req.SystemPrompt)
	if err != nil {
		failFromLlmError(ctx, err)
		return
	}

	common.SuccessMessage(ctx, answer)
}
