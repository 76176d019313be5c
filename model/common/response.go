package common

import (
	"net/http"

	"gitee.com/taoJie_1/shop-advisor/model/enum"
	"github.com/gin-gonic/gin"
)

// 对外API契约: 成功返回业务JSON, 失败返回 {"error": msg} 并携带真实HTTP状态码

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessMessage 返回 {"message": text}
func SuccessMessage(ctx *gin.Context, text string) {
	ctx.JSON(http.StatusOK, MessageResponse{Message: text})
}

// SuccessData 直接返回业务对象
func SuccessData(ctx *gin.Context, data interface{}) {
	ctx.JSON(http.StatusOK, data)
}

func Fail(ctx *gin.Context, status int, message string) {
	ctx.JSON(status, ErrorResponse{Error: message})
}

func FailNotFound(ctx *gin.Context) {
	ctx.JSON(http.StatusNotFound, ErrorResponse{Error: string(enum.DefaultFailMsg)})
}
