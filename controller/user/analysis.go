package user

import (
	"net/http"
	"strings"

	"gitee.com/taoJie_1/shop-advisor/global"
	"gitee.com/taoJie_1/shop-advisor/service"
	"github.com/gin-gonic/gin"
)

type AnalysisApi struct{}

// ShowPage 渲染空的评分表单
func (a *AnalysisApi) ShowPage(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "analysis.html", gin.H{"device": ""})
}

// HandleAnalysis 对表单提交的设备名评分并渲染结果
func (a *AnalysisApi) HandleAnalysis(ctx *gin.Context) {
	device := strings.TrimSpace(ctx.PostForm("device"))
	if device == "" {
		ctx.HTML(http.StatusOK, "analysis.html", gin.H{"device": ""})
		return
	}

	scores, answer, err := service.Service.UserServiceGroup.AnalysisService.Analyze(ctx.Request.Context(), device)
	if err != nil {
		global.Log.Errorf("设备评分失败: %v", err)
		ctx.HTML(http.StatusOK, "analysis.html", gin.H{
			"device": device,
			"error":  err.Error(),
		})
		return
	}

	ctx.HTML(http.StatusOK, "analysis.html", gin.H{
		"device":      device,
		"scores":      scores,
		"ai_response": answer,
	})
}
