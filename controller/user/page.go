package user

import (
	"net/http"

	"gitee.com/taoJie_1/shop-advisor/global"
	"github.com/gin-gonic/gin"
)

type PageApi struct{}

// 主页面, 提供功能导航
func (a *PageApi) Index(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "index.html", gin.H{"title": global.Config.ProjectName})
}

// 产品推荐页面
func (a *PageApi) Recommend(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "recommend.html", gin.H{})
}

// 产品介绍页面
func (a *PageApi) Introduction(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "introduction.html", gin.H{})
}
