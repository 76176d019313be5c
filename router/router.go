package router

import (
	"net/http"
	"strings"

	"gitee.com/taoJie_1/shop-advisor/controller"
	"gitee.com/taoJie_1/shop-advisor/global"
	"gitee.com/taoJie_1/shop-advisor/middleware"
	"gitee.com/taoJie_1/shop-advisor/model/common"

	"github.com/gin-gonic/gin"
)

func Start(ginServer *gin.Engine) {
	ginServer.Use(middleware.CorsHandle(), middleware.OptionsMethod) //全局中间件

	ginServer.StaticFile("/robots.txt", global.Config.StaticDir+"/robots.txt")
	ginServer.LoadHTMLGlob(global.Config.StaticDir + "/*.html")
	ginServer.StaticFS("/static", http.Dir(global.Config.StaticDir))

	ginServer.GET("/404.html", func(ctx *gin.Context) {
		ctx.HTML(http.StatusOK, "404.html", gin.H{})
	})

	ginServer.NoRoute(func(ctx *gin.Context) {
		//API路由一律返回JSON, 不返回页面内容
		if strings.HasPrefix(ctx.Request.URL.Path, "/api") {
			common.FailNotFound(ctx)
			return
		}
		//内部重定向
		ctx.Request.URL.Path = "/404.html"
		ginServer.HandleContext(ctx)
	})

	pages := controller.Api.UserApiGroup
	ginServer.GET("/", pages.PageApi.Index)
	ginServer.GET("/recommend", pages.PageApi.Recommend)
	ginServer.GET("/introduction", pages.PageApi.Introduction)
	ginServer.GET("/analysis", pages.AnalysisApi.ShowPage)
	ginServer.POST("/analysis", pages.AnalysisApi.HandleAnalysis)

	api := ginServer.Group("api")
	{
		api.POST("/chat", pages.ChatApi.HandleChat)
		api.POST("/recommend", pages.RecommendApi.HandleRecommend)
	}
}
