package middleware

import (
	"net/http"
	"time"

	"gitee.com/taoJie_1/shop-advisor/global"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func CorsHandle() gin.HandlerFunc {
	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}
	if len(global.Config.Cors) == 1 && global.Config.Cors[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = global.Config.Cors
	}
	return cors.New(corsConfig)
}

// OptionsMethod 预检请求直接放行
func OptionsMethod(ctx *gin.Context) {
	if ctx.Request.Method == http.MethodOptions {
		ctx.AbortWithStatus(http.StatusNoContent)
		return
	}
	ctx.Next()
}
