package middleware

import (
	"eventsite/utils"
	"github.com/gin-gonic/gin"
)

// CheckToken 管理接口需在header中携带有效的access token
func CheckToken() func(ctx *gin.Context) {
	return func(ctx *gin.Context) {
		token := utils.AccessToken{}
		tokenString := ctx.GetHeader(utils.TokenNameInHeader)
		if token.ValidateToken(ctx, tokenString) {
			ctx.Next()
			return
		}
		ctx.AbortWithStatusJSON(200, map[string]interface{}{"code": 100001, "message": "access token无效"})
	}
}
