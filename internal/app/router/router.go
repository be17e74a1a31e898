package router

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	briefinghandler "briefing_backend/internal/feature/briefing/transport/handler"
	platformhandler "briefing_backend/internal/platform/http/handler"
)

func NewRouter(briefing *briefinghandler.BriefingHandler) *gin.Engine {
	r := gin.Default()

	// ブラウザクライアントからの呼び出しを許可
	r.Use(cors.Default())

	// 登録済みパスへの未対応メソッドは404ではなく405で返す
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.String(http.StatusMethodNotAllowed, "Method Not Allowed")
	})

	// 導通確認用（監視系はHEAD/OPTIONSでも叩くため揃えて登録する）
	r.GET("/healthz", platformhandler.Health)
	r.HEAD("/healthz", platformhandler.Health)
	r.OPTIONS("/healthz", platformhandler.Health)

	// 企業インテリジェンスブリーフィング生成（POSTのみ）
	r.POST("/v1/briefings", briefing.Generate)

	return r
}
