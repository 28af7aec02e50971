package ioc

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/server/egin"
	"github.com/resumatch/resumatch/internal/pkg/middleware"
	"github.com/resumatch/resumatch/internal/resume"
	"github.com/resumatch/resumatch/internal/search"
)

func initGinxServer(resumeHdl *resume.Handler,
	searchHdl *search.Handler) *egin.Component {
	res := egin.Load("web").Build()
	res.Use(cors.New(cors.Config{
		AllowCredentials: true,
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowOriginFunc: func(origin string) bool {
			return strings.HasPrefix(origin, "http://localhost")
		},
	}))
	res.Use(middleware.NewMetricsBuilder().Build())
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})
	resumeHdl.PublicRoutes(res.Engine)
	searchHdl.PublicRoutes(res.Engine)
	return res
}
