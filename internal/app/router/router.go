package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	stockshandler "stocks_api/internal/feature/stocks/transport/handler"
	symbollisthandler "stocks_api/internal/feature/symbollist/transport/handler"
	platformhandler "stocks_api/internal/platform/http/handler"
)

// NewRouter はすべてのルートを登録したgin.Engineを返します。
// 認証は無く、CORSは全オリジンを許可します。
func NewRouter(stocks *stockshandler.StocksHandler, symbol *symbollisthandler.SymbolHandler,
	diagnostics gin.HandlerFunc) *gin.Engine {
	r := gin.Default()
	r.Use(cors.New(corsConfig()))

	// 導通確認用
	r.GET("/", platformhandler.Root)
	r.GET("/healthz", platformhandler.Health)
	r.HEAD("/healthz", platformhandler.Health)
	r.GET("/api/hello", platformhandler.Hello)
	r.GET("/test", diagnostics)

	api := r.Group("/api/stocks")
	{
		api.GET("/popular", symbol.Popular)
		api.GET("/quote", stocks.GetQuote)
		api.GET("/intraday", stocks.GetIntraday)
	}

	return r
}

func corsConfig() cors.Config {
	return cors.Config{
		AllowOriginFunc:  func(string) bool { return true },
		AllowMethods:     []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
}
