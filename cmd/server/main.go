package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"stocks_api/internal/app/di"
	"stocks_api/internal/app/router"
	"stocks_api/internal/feature/stocks/adapters/yahoo"
	stockshandler "stocks_api/internal/feature/stocks/transport/handler"
	stocksusecase "stocks_api/internal/feature/stocks/usecase"
	symbollistadapters "stocks_api/internal/feature/symbollist/adapters"
	symbollisthandler "stocks_api/internal/feature/symbollist/transport/handler"
	symbollistusecase "stocks_api/internal/feature/symbollist/usecase"
	platformhandler "stocks_api/internal/platform/http/handler"
)

func main() {
	// .envを読み込む
	if err := godotenv.Load(".env"); err != nil {
		slog.Info(".env not found; using system environment variables")
	}

	// Repository
	cfg := yahoo.LoadConfig()
	market := di.NewMarket(cfg)
	symbolRepo := symbollistadapters.NewPopularSymbolRepository()

	// Usecase
	stocksUC := stocksusecase.NewStocksUsecase(market)
	symbolUC := symbollistusecase.NewSymbolUsecase(symbolRepo)

	// Handler
	stocksH := stockshandler.NewStocksHandler(stocksUC)
	symbolH := symbollisthandler.NewSymbolHandler(symbolUC)

	// ルータ生成
	r := router.NewRouter(stocksH, symbolH, platformhandler.NewDiagnostics(os.Getenv))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	slog.Info("starting server", "port", port, "quote_url", cfg.QuoteURL, "chart_url", cfg.ChartURL, "timeout", cfg.Timeout)

	if err := r.Run("0.0.0.0:" + port); err != nil {
		log.Fatal(err)
	}
}
