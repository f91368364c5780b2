package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"stocks_api/internal/feature/stocks/domain"
	"stocks_api/internal/feature/stocks/domain/entity"
	stockshandler "stocks_api/internal/feature/stocks/transport/handler"
	stocksusecase "stocks_api/internal/feature/stocks/usecase"
	symbollistadapters "stocks_api/internal/feature/symbollist/adapters"
	symbollisthandler "stocks_api/internal/feature/symbollist/transport/handler"
	symbollistusecase "stocks_api/internal/feature/symbollist/usecase"
	platformhandler "stocks_api/internal/platform/http/handler"
)

// notFoundMarket は常に結果無しを返すMarketRepositoryです。
type notFoundMarket struct{}

func (notFoundMarket) GetQuote(ctx context.Context, symbol string) (entity.Quote, error) {
	return entity.Quote{}, domain.ErrNotFound
}

func (notFoundMarket) GetIntraday(ctx context.Context, symbol string, interval entity.Interval) (entity.IntradaySeries, error) {
	return entity.IntradaySeries{}, domain.ErrNotFound
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	stocks := stockshandler.NewStocksHandler(stocksusecase.NewStocksUsecase(notFoundMarket{}))
	symbols := symbollisthandler.NewSymbolHandler(
		symbollistusecase.NewSymbolUsecase(symbollistadapters.NewPopularSymbolRepository()))
	return NewRouter(stocks, symbols, platformhandler.NewDiagnostics(func(string) string { return "" }))
}

func TestNewRouter_Routes(t *testing.T) {
	r := newTestRouter()

	tests := []struct {
		path       string
		wantStatus int
	}{
		{"/", http.StatusOK},
		{"/healthz", http.StatusOK},
		{"/api/hello", http.StatusOK},
		{"/test", http.StatusOK},
		{"/api/stocks/popular", http.StatusOK},
		{"/api/stocks/quote?symbol=ZZZZ", http.StatusNotFound},
		{"/api/stocks/intraday?symbol=ZZZZ", http.StatusNotFound},
		{"/api/stocks/intraday?symbol=AAPL&interval=4h", http.StatusBadRequest},
		{"/api/stocks/unknown", http.StatusNotFound},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestNewRouter_Popular(t *testing.T) {
	w := httptest.NewRecorder()
	newTestRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/stocks/popular", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `["AAPL","MSFT","GOOGL","AMZN","NVDA","META","TSLA","NFLX","AMD","INTC",
		"BRK-B","V","JPM","UNH","PG","XOM","KO","PEP","ADBE","CRM"]`, w.Body.String())
}

func TestNewRouter_CORS(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodOptions, "/api/stocks/quote", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
}
