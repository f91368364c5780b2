// Package handler はstocksフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"stocks_api/internal/feature/stocks/domain/entity"
	"stocks_api/internal/feature/stocks/transport/http/dto"
)

// StocksUsecase は相場・時系列取得のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type StocksUsecase interface {
	GetQuote(ctx context.Context, symbol string) (entity.Quote, error)
	GetIntraday(ctx context.Context, symbol, interval string) (entity.IntradaySeries, error)
}

// StocksHandler は相場データのHTTPリクエストを処理します。
type StocksHandler struct {
	uc StocksUsecase
}

// NewStocksHandler は指定されたusecaseでStocksHandlerの新しいインスタンスを生成します。
func NewStocksHandler(uc StocksUsecase) *StocksHandler {
	return &StocksHandler{uc: uc}
}

// GetQuote は銘柄の相場をJSONで返します。
//
// エンドポイント例:
// GET /api/stocks/quote?symbol=AAPL
func (h *StocksHandler) GetQuote(c *gin.Context) {
	symbol, ok := c.GetQuery("symbol")
	if !ok {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Detail: "symbol is required"})
		return
	}

	q, err := h.uc.GetQuote(c.Request.Context(), symbol)
	if err != nil {
		h.fail(c, err, quoteMessages, symbol)
		return
	}
	c.JSON(http.StatusOK, dto.NewQuoteResponse(q))
}

// GetIntraday は銘柄の当日時系列をJSONで返します。
// intervalは未指定の場合5mで、不正な値は上流を呼び出さずに400を返します。
//
// エンドポイント例:
// GET /api/stocks/intraday?symbol=AAPL&interval=5m
func (h *StocksHandler) GetIntraday(c *gin.Context) {
	symbol, ok := c.GetQuery("symbol")
	if !ok {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Detail: "symbol is required"})
		return
	}
	interval := c.DefaultQuery("interval", entity.DefaultInterval.String())

	s, err := h.uc.GetIntraday(c.Request.Context(), symbol, interval)
	if err != nil {
		h.fail(c, err, intradayMessages, symbol)
		return
	}
	c.JSON(http.StatusOK, dto.NewIntradayResponse(s))
}

func (h *StocksHandler) fail(c *gin.Context, err error, msgs errorMessages, symbol string) {
	status, detail := classify(err, msgs)
	attrs := []any{"status", status, "symbol", symbol, "error", err, "remote_addr", c.ClientIP()}
	if status >= http.StatusInternalServerError && status != http.StatusBadGateway {
		slog.Error("stocks request failed", attrs...)
	} else {
		slog.Warn("stocks request failed", attrs...)
	}
	c.JSON(status, dto.ErrorResponse{Detail: detail})
}
