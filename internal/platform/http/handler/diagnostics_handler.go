package handler

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

const (
	flagSet    = "✅ Set"
	flagNotSet = "❌ Not Set"
)

// DiagnosticsResponse は /test のレスポンスです。
// データストアには接続せず、設定値の有無のみを報告します（値そのものは返さない）。
type DiagnosticsResponse struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// NewDiagnostics は環境変数の参照関数を受け取り /test ハンドラーを返します。
// lookupがnilの場合はos.Getenvを使用します。
func NewDiagnostics(lookup func(string) string) gin.HandlerFunc {
	if lookup == nil {
		lookup = os.Getenv
	}
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, DiagnosticsResponse{
			Backend:          "✅ Running",
			Database:         "❌ Not Used",
			DatabaseURL:      presence(lookup("DATABASE_URL")),
			DatabaseName:     presence(lookup("DATABASE_NAME")),
			ConnectionStatus: "Not Connected",
			Collections:      []string{},
		})
	}
}

func presence(v string) string {
	if v == "" {
		return flagNotSet
	}
	return flagSet
}
