// Package upstream は上流の金融データサービスへの単発GETを行うクライアントを提供します。
package upstream

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
)

// HTTPClient describes an HTTP client.
//
//go:generate mockgen -package=upstream -destination=mock_http_client_test.go -source=client.go HTTPClient
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client はGETリクエストを1回だけ実行し、デコード済みJSONを返します。
// リトライは行いません。
type Client struct {
	httpClient HTTPClient
}

// NewClient は指定されたHTTPクライアントでClientを生成します。
// タイムアウトはhttpClient側で設定されている前提です。
func NewClient(httpClient HTTPClient) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{httpClient: httpClient}
}

// GetJSON はrawURLにparamsを付与してGETし、ボディをJSONとしてデコードします。
// 戻り値はmap[string]any / []any などの未型付けドキュメントです。
//
// 失敗時は*Errorを返します:
//   - 接続・タイムアウトエラー → KindUnreachable
//   - ステータス ≠ 200 → KindBadStatus
//   - JSONとして不正 → KindMalformed
func (c *Client) GetJSON(ctx context.Context, rawURL string, params url.Values) (any, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, &Error{Kind: KindUnreachable, Err: err}
	}
	if len(params) > 0 {
		q := u.Query()
		for k, vs := range params {
			for _, v := range vs {
				q.Add(k, v)
			}
		}
		u.RawQuery = q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, &Error{Kind: KindUnreachable, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &Error{Kind: KindUnreachable, Err: err}
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode != http.StatusOK {
		// ボディの内容に関わらず失敗扱い
		_, _ = io.Copy(io.Discard, res.Body)
		return nil, &Error{Kind: KindBadStatus, Status: res.StatusCode}
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, &Error{Kind: KindUnreachable, Err: err}
	}
	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, &Error{Kind: KindMalformed, Err: err}
	}
	return doc, nil
}
