package http

import (
	"net"
	"net/http"
	"time"
)

// NewHTTPClient は外部API用の HTTP クライアントを生成します。
//
// http.DefaultClient はタイムアウトが無制限のため使わず、接続・ハンドシェイク・
// リクエスト全体それぞれに上限を設けた Transport を明示的に構成します。
// リクエスト全体のタイムアウトは呼び出し元（アダプターの設定）から渡します。
func NewHTTPClient(timeout time.Duration) *http.Client {
	t := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        100,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}
	return &http.Client{Timeout: timeout, Transport: t}
}
