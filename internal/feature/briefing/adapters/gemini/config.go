// Package gemini はGoogle Gemini generateContent REST APIの企業ブリーフィング
// クライアントを提供します。APIキーとシステムプロンプトは環境変数から解決され、
// プロセス起動後は読み取り専用です。
package gemini

import (
	"os"
	"time"

	"briefing_backend/internal/feature/briefing/domain"
)

const (
	// DefaultModel はGemini APIのデフォルトモデルです。
	DefaultModel = "gemini-2.5-flash"
	// DefaultBaseURL はGemini APIのデフォルトエンドポイントです。
	DefaultBaseURL = "https://generativelanguage.googleapis.com"
	// DefaultTimeout はブリーフィング生成1回あたりのHTTPタイムアウトです。
	// 生成には時間がかかるため、通常の外部APIより長めに取ります。
	DefaultTimeout = 60 * time.Second
)

// Config はGemini APIクライアントの設定を保持します。
type Config struct {
	APIKey       string        // 認証用APIキー（クエリパラメータとして送信）
	SystemPrompt string        // 全リクエストの先頭に付与するペルソナ定義プロンプト
	BaseURL      string        // APIのベースURL（テストで差し替え可能）
	Model        string        // 使用するモデル名
	Timeout      time.Duration // HTTPリクエストタイムアウト
}

// LoadConfig は環境変数からGeminiの設定を読み込みます。
// シークレットの欠落はここではエラーにせず、Validateで報告します。
func LoadConfig() Config {
	cfg := Config{
		APIKey:       os.Getenv("GEMINI_API_KEY"),
		SystemPrompt: os.Getenv("BRIEFING_SYSTEM_PROMPT"),
		BaseURL:      os.Getenv("GEMINI_BASE_URL"),
		Model:        DefaultModel,
		Timeout:      DefaultTimeout,
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	return cfg
}

// Validate は必須シークレットが両方揃っているかを検証します。
// エラーメッセージには環境変数名のみを含め、値は決して含めません。
func (c Config) Validate() error {
	if c.APIKey == "" {
		return domain.ErrAPIKeyNotConfigured
	}
	if c.SystemPrompt == "" {
		return domain.ErrSystemPromptNotConfigured
	}
	return nil
}
