// Package domain defines domain-level errors for the briefing feature.
package domain

import (
	"errors"
	"fmt"
)

// Domain errors for briefing operations.
// These errors represent business logic failures and should be handled appropriately by upper layers.
var (
	// ErrCompanyNameRequired indicates that the request did not carry a company name.
	// The message doubles as the client-facing error body.
	ErrCompanyNameRequired = errors.New("companyName is required")

	// ErrAPIKeyNotConfigured indicates that the Gemini API key is not set in the environment.
	// The secret value itself must never appear in any error or log.
	ErrAPIKeyNotConfigured = errors.New("server configuration error: GEMINI_API_KEY is not set")

	// ErrSystemPromptNotConfigured indicates that the briefing system prompt is not set in the environment.
	ErrSystemPromptNotConfigured = errors.New("server configuration error: BRIEFING_SYSTEM_PROMPT is not set")
)

// UpstreamError は上流のGemini APIが非成功ステータスを返したことを表します。
// StatusCodeはそのまま呼び出し元へ伝播され、Statusは汎用のステータス文言のみを
// 保持します（上流のエラーボディは含めない）。
type UpstreamError struct {
	StatusCode int    // 上流が返したHTTPステータスコード
	Status     string // ステータスコードに対応する文言（例: "Too Many Requests"）
}

// Error はクライアントへ返却可能な翻訳済みメッセージを返します。
func (e *UpstreamError) Error() string {
	return fmt.Sprintf("Gemini API request failed: %s", e.Status)
}
