package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"briefing_backend/internal/feature/briefing/adapters/gemini/dto"
	"briefing_backend/internal/feature/briefing/domain"
	"briefing_backend/internal/feature/briefing/usecase"
)

// PersonaAcknowledgment はシステムプロンプトの直後に挿入する固定のmodelターンです。
// ペルソナと出力形式の了解を会話履歴として先に与えておくことで、以降の指示への
// 追従を安定させます。
const PersonaAcknowledgment = "Understood. I will follow the persona and instructions and return the briefing in the specified JSON format."

// Client はGemini generateContent REST APIを呼び出すBriefingGenerator実装です。
type Client struct {
	cfg    Config
	client *http.Client
}

// ClientがBriefingGeneratorを実装していることをコンパイル時に検証します。
var _ usecase.BriefingGenerator = (*Client)(nil)

// NewClient は指定された設定とHTTPクライアントでClientの新しいインスタンスを生成します。
func NewClient(cfg Config, client *http.Client) *Client {
	return &Client{cfg: cfg, client: client}
}

// GenerateBriefing は3ターンの会話（システムプロンプト、了解ターン、指示文）と
// レスポンススキーマを組み立てて上流へ1回だけPOSTし、成功ボディを無加工で返します。
// リトライは行いません。
func (g *Client) GenerateBriefing(ctx context.Context, instruction string) (json.RawMessage, error) {
	payload := dto.GenerateContentRequest{
		Contents: []dto.Content{
			{Role: "user", Parts: []dto.Part{{Text: g.cfg.SystemPrompt}}},
			{Role: "model", Parts: []dto.Part{{Text: PersonaAcknowledgment}}},
			{Role: "user", Parts: []dto.Part{{Text: instruction}}},
		},
		GenerationConfig: dto.GenerationConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   briefingSchema,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal gemini request: %w", err)
	}

	// APIキーはクエリパラメータとして渡す
	q := url.Values{}
	q.Set("key", g.cfg.APIKey)
	u := fmt.Sprintf("%s/v1beta/models/%s:generateContent?%s", g.cfg.BaseURL, g.cfg.Model, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gemini request: %w", err)
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		// 生のエラーボディは診断用にログへ残すのみで、呼び出し元へは返さない。
		errBody, _ := io.ReadAll(res.Body)
		slog.Error("Gemini APIが非成功ステータスを返却",
			"status", res.StatusCode, "body", string(errBody))
		return nil, &domain.UpstreamError{
			StatusCode: res.StatusCode,
			Status:     http.StatusText(res.StatusCode),
		}
	}

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("read gemini response: %w", err)
	}
	if !json.Valid(raw) {
		return nil, fmt.Errorf("gemini response is not valid JSON")
	}
	return json.RawMessage(raw), nil
}
