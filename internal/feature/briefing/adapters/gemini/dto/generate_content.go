// Package dto はGemini generateContent REST APIのワイヤーフォーマットを定義します。
package dto

// GenerateContentRequest はgenerateContentエンドポイントへのリクエストボディです。
type GenerateContentRequest struct {
	Contents         []Content        `json:"contents"`
	GenerationConfig GenerationConfig `json:"generationConfig"`
}

// Content は会話の1ターンを表します。
type Content struct {
	Role  string `json:"role"` // "user" または "model"
	Parts []Part `json:"parts"`
}

// Part はターン内のテキスト断片です。
type Part struct {
	Text string `json:"text"`
}

// GenerationConfig は生成パラメータを保持します。
// ResponseSchemaを指定すると構造化JSON出力モードになります。
type GenerationConfig struct {
	ResponseMIMEType string  `json:"responseMimeType"`
	ResponseSchema   *Schema `json:"responseSchema,omitempty"`
}

// Schema はGeminiのレスポンススキーマ記述です（OpenAPIのサブセット）。
type Schema struct {
	Type        string             `json:"type"`
	Description string             `json:"description,omitempty"`
	Properties  map[string]*Schema `json:"properties,omitempty"`
	Items       *Schema            `json:"items,omitempty"`
	Required    []string           `json:"required,omitempty"`
}
