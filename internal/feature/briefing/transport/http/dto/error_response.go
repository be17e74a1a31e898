package dto

// ErrorResponse はエラー時のJSONエンベロープです。405以外のすべてのエラーで使用します。
type ErrorResponse struct {
	Error string `json:"error"`
}
