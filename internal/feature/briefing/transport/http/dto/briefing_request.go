// Package dto はbriefingフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

// BriefingRequest は/v1/briefingsエンドポイントのリクエストボディを表します。
// binding:"required" は使わず、ハンドラー側でJSON構文エラーとフィールド欠落を
// 区別して判定します（両者でステータスコードが異なるため）。
type BriefingRequest struct {
	CompanyName string `json:"companyName"`
}
