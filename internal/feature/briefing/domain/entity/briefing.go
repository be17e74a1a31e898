// Package entity はbriefingフィーチャーのドメインエンティティを定義します。
package entity

import "encoding/json"

// Briefing は1社分の企業インテリジェンスブリーフィングを表します。
// Reportは上流APIが返したJSONをそのまま保持します（リクエストスコープのみ、永続化しない）。
type Briefing struct {
	CompanyName string          // 対象企業名
	Report      json.RawMessage // 上流APIのレスポンスボディ（無加工）
}
