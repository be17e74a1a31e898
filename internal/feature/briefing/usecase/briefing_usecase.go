// Package usecase はbriefingフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"briefing_backend/internal/feature/briefing/domain"
	"briefing_backend/internal/feature/briefing/domain/entity"
)

const (
	// BriefingInstructionTemplate はブリーフィング生成指示のプロンプトテンプレートです。
	// 企業名はJSON文字列としてエンコードされるだけなので、ここでのエスケープは不要です。
	BriefingInstructionTemplate = `Generate a comprehensive intelligence briefing for the company: "%s". Follow the persona and instructions to provide detailed, well-sourced information in the specified JSON format.`
)

// BriefingGenerator は指示文からブリーフィングJSONを生成するリポジトリインターフェースです。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type BriefingGenerator interface {
	// GenerateBriefing は指示文を上流APIへ送信し、レスポンスJSONを無加工で返します。
	GenerateBriefing(ctx context.Context, instruction string) (json.RawMessage, error)
}

// briefingUsecase は企業ブリーフィング生成のビジネスロジックを提供します。
type briefingUsecase struct {
	generator BriefingGenerator
}

// NewBriefingUsecase はbriefingUsecaseの新しいインスタンスを生成します。
func NewBriefingUsecase(g BriefingGenerator) *briefingUsecase {
	return &briefingUsecase{generator: g}
}

// ResearchCompany は企業名からインテリジェンスブリーフィングを生成します。
// 上流呼び出しは1回のみで、失敗してもリトライしません（リトライは呼び出し元の責務）。
func (u *briefingUsecase) ResearchCompany(ctx context.Context, companyName string) (*entity.Briefing, error) {
	if companyName == "" {
		return nil, domain.ErrCompanyNameRequired
	}
	instruction := fmt.Sprintf(BriefingInstructionTemplate, companyName)
	report, err := u.generator.GenerateBriefing(ctx, instruction)
	if err != nil {
		return nil, fmt.Errorf("briefing generator failed for %q: %w", companyName, err)
	}
	return &entity.Briefing{
		CompanyName: companyName,
		Report:      report,
	}, nil
}
