// Package handler はbriefingフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"briefing_backend/internal/feature/briefing/domain"
	"briefing_backend/internal/feature/briefing/domain/entity"
	"briefing_backend/internal/feature/briefing/transport/http/dto"
)

// BriefingUsecase は企業ブリーフィング生成のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type BriefingUsecase interface {
	ResearchCompany(ctx context.Context, companyName string) (*entity.Briefing, error)
}

// ConfigChecker は上流呼び出しに必要なシークレットが揃っているかを報告します。
type ConfigChecker interface {
	Validate() error
}

// BriefingHandler は企業ブリーフィング生成のHTTPリクエストを処理します。
type BriefingHandler struct {
	cfg ConfigChecker
	uc  BriefingUsecase
}

// NewBriefingHandler はBriefingHandlerの新しいインスタンスを生成します。
func NewBriefingHandler(cfg ConfigChecker, uc BriefingUsecase) *BriefingHandler {
	return &BriefingHandler{cfg: cfg, uc: uc}
}

// Generate は企業インテリジェンスブリーフィングを生成します。
//
// エンドポイント: POST /v1/briefings
// Content-Type: application/json
//
// 設定チェックはボディ解析より先に行います。リクエスト内容に関係なく
// 設定不備は一律500で報告されるためです。JSON構文エラーは汎用の500経路へ、
// 正しいJSONでcompanyNameだけが欠けている場合は400へ振り分けます。
func (h *BriefingHandler) Generate(c *gin.Context) {
	if err := h.cfg.Validate(); err != nil {
		slog.Error("サーバー設定が不完全", "error", err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		return
	}

	var req dto.BriefingRequest
	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		slog.Error("リクエストボディのデコードに失敗", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if req.CompanyName == "" {
		slog.Warn("companyNameが未指定", "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: domain.ErrCompanyNameRequired.Error()})
		return
	}

	briefing, err := h.uc.ResearchCompany(c.Request.Context(), req.CompanyName)
	if err != nil {
		var upstream *domain.UpstreamError
		if errors.As(err, &upstream) {
			// 上流のステータスコードをそのまま伝播する。生のエラーボディは
			// アダプター側でログ済みであり、クライアントへは返さない。
			slog.Error("Gemini APIがエラーを返却", "status", upstream.StatusCode, "company", req.CompanyName)
			c.JSON(upstream.StatusCode, dto.ErrorResponse{Error: upstream.Error()})
			return
		}
		slog.Error("ブリーフィング生成に失敗", "error", err, "company", req.CompanyName)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		return
	}

	// 上流の成功ボディをバイト列のまま返す（再整形しない）。
	c.Data(http.StatusOK, "application/json", briefing.Report)
}
