package main

import (
	"log"

	"briefing_backend/internal/app/router"
	"briefing_backend/internal/feature/briefing/adapters/gemini"
	briefinghandler "briefing_backend/internal/feature/briefing/transport/handler"
	briefingusecase "briefing_backend/internal/feature/briefing/usecase"
	platformhttp "briefing_backend/internal/platform/http"
)

func main() {
	// シークレットはプロセス起動時に一度だけ読み込み、以降は読み取り専用
	cfg := gemini.LoadConfig()

	// 起動は継続し、リクエスト時に500で報告する（開発中の注意喚起）
	if err := cfg.Validate(); err != nil {
		log.Println("[WARN]", err)
	}

	// Adapter
	httpClient := platformhttp.NewHTTPClient(cfg.Timeout)
	generator := gemini.NewClient(cfg, httpClient)

	// Usecase
	briefingUC := briefingusecase.NewBriefingUsecase(generator)

	// Handler
	briefingH := briefinghandler.NewBriefingHandler(cfg, briefingUC)

	// ルータ生成
	r := router.NewRouter(briefingH)

	if err := r.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}
