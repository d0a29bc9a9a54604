package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	"github.com/renuda-project/renuda-backend/internal/api/handlers"
	"github.com/renuda-project/renuda-backend/internal/api/middleware"
	"github.com/renuda-project/renuda-backend/internal/auth"
	"github.com/renuda-project/renuda-backend/internal/catalog"
	"github.com/renuda-project/renuda-backend/internal/database"
)

func main() {
	if os.Getenv("APP_ENV") != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("warning: Error loading .env file (this is fine in production): %v", err)
		}
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("エラー: DATABASE_URL 環境変数が設定されていません。")
	}

	dbService, err := database.NewDatabaseService(databaseURL)
	if err != nil {
		log.Fatalf("エラー: データベースの初期化に失敗しました: %v", err)
	}
	if err := dbService.EnsureSchema(); err != nil {
		log.Fatalf("エラー: スキーマの確認に失敗しました: %v", err)
	}

	settingsRepo := database.NewSettingsRepository(dbService.DB)
	if err := settingsRepo.Seed(); err != nil {
		log.Fatalf("エラー: 管理者設定の初期投入に失敗しました: %v", err)
	}

	textsFile := os.Getenv("TEXTS_FILE")
	if textsFile == "" {
		textsFile = "data/texts.json"
	}
	catalogService := catalog.NewService(textsFile)

	rankingRepo := database.NewRankingRepository(dbService.DB)
	sessionRepo := database.NewSessionRepository(dbService.DB)

	gameHandler := handlers.NewGameHandler(sessionRepo, catalogService)
	rankingHandler := handlers.NewRankingHandler(rankingRepo)
	adminTextHandler := handlers.NewAdminTextHandler(catalogService)
	adminRankingHandler := handlers.NewAdminRankingHandler(rankingRepo)

	gate := auth.NewGateFromEnv()

	r := mux.NewRouter()
	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"message": "ReNU打 API へようこそ！"}`))
	}).Methods("GET")

	// 公開エンドポイント
	r.HandleFunc("/api/game/session", gameHandler.CreateSession).Methods("POST")
	r.HandleFunc("/api/game/texts", gameHandler.GetTexts).Methods("GET")
	r.HandleFunc("/api/rankings", rankingHandler.GetRankings).Methods("GET")
	r.HandleFunc("/api/rankings", rankingHandler.SubmitRanking).Methods("POST")

	// 管理者エンドポイント: PathPrefix以下の全パスにパスワード検証を適用します。
	adminRouter := r.PathPrefix("/api/admin").Subrouter()
	adminRouter.Use(middleware.AdminAuthMiddleware(gate))
	adminRouter.HandleFunc("/texts", adminTextHandler.GetAll).Methods("GET")
	adminRouter.HandleFunc("/texts", adminTextHandler.Create).Methods("POST")
	adminRouter.HandleFunc("/texts/{id}", adminTextHandler.Update).Methods("PUT")
	adminRouter.HandleFunc("/texts/{id}", adminTextHandler.Delete).Methods("DELETE")
	adminRouter.HandleFunc("/rankings", adminRankingHandler.GetAll).Methods("GET")
	adminRouter.HandleFunc("/rankings", adminRankingHandler.DeleteAll).Methods("DELETE")
	adminRouter.HandleFunc("/rankings/{id}", adminRankingHandler.Update).Methods("PUT")
	adminRouter.HandleFunc("/rankings/{id}", adminRankingHandler.Delete).Methods("DELETE")

	handler := middleware.CORSHandler()(middleware.RequestLoggingMiddleware(r))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server starting on :%s", port)
	log.Fatal(http.ListenAndServe(":"+port, handler))
}
