package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/teamMongle/Mongle-Server/cmd/app"
	"github.com/teamMongle/Mongle-Server/internal/config"
	handlers "github.com/teamMongle/Mongle-Server/internal/handler"
	"github.com/teamMongle/Mongle-Server/internal/middleware"
)

func main() {
	cfg := config.LoadConfig()

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	if cfg.JWTSecretKey == "" {
		logger.Fatal().Msg("JWT_SECRET_KEY is not set")
	}

	db, _, services := app.App(cfg, logger)
	defer db.CloseDB()

	handler := handlers.NewHandlers(services, db, cfg, logger)

	auth := middleware.RequireAuth(cfg)
	optionalAuth := middleware.OptionalAuth(cfg)

	router := mux.NewRouter()

	router.HandleFunc("/health", handler.Health).Methods(http.MethodGet)

	router.HandleFunc("/check-username", handler.CheckUsername).Methods(http.MethodPost)
	router.HandleFunc("/register", handler.Register).Methods(http.MethodPost)
	router.HandleFunc("/login", handler.Login).Methods(http.MethodPost)

	router.HandleFunc("/notes", handler.ListWorks).Methods(http.MethodGet)
	router.Handle("/notes", auth(http.HandlerFunc(handler.CreateWork))).Methods(http.MethodPost)
	router.Handle("/notes/{id:[0-9]+}", optionalAuth(http.HandlerFunc(handler.WorkDetail))).Methods(http.MethodGet)
	router.Handle("/notes/{id:[0-9]+}", auth(http.HandlerFunc(handler.UpdateWork))).Methods(http.MethodPut)
	router.Handle("/notes/{id:[0-9]+}", auth(http.HandlerFunc(handler.DeleteWork))).Methods(http.MethodDelete)
	router.Handle("/notes/{id:[0-9]+}/like", auth(http.HandlerFunc(handler.LikeWork))).Methods(http.MethodPost)
	router.HandleFunc("/best9", handler.Best9).Methods(http.MethodGet)

	router.Handle("/users/me", auth(http.HandlerFunc(handler.UpdateMe))).Methods(http.MethodPatch)
	router.Handle("/users/me", auth(http.HandlerFunc(handler.MyPage))).Methods(http.MethodGet)

	router.HandleFunc("/api/episode", handler.AddEpisode).Methods(http.MethodPost)
	router.HandleFunc("/author/{name}/works", handler.WorksByAuthor).Methods(http.MethodGet)

	router.Handle("/upload", auth(http.HandlerFunc(handler.UploadImage))).Methods(http.MethodPost)
	router.HandleFunc("/uploads/{filename}", handler.ServeUpload).Methods(http.MethodGet)

	handlerChain := middleware.Chain(
		router,
		middleware.LoggingMiddleware(logger),
		middleware.CORSMiddleware,
	)

	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	logger.Info().Str("addr", addr).Str("database", cfg.DB.DbNAME).Msg("server starting")

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		logger.Fatal().Err(err).Msg("server failed")
	}
}
