package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/sarjithrm/quoraUpgradProject/internal/config"
	"github.com/sarjithrm/quoraUpgradProject/internal/database"
	"github.com/sarjithrm/quoraUpgradProject/internal/handlers"
	"github.com/sarjithrm/quoraUpgradProject/internal/middleware"
	"github.com/sarjithrm/quoraUpgradProject/internal/services"
)

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg := config.Load()

	db, err := database.Init(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	sessions := services.NewSessionService(db, cfg.JWTSecret)
	userService := services.NewUserService(db, sessions, cfg.JWTSecret, cfg.TokenLifetime)
	questionService := services.NewQuestionService(db, sessions)
	answerService := services.NewAnswerService(db, sessions)

	userHandler := handlers.NewUserHandler(userService)
	commonHandler := handlers.NewCommonHandler(userService)
	adminHandler := handlers.NewAdminHandler(userService)
	questionHandler := handlers.NewQuestionHandler(questionService)
	answerHandler := handlers.NewAnswerHandler(answerService)

	router := http.NewServeMux()

	router.HandleFunc("POST /user/signup", userHandler.Signup)
	router.HandleFunc("POST /user/signin", userHandler.Signin)
	router.HandleFunc("POST /user/signout", userHandler.Signout)

	router.HandleFunc("GET /userprofile/{userId}", commonHandler.UserProfile)
	router.HandleFunc("DELETE /admin/user/{userId}", adminHandler.DeleteUser)

	router.HandleFunc("POST /question/create", questionHandler.Create)
	router.HandleFunc("GET /question/all", questionHandler.All)
	router.HandleFunc("GET /question/all/{userId}", questionHandler.AllByUser)
	router.HandleFunc("PUT /question/edit/{questionId}", questionHandler.Edit)
	router.HandleFunc("DELETE /question/delete/{questionId}", questionHandler.Delete)

	router.HandleFunc("POST /question/{questionId}/answer/create", answerHandler.Create)
	router.HandleFunc("PUT /answer/edit/{answerId}", answerHandler.Edit)
	router.HandleFunc("DELETE /answer/delete/{answerId}", answerHandler.Delete)
	router.HandleFunc("GET /answer/all/{questionId}", answerHandler.AllForQuestion)

	handler := middleware.RequestLogger(router)

	addr := fmt.Sprintf("%s:%s", cfg.Host, cfg.Port)
	slog.Info("server starting", "addr", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}
