package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/portfolio/backend/internal/config"
	"github.com/portfolio/backend/internal/handler"
	"github.com/portfolio/backend/internal/logging"
	"github.com/portfolio/backend/internal/render"
	"github.com/portfolio/backend/internal/repository"
	"github.com/portfolio/backend/internal/service"
	"github.com/portfolio/backend/pkg/mail"
)

func main() {
	logging.Setup()

	cfg, err := config.Load(context.Background())
	if err != nil {
		logging.Fatal("load config failed", "error", err)
	}

	pool, err := repository.NewPool(context.Background(), cfg.Database.URL)
	if err != nil {
		logging.Fatal("failed to connect to database", "error", err)
	}
	defer pool.Close()

	contactRepo := repository.NewPgContactRepository(pool)
	skillRepo := repository.NewPgSkillRepository(pool)
	projectRepo := repository.NewPgProjectRepository(pool)
	achievementRepo := repository.NewPgAchievementRepository(pool)
	experienceRepo := repository.NewPgExperienceRepository(pool)
	postRepo := repository.NewPgPostRepository(pool)

	mailClient := mail.NewSMTPClient(cfg.Mail.SMTPHost, cfg.Mail.SMTPPort, cfg.Mail.Username, cfg.Mail.Password)
	notifier := service.NewContactNotifier(mailClient, cfg.Mail.From, cfg.Mail.Operator)

	contactService := service.NewContactService(contactRepo, notifier)
	portfolioService := service.NewPortfolioService(skillRepo, projectRepo, achievementRepo, experienceRepo, postRepo)
	blogService := service.NewBlogService(postRepo)

	renderer, err := render.NewTemplateRenderer()
	if err != nil {
		logging.Fatal("parse templates failed", "error", err)
	}

	h := handler.New(pool, cfg.Server.FrontendURL)
	pageHandler := handler.NewPageHandler(portfolioService, renderer)
	blogHandler := handler.NewBlogHandler(blogService, renderer)
	contactHandler := handler.NewContactHandler(contactService, portfolioService, renderer)
	contactLimiter := handler.NewRateLimiter(cfg.Server.ContactRatePerMinute)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", pageHandler.Home)
	mux.HandleFunc("GET /skills", pageHandler.Skills)
	mux.HandleFunc("GET /projects", pageHandler.Projects)
	mux.HandleFunc("GET /about", pageHandler.About)
	mux.HandleFunc("GET /blog", blogHandler.List)
	mux.HandleFunc("GET /blog/{id}", blogHandler.Detail)
	mux.Handle("POST /contact", contactLimiter.Middleware(http.HandlerFunc(contactHandler.Submit)))

	mux.HandleFunc("GET /api/health", h.Health)

	// Admin endpoints for the contact inbox
	mux.HandleFunc("GET /api/admin/messages", contactHandler.AdminList)
	mux.HandleFunc("PATCH /api/admin/messages/{id}/read", contactHandler.MarkRead)
	mux.HandleFunc("PATCH /api/admin/messages/{id}/replied", contactHandler.MarkReplied)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      handler.RequestLogger(handler.SecurityHeaders(h.CORS(mux))),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}
