package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/seguros-online/app-simulacao/docs"
	"github.com/seguros-online/app-simulacao/internal/api/routes"
	"github.com/seguros-online/app-simulacao/internal/config"
	middlewares "github.com/seguros-online/app-simulacao/internal/middleware"
	"github.com/seguros-online/app-simulacao/internal/observability"
	"github.com/seguros-online/app-simulacao/internal/site"
	"go.uber.org/zap"
)

// @title           Simulação de Seguros API
// @version         1.0
// @description     Pedidos de simulação de seguros e mensagens de contacto, validados no servidor com as mesmas regras do formulário
// @termsOfService  http://swagger.io/terms/

// @contact.name   Seguros Online
// @contact.email  geral@seguros-online.pt

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Erro ao carregar configuração: %v", err)
	}

	logger, err := observability.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Erro ao criar logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	gin.SetMode(cfg.GinMode)

	tracing, err := observability.StartTracing(context.Background(), cfg, logger)
	if err != nil {
		logger.Error("tracing indisponível", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		tracing.Shutdown(ctx)
	}()

	observability.InitSentry(cfg, logger)
	defer observability.FlushSentry()

	content, err := site.LoadContent(cfg.SiteContentFile)
	if err != nil {
		logger.Fatal("erro ao carregar conteúdo do site", zap.String("file", cfg.SiteContentFile), zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	limiter := middlewares.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	go limiter.Run(ctx)

	r, err := routes.SetupRouter(cfg, routes.Deps{
		Logger:  logger,
		Content: content,
		Limiter: limiter,
	})
	if err != nil {
		logger.Fatal("erro ao montar router", zap.Error(err))
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("servidor iniciado",
			zap.String("addr", srv.Addr),
			zap.Bool("quote_endpoint", cfg.QuoteEndpoint != ""),
			zap.Bool("contact_endpoint", cfg.ContactEndpoint != ""),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("erro ao iniciar servidor", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("a encerrar servidor")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.QuoteTimeout+5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("erro no encerramento", zap.Error(err))
	}
}
