package routes

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/seguros-online/app-simulacao/internal/api/handlers"
	"github.com/seguros-online/app-simulacao/internal/api/templates"
	"github.com/seguros-online/app-simulacao/internal/config"
	middlewares "github.com/seguros-online/app-simulacao/internal/middleware"
	"github.com/seguros-online/app-simulacao/internal/observability"
	"github.com/seguros-online/app-simulacao/internal/quote"
	"github.com/seguros-online/app-simulacao/internal/site"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Deps agrupa o que o router precisa e que é criado no main (ou nos testes).
type Deps struct {
	Logger  *zap.Logger
	Content *site.Content
	// Quote recebe os pedidos de simulação; nil usa QUOTE_ENDPOINT.
	Quote quote.Submitter
	// Contact recebe as mensagens de contacto; nil usa CONTACT_ENDPOINT.
	Contact quote.Submitter
	Limiter *middlewares.RateLimiter
}

func SetupRouter(cfg *config.Config, deps Deps) (*gin.Engine, error) {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Content == nil {
		deps.Content = site.DefaultContent()
	}
	if deps.Quote == nil {
		deps.Quote = quote.NewSubmitter(cfg.QuoteEndpoint, cfg.QuoteTimeout)
	}
	if deps.Contact == nil {
		deps.Contact = quote.NewSubmitter(cfg.ContactEndpoint, cfg.QuoteTimeout)
	}
	if deps.Limiter == nil {
		deps.Limiter = middlewares.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	}

	tmpl, err := templates.Load()
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.SetHTMLTemplate(tmpl)

	r.Use(middlewares.Recovery(deps.Logger))
	r.Use(middlewares.RequestContext())
	r.Use(middlewares.RequestTiming())
	r.Use(middlewares.RequestLogger(deps.Logger))
	r.Use(corsMiddleware())

	pagesHandler := handlers.NewPagesHandler(deps.Content)
	simulacaoHandler := handlers.NewSimulacaoHandler(deps.Quote, deps.Content, deps.Logger, cfg.BaseURL)
	contactoHandler := handlers.NewContactoHandler(deps.Contact, deps.Content, deps.Logger)
	healthHandler := handlers.NewHealthHandler(
		map[string]handlers.Check{
			"content": func(context.Context) error {
				if len(deps.Content.Slides) == 0 {
					return errors.New("conteúdo do site vazio")
				}
				return nil
			},
			"templates": func(context.Context) error {
				if tmpl.Lookup("simulacao.html") == nil {
					return errors.New("template simulacao.html em falta")
				}
				return nil
			},
		},
		map[string]string{
			"version":          observability.ServiceVersion,
			"quote_endpoint":   modoEnvio(deps.Quote),
			"contact_endpoint": modoEnvio(deps.Contact),
		},
	)

	limited := deps.Limiter.Middleware()

	r.GET("/", pagesHandler.Home)
	r.POST("/contacto", limited, contactoHandler.Formulario)

	r.GET("/simulacao", simulacaoHandler.Pagina(quote.FormIDTabbed, "/simulacao"))
	r.POST("/simulacao", limited, simulacaoHandler.Formulario(quote.FormIDTabbed, "/simulacao"))
	r.GET("/simulacao/auto", simulacaoHandler.Pagina(quote.FormIDLegacy, "/simulacao/auto"))
	r.POST("/simulacao/auto", limited, simulacaoHandler.Formulario(quote.FormIDLegacy, "/simulacao/auto"))

	api := r.Group("/api/v1")
	{
		api.GET("/categorias", simulacaoHandler.Categorias)
		api.POST("/simulacao", limited, simulacaoHandler.Submeter)
		api.POST("/simulacao/campo", simulacaoHandler.ValidarCampo)
		api.POST("/contacto", limited, contactoHandler.Enviar)
	}

	r.GET("/liveness", healthHandler.Liveness)
	r.GET("/readiness", healthHandler.Readiness)
	r.GET("/health", healthHandler.Health)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Página não encontrada"})
	})

	return r, nil
}

func modoEnvio(s quote.Submitter) string {
	switch v := s.(type) {
	case *quote.HTTPSubmitter:
		return v.Endpoint()
	case quote.NopSubmitter:
		return "local"
	default:
		return "custom"
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-Request-ID, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
