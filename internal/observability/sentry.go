package observability

import (
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/seguros-online/app-simulacao/internal/config"
	"go.uber.org/zap"
)

// InitSentry configura o reporte de erros. Sem SENTRY_DSN o cliente fica
// inativo e CaptureError não envia nada.
func InitSentry(cfg *config.Config, logger *zap.Logger) {
	err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.SentryDSN,
		Environment: cfg.SentryEnvironment,
		Release:     ServiceName + "@" + ServiceVersion,
		BeforeSend: func(event *sentry.Event, hint *sentry.EventHint) *sentry.Event {
			// os pedidos contêm dados pessoais; não seguem para o Sentry
			event.User = sentry.User{}
			if event.Request != nil {
				event.Request.Data = ""
			}
			return event
		},
	})
	if err != nil {
		logger.Warn("falha ao iniciar Sentry", zap.Error(err))
		return
	}
	if cfg.SentryDSN == "" {
		logger.Info("SENTRY_DSN vazio, reporte de erros desativado")
		return
	}
	logger.Info("Sentry inicializado", zap.String("environment", cfg.SentryEnvironment))
}

// CaptureError envia err para o Sentry com as tags indicadas.
func CaptureError(err error, tags map[string]string) {
	if err == nil {
		return
	}
	sentry.WithScope(func(scope *sentry.Scope) {
		for k, v := range tags {
			scope.SetTag(k, v)
		}
		sentry.CaptureException(err)
	})
}

func FlushSentry() {
	sentry.Flush(2 * time.Second)
}
