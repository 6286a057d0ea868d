package observability

import (
	"context"
	"fmt"
	"time"

	"github.com/seguros-online/app-simulacao/internal/config"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	"go.uber.org/zap"
	"google.golang.org/grpc"
)

const (
	ServiceName    = "app-simulacao"
	ServiceVersion = "v1.0.0"
)

// Tracing guarda o provider OTLP usado pelo envio de pedidos. Um *Tracing nil
// (tracing desligado) pode ser usado: Shutdown não faz nada.
type Tracing struct {
	provider *sdktrace.TracerProvider
	logger   *zap.Logger
}

// StartTracing liga o exporter OTLP/gRPC ao coletor em cfg.TracingEndpoint e
// instala o provider e os propagadores W3C como globais do otel. Com
// TRACING_ENABLED a falso devolve nil sem erro.
//
// Os spans de cada envio (ver quote.HTTPSubmitter) levam o traceparent para o
// endpoint de leads.
func StartTracing(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Tracing, error) {
	if !cfg.TracingEnabled {
		logger.Info("tracing desativado")
		return nil, nil
	}

	exporter, err := otlptrace.New(ctx, otlptracegrpc.NewClient(
		otlptracegrpc.WithInsecure(),
		otlptracegrpc.WithEndpoint(cfg.TracingEndpoint),
		otlptracegrpc.WithDialOption(grpc.WithUserAgent(ServiceName+"/"+ServiceVersion)),
	))
	if err != nil {
		return nil, fmt.Errorf("exporter OTLP: %w", err)
	}

	res, err := serviceResource(ctx, cfg.SentryEnvironment)
	if err != nil {
		_ = exporter.Shutdown(ctx)
		return nil, fmt.Errorf("resource: %w", err)
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter,
			sdktrace.WithMaxExportBatchSize(256),
			sdktrace.WithBatchTimeout(5*time.Second),
		),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sampler(cfg.TracingSample)),
	)
	otel.SetTracerProvider(provider)
	otel.SetTextMapPropagator(propagator())

	logger.Info("tracer inicializado",
		zap.String("endpoint", cfg.TracingEndpoint),
		zap.Float64("amostragem", cfg.TracingSample),
	)
	return &Tracing{provider: provider, logger: logger}, nil
}

// Shutdown envia os spans pendentes e fecha o exporter, respeitando o prazo de ctx.
func (t *Tracing) Shutdown(ctx context.Context) {
	if t == nil || t.provider == nil {
		return
	}
	if err := t.provider.Shutdown(ctx); err != nil {
		t.logger.Error("falha ao encerrar tracer provider", zap.Error(err))
	}
}

// serviceResource identifica o serviço e o ambiente (o mesmo reportado ao Sentry).
func serviceResource(ctx context.Context, environment string) (*resource.Resource, error) {
	attrs := resource.WithAttributes(
		semconv.ServiceNameKey.String(ServiceName),
		semconv.ServiceVersionKey.String(ServiceVersion),
		semconv.DeploymentEnvironmentKey.String(environment),
	)
	return resource.New(ctx, attrs, resource.WithHost(), resource.WithProcessRuntimeVersion())
}

// sampler respeita a decisão do pedido de origem e amostra os restantes pela
// fração configurada.
func sampler(ratio float64) sdktrace.Sampler {
	switch {
	case ratio >= 1:
		return sdktrace.ParentBased(sdktrace.AlwaysSample())
	case ratio <= 0:
		return sdktrace.ParentBased(sdktrace.NeverSample())
	default:
		return sdktrace.ParentBased(sdktrace.TraceIDRatioBased(ratio))
	}
}

func propagator() propagation.TextMapPropagator {
	return propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{})
}
