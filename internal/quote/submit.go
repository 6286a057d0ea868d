package quote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/seguros-online/app-simulacao/internal/models"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

// DefaultTimeout é o tempo máximo de um envio quando nenhum é configurado.
const DefaultTimeout = 10 * time.Second

// Submitter entrega o payload de um pedido de simulação.
type Submitter interface {
	Submit(ctx context.Context, payload models.Payload) error
}

// SubmitterFunc adapta uma função a Submitter.
type SubmitterFunc func(ctx context.Context, payload models.Payload) error

func (f SubmitterFunc) Submit(ctx context.Context, payload models.Payload) error {
	return f(ctx, payload)
}

// NopSubmitter representa a ausência de endpoint: o pedido é dado como
// enviado sem qualquer chamada de rede.
type NopSubmitter struct{}

func (NopSubmitter) Submit(context.Context, models.Payload) error { return nil }

// HTTPSubmitter envia o payload em JSON por POST para um endpoint.
// Qualquer resposta fora da gama 2xx é tratada como falha.
type HTTPSubmitter struct {
	endpoint string
	client   *http.Client
	tracer   trace.Tracer
}

// NewHTTPSubmitter cria um HTTPSubmitter com o timeout indicado.
func NewHTTPSubmitter(endpoint string, timeout time.Duration) *HTTPSubmitter {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &HTTPSubmitter{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
		tracer:   otel.Tracer("quote"),
	}
}

// NewSubmitter devolve NopSubmitter para um endpoint vazio e HTTPSubmitter nos restantes casos.
func NewSubmitter(endpoint string, timeout time.Duration) Submitter {
	if endpoint == "" {
		return NopSubmitter{}
	}
	return NewHTTPSubmitter(endpoint, timeout)
}

func (s *HTTPSubmitter) Endpoint() string {
	return s.endpoint
}

func (s *HTTPSubmitter) Submit(ctx context.Context, payload models.Payload) (err error) {
	ctx, span := s.tracer.Start(ctx, "quote.forward")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		} else {
			span.SetStatus(codes.Ok, "pedido entregue")
		}
		span.End()
	}()

	span.SetAttributes(
		attribute.String("quote.endpoint", s.endpoint),
		attribute.String("quote.categoria", payload["categoria"]),
		attribute.String("quote.pedido_id", payload["pedido_id"]),
	)

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSubmitFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSubmitFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSubmitFailed, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: status %d", ErrSubmitFailed, resp.StatusCode)
	}
	return nil
}

// asSubmitFailure garante que o erro devolvido por um Submitter identifica ErrSubmitFailed.
func asSubmitFailure(err error) error {
	if errors.Is(err, ErrSubmitFailed) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrSubmitFailed, err)
}
