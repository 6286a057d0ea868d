package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gin-gonic/gin"
	"github.com/seguros-online/app-simulacao/internal/api/templates"
	"github.com/seguros-online/app-simulacao/internal/models"
	"github.com/seguros-online/app-simulacao/internal/quote"
	"github.com/seguros-online/app-simulacao/internal/site"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// recordingSubmitter guarda os payloads recebidos e devolve err, se definido.
type recordingSubmitter struct {
	mu       sync.Mutex
	payloads []models.Payload
	err      error
}

func (s *recordingSubmitter) Submit(_ context.Context, p models.Payload) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payloads = append(s.payloads, p.Clone())
	return s.err
}

func (s *recordingSubmitter) last(t *testing.T) models.Payload {
	t.Helper()
	s.mu.Lock()
	defer s.mu.Unlock()
	require.NotEmpty(t, s.payloads, "nenhum payload enviado")
	return s.payloads[len(s.payloads)-1]
}

func (s *recordingSubmitter) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.payloads)
}

type testServer struct {
	engine  *gin.Engine
	content *site.Content
}

func newTestServer(t *testing.T, quoteSub, contactSub quote.Submitter) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tmpl, err := templates.Load()
	require.NoError(t, err)

	content := site.DefaultContent()
	logger := zap.NewNop()

	sim := NewSimulacaoHandler(quoteSub, content, logger, "https://seguros.test")
	sim.now = func() time.Time { return time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC) }
	contacto := NewContactoHandler(contactSub, content, logger)
	pages := NewPagesHandler(content)

	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	r.GET("/", pages.Home)
	r.POST("/contacto", contacto.Formulario)
	r.GET("/simulacao", sim.Pagina(quote.FormIDTabbed, "/simulacao"))
	r.POST("/simulacao", sim.Formulario(quote.FormIDTabbed, "/simulacao"))
	r.GET("/simulacao/auto", sim.Pagina(quote.FormIDLegacy, "/simulacao/auto"))
	r.POST("/simulacao/auto", sim.Formulario(quote.FormIDLegacy, "/simulacao/auto"))
	r.GET("/api/v1/categorias", sim.Categorias)
	r.POST("/api/v1/simulacao", sim.Submeter)
	r.POST("/api/v1/simulacao/campo", sim.ValidarCampo)
	r.POST("/api/v1/contacto", contacto.Enviar)

	return &testServer{engine: r, content: content}
}

func (s *testServer) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.engine.ServeHTTP(rec, req)
	return rec
}

func (s *testServer) get(path string) *httptest.ResponseRecorder {
	return s.do(httptest.NewRequest(http.MethodGet, path, nil))
}

func (s *testServer) postJSON(t *testing.T, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	return s.do(req)
}

func (s *testServer) postForm(path string, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return s.do(req)
}

func parseHTML(t *testing.T, rec *httptest.ResponseRecorder) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(rec.Body)
	require.NoError(t, err)
	return doc
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v), rec.Body.String())
}

func validAutoRequest() map[string]string {
	return map[string]string{
		"categoria":           "auto",
		"nome":                "Maria Silva",
		"email":               "maria@exemplo.pt",
		"telemovel":           "912 345 678",
		"nif":                 "123 456 789",
		"codigo_postal":       "1234-567",
		"data_nascimento":     "1990-01-01",
		"auto_matricula":      " aa-12-bb ",
		"auto_marca":          "Renault",
		"auto_data_matricula": "2015-03-10",
		"data_carta":          "2008-05-01",
		"auto_cobertura":      "terceiros",
		"auto_inicio":         "2024-07-01",
		"consentimento":       "sim",
	}
}

func toForm(m map[string]string) url.Values {
	v := url.Values{}
	for k, s := range m {
		v.Set(k, s)
	}
	return v
}
