package gpt

import (
	"net"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "content-assessor/api/internal/assess/gpt"

type Engine struct {
	APIKey  string
	Model   string
	BaseURL string
	httpc   *http.Client
	tracer  trace.Tracer
}

func New(key, model, baseURL string) *Engine {
	tr := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		TLSHandshakeTimeout:   10 * time.Second,
		ResponseHeaderTimeout: 120 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
		IdleConnTimeout:       90 * time.Second,
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   100,
	}
	if strings.TrimSpace(baseURL) == "" {
		baseURL = "https://api.openai.com/v1"
	}

	return &Engine{
		APIKey:  strings.TrimSpace(key),
		Model:   strings.TrimSpace(model),
		BaseURL: strings.TrimRight(baseURL, "/"),
		// no overall client timeout; the transport bounds connect and first byte
		httpc: &http.Client{
			Timeout:   0,
			Transport: tr,
		},
		tracer: otel.Tracer(tracerName),
	}
}

// WithHTTPClient overrides the internal HTTP client (e.g., for tests or tracing).
func (e *Engine) WithHTTPClient(c *http.Client) *Engine {
	if c != nil {
		e.httpc = c
	}
	return e
}

// WithTracerProvider records spans on tp instead of the global provider.
func (e *Engine) WithTracerProvider(tp trace.TracerProvider) *Engine {
	if tp != nil {
		e.tracer = tp.Tracer(tracerName)
	}
	return e
}

func (e *Engine) Name() string { return "gpt" }

func (e *Engine) GetModel() string {
	if m := strings.TrimSpace(e.Model); m != "" {
		return m
	}
	return "gpt-4o-mini"
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatRequest struct {
	Model          string         `json:"model"`
	Messages       []chatMessage  `json:"messages"`
	ResponseFormat responseFormat `json:"response_format"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}
