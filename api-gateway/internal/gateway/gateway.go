package gateway

import (
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

const defaultQueueLimit = "5"

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Config struct {
	KitchenSvcURL string
	AgentURL      string
	FrontendDir   string
}

type Gateway struct {
	config Config
	client HTTPClient
	logger *zap.Logger
}

func NewGateway(config Config, client HTTPClient, logger *zap.Logger) *Gateway {
	if logger == nil {
		logger = zap.NewNop()
	}
	if config.FrontendDir == "" {
		config.FrontendDir = "./frontend"
	}
	return &Gateway{
		config: config,
		client: client,
		logger: logger,
	}
}

var agents = map[string]bool{
	"inventory-controller": true,
	"sla-watchdog":         true,
	"station-dispatcher":   true,
	"prep-planner":         true,
}

func (g *Gateway) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]string{
		"status":  "healthy",
		"service": "api-gateway",
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// forward sends r to targetURL+path with r's query and returns the upstream
// response. The caller closes the body.
func (g *Gateway) forward(r *http.Request, targetURL, path, rawQuery string) (*http.Response, error) {
	target := targetURL + path
	if rawQuery != "" {
		target += "?" + rawQuery
	}

	req, err := http.NewRequestWithContext(r.Context(), r.Method, target, r.Body)
	if err != nil {
		return nil, err
	}
	for k, v := range r.Header {
		req.Header[k] = v
	}

	g.logger.Debug("proxy", zap.String("method", r.Method), zap.String("path", r.URL.Path), zap.String("target", target))
	return g.client.Do(req)
}

func (g *Gateway) copyResponse(w http.ResponseWriter, resp *http.Response) {
	defer resp.Body.Close()

	for k, v := range resp.Header {
		w.Header()[k] = v
	}
	w.WriteHeader(resp.StatusCode)

	if _, err := io.Copy(w, resp.Body); err != nil {
		g.logger.Warn("failed to copy upstream response", zap.Error(err))
	}
}

func (g *Gateway) ProxyRequest(w http.ResponseWriter, r *http.Request, targetURL, path string) {
	resp, err := g.forward(r, targetURL, path, r.URL.RawQuery)
	if err != nil {
		g.logger.Error("upstream request failed", zap.String("target", targetURL), zap.String("path", path), zap.Error(err))
		writeJSONError(w, http.StatusBadGateway, "Upstream unavailable: "+err.Error())
		return
	}
	g.copyResponse(w, resp)
}

func (g *Gateway) AgentHandler(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["agent"]
	if !agents[name] {
		writeJSONError(w, http.StatusNotFound, "Unknown agent")
		return
	}
	g.ProxyRequest(w, r, g.config.AgentURL, "/agents/"+name)
}

// QueueHandler proxies the agent work queue. The board polls it, so an
// unreachable agent yields an empty queue rather than an error.
func (g *Gateway) QueueHandler(w http.ResponseWriter, r *http.Request) {
	query := url.Values{}
	if category := r.URL.Query().Get("category"); category != "" {
		query.Set("category", category)
	}
	limit := r.URL.Query().Get("limit")
	if limit == "" {
		limit = defaultQueueLimit
	}
	query.Set("limit", limit)

	resp, err := g.forward(r, g.config.AgentURL, "/queue", query.Encode())
	if err != nil {
		g.logger.Warn("agent queue unavailable", zap.Error(err))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte("[]"))
		return
	}
	g.copyResponse(w, resp)
}

func (g *Gateway) RouteHandler(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path

	if strings.HasPrefix(path, "/api/") {
		g.ProxyRequest(w, r, g.config.KitchenSvcURL, path)
		return
	}

	http.ServeFile(w, r, filepath.Join(g.config.FrontendDir, "index.html"))
}

func (g *Gateway) SetupRoutes() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/health", g.HealthCheck).Methods("GET")
	r.HandleFunc("/api/kitchen-agents/queue", g.QueueHandler).Methods("GET")
	r.HandleFunc("/api/kitchen-agents/{agent}", g.AgentHandler)
	r.PathPrefix("/api/").HandlerFunc(g.RouteHandler)
	r.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.Dir(g.config.FrontendDir))))
	r.PathPrefix("/").HandlerFunc(g.RouteHandler)
	return r
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
