package server

import (
	"encoding/json"
	"fmt"
	"image/png"
	"net/http"
	"net/url"
	"strconv"

	"go.uber.org/zap"

	"github.com/glasscast/glasscast/internal/logger"
	"github.com/glasscast/glasscast/pkg/renderer"
	"github.com/glasscast/glasscast/pkg/scene"
)

// Render dimensions accepted from the query string.
const (
	minDimension = 16
	maxDimension = 2048
	maxWorkers   = 256
)

// Server handles web requests for the raycaster
type Server struct {
	port int
}

// NewServer creates a new web server
func NewServer(port int) *Server {
	return &Server{port: port}
}

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene   string `json:"scene"`   // Scene name (e.g., "demo")
	Width   int    `json:"width"`   // Image width; 0 uses the scene default
	Height  int    `json:"height"`  // Image height; 0 uses the scene default
	Workers int    `json:"workers"` // Worker goroutines; 0 auto-detects
}

// Handler returns the route table so tests can drive the server
// without binding a port
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/", http.FileServer(http.Dir("static/")))
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/inspect", s.handleInspect)
	mux.HandleFunc("/api/health", s.handleHealth)
	return logRequests(mux)
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	logger.Log.Info("starting web server", zap.String("addr", addr))
	return http.ListenAndServe(addr, s.Handler())
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleRender renders the requested scene and responds with the PNG
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	sc, err := scene.ByName(req.Scene)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	width, height := req.Width, req.Height
	if width == 0 {
		width = sc.Width
	}
	if height == 0 {
		height = sc.Height
	}

	config := renderer.DefaultConfig()
	config.Workers = req.Workers

	// The request context cancels the render when the client disconnects.
	rend := renderer.NewRenderer(sc, width, height, config)
	img, stats, err := rend.Render(r.Context())
	if err != nil {
		// The client is gone; there is nobody left to answer.
		logger.Log.Info("render cancelled", zap.String("scene", req.Scene), zap.Error(err))
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("X-Render-Time-Ms", strconv.FormatInt(stats.Elapsed.Milliseconds(), 10))
	w.WriteHeader(http.StatusOK)
	if err := png.Encode(w, img); err != nil {
		logger.Log.Warn("failed to write png response", zap.Error(err))
	}
}

// parseRenderRequest parses request parameters
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	req := &RenderRequest{}

	if name := r.URL.Query().Get("scene"); name != "" {
		req.Scene = name
	} else {
		req.Scene = "demo" // Default scene
	}

	// Zero means "use the scene default", so it sits below the minimum
	// that applies to explicit values.
	var err error
	if req.Width, err = parseIntParam(r.URL.Query(), "width", 0, minDimension, maxDimension); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(r.URL.Query(), "height", 0, minDimension, maxDimension); err != nil {
		return nil, err
	}
	if req.Workers, err = parseIntParam(r.URL.Query(), "workers", 0, 1, maxWorkers); err != nil {
		return nil, err
	}

	return req, nil
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// writeJSONError sends an error response as JSON
func writeJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
