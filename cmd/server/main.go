// Command server exposes the backronym generator as a JSON REST API.
//
// Endpoints:
//
//	GET  /api/expand?acronym=<letters>[&count=n]
//	POST /api/reload   body: {"target":"words"|"templates"|"all"}
//	GET  /api/stats
package main

import (
	"encoding/json"
	"flag"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/rs/cors"
	"go.uber.org/zap"

	backronym "github.com/wordworks/backronym"
)

// maxCount caps the number of phrases a single request may ask for.
const maxCount = 100

// ---- JSON response types ------------------------------------------------

type expandResponse struct {
	Acronym string   `json:"acronym"`
	Phrases []string `json:"phrases"`
}

type reloadRequest struct {
	Target string `json:"target"`
}

type reloadResponse struct {
	Words     int `json:"words"`
	Templates int `json:"templates"`
}

type statsResponse struct {
	Words             int `json:"words"`
	Templates         int `json:"templates"`
	MaxTemplateLength int `json:"max_template_length"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- server ---------------------------------------------------------------

type server struct {
	gen *backronym.Generator
	log *zap.Logger
}

func (s *server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error("encode response", zap.Error(err))
	}
}

func (s *server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, errorResponse{Error: msg})
}

func (s *server) handleExpand(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}
	acronym := r.URL.Query().Get("acronym")
	if acronym == "" {
		s.writeError(w, http.StatusBadRequest, "missing 'acronym' query parameter")
		return
	}

	count := 1
	if raw := r.URL.Query().Get("count"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxCount {
			s.writeError(w, http.StatusBadRequest, "'count' must be an integer in [1,100]")
			return
		}
		count = n
	}

	phrases, err := s.gen.ExpandN(acronym, count)
	if err != nil {
		s.log.Error("expand", zap.String("acronym", acronym), zap.Error(err))
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, expandResponse{
		Acronym: backronym.Sanitize(acronym),
		Phrases: phrases,
	})
}

func (s *server) handleReload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeError(w, http.StatusMethodNotAllowed, "POST required")
		return
	}
	req := reloadRequest{Target: "all"}
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.writeError(w, http.StatusBadRequest, "body must be JSON with a 'target' field")
			return
		}
	}

	var err error
	switch req.Target {
	case "words":
		err = s.gen.ReloadWords()
	case "templates":
		err = s.gen.ReloadTemplates()
	case "all", "":
		if err = s.gen.ReloadWords(); err == nil {
			err = s.gen.ReloadTemplates()
		}
	default:
		s.writeError(w, http.StatusBadRequest, "'target' must be words, templates or all")
		return
	}
	if err != nil {
		s.log.Error("reload", zap.String("target", req.Target), zap.Error(err))
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.log.Info("reloaded",
		zap.String("target", req.Target),
		zap.Int("words", s.gen.WordCount()),
		zap.Int("templates", s.gen.TemplateCount()))
	s.writeJSON(w, http.StatusOK, reloadResponse{
		Words:     s.gen.WordCount(),
		Templates: s.gen.TemplateCount(),
	})
}

func (s *server) handleStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}
	s.writeJSON(w, http.StatusOK, statsResponse{
		Words:             s.gen.WordCount(),
		Templates:         s.gen.TemplateCount(),
		MaxTemplateLength: s.gen.MaxTemplateLength(),
	})
}

// withRequestID tags every request with a UUID, echoes it in X-Request-Id
// and logs one access line per request.
func (s *server) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-Id", id)
		next.ServeHTTP(w, r)
		s.log.Info("request",
			zap.String("id", id),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path))
	})
}

// ---- main ---------------------------------------------------------------

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	addr := flag.String("addr", "", "listen address (overrides config)")
	dataDir := flag.String("data", "", "path to data directory (overrides config)")
	flag.Parse()

	logger, err := zap.NewProductionConfig().Build()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}
	if *addr != "" {
		cfg.Addr = *addr
	}
	if *dataDir != "" {
		cfg.DataDir = *dataDir
	}

	logger.Info("loading data", zap.String("dir", cfg.DataDir))
	gen, err := backronym.New(cfg.DataDir)
	if err != nil {
		logger.Fatal("load data", zap.Error(err))
	}
	logger.Info("data loaded",
		zap.Int("words", gen.WordCount()),
		zap.Int("templates", gen.TemplateCount()))

	s := &server{gen: gen, log: logger}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/expand", s.handleExpand)
	mux.HandleFunc("/api/reload", s.handleReload)
	mux.HandleFunc("/api/stats", s.handleStats)

	if cfg.Watch {
		stop, err := watchDataDir(cfg.DataDir, gen, logger)
		if err != nil {
			logger.Fatal("watch data dir", zap.Error(err))
		}
		defer stop()
	}

	handler := cors.New(cors.Options{AllowedOrigins: cfg.CORSOrigins}).Handler(mux)
	handler = s.withRequestID(handler)

	logger.Info("listening", zap.String("addr", cfg.Addr))
	if err := http.ListenAndServe(cfg.Addr, handler); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}
