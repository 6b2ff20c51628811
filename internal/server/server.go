package server

import (
	_ "embed"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/shadowzevax/Extensor-SRT/internal/config"
	"github.com/shadowzevax/Extensor-SRT/internal/logging"
	"github.com/shadowzevax/Extensor-SRT/internal/subtitle"
)

//go:embed index.html
var indexPage []byte

// Server exposes the gap-normalizing pipeline over HTTP: an upload form on
// GET / and the processing endpoint on POST /process-srt. Each request runs
// the pipeline on its own entry sequence; nothing is shared across requests.
type Server struct {
	cfg    config.Config
	logger *logging.Logger
	mux    *http.ServeMux
}

func New(cfg config.Config, logger *logging.Logger) *Server {
	s := &Server{cfg: cfg, logger: logger, mux: http.NewServeMux()}
	s.mux.HandleFunc("GET /{$}", s.handleIndex)
	s.mux.HandleFunc("POST /process-srt", s.handleProcess)
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// ListenAndServe blocks serving on the configured bind address.
func (s *Server) ListenAndServe() error {
	s.logger.Infow("Starting HTTP server", "bind", s.cfg.Server.Bind)
	return http.ListenAndServe(s.cfg.Server.Bind, s)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(indexPage)
}

func (s *Server) handleProcess(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.Server.MaxUploadBytes)

	file, header, err := r.FormFile("srt_file")
	if err != nil {
		http.Error(w, "No file part in the request", http.StatusBadRequest)
		return
	}
	defer file.Close()

	if header.Filename == "" {
		http.Error(w, "No selected file", http.StatusBadRequest)
		return
	}
	if !strings.HasSuffix(strings.ToLower(header.Filename), ".srt") {
		http.Error(w, "Invalid file type. Please upload an .srt file.", http.StatusBadRequest)
		return
	}

	// Tolerate a UTF-8 byte order mark, like Python's utf-8-sig.
	raw, err := io.ReadAll(transform.NewReader(file, unicode.UTF8BOM.NewDecoder()))
	if err != nil {
		s.logger.Warnw("Failed to read upload", "filename", header.Filename, "error", err)
		http.Error(w, fmt.Sprintf("An error occurred during processing: %v", err),
			http.StatusInternalServerError)
		return
	}

	tail := time.Duration(s.cfg.Processing.TailSeconds) * time.Second
	processed, outcomes, err := subtitle.Process(string(raw), tail)
	if err != nil {
		s.logger.Warnw("Processing failed", "filename", header.Filename, "error", err)
		http.Error(w, fmt.Sprintf("An error occurred during processing: %v", err),
			http.StatusInternalServerError)
		return
	}

	for _, o := range outcomes {
		switch o.Kind {
		case subtitle.OutcomeSkipped:
			s.logger.Warnw("Dropped subtitle block",
				"filename", header.Filename, "block", o.Block, "reason", o.Reason)
		case subtitle.OutcomeRecovered:
			s.logger.Warnw("Zeroed malformed timestamps",
				"filename", header.Filename, "block", o.Block, "fields", o.Fields)
		}
	}

	outputName := DeriveOutputName(
		r.FormValue("output_filename"),
		s.cfg.Processing.DefaultOutputName,
	)

	s.logger.Infow("Processed subtitle upload",
		"filename", header.Filename,
		"output", outputName,
		"blocks", len(outcomes),
	)

	w.Header().Set("Content-Type", "text/srt")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%s", outputName))
	_, _ = io.WriteString(w, processed)
}

// DeriveOutputName resolves the delivered filename from the user-supplied
// value: empty falls back to the default, and a missing .srt suffix is
// appended.
func DeriveOutputName(requested, fallback string) string {
	name := strings.TrimSpace(requested)
	if name == "" {
		return fallback
	}
	if !strings.HasSuffix(name, ".srt") {
		name += ".srt"
	}
	return name
}
