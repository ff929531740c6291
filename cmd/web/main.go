// Command web serves the browser page that hosts the wasm build.
//
//	GOOS=js GOARCH=wasm go build -o web/rocket.wasm ./cmd/wasm
//	cp "$(go env GOROOT)/lib/wasm/wasm_exec.js" web/
package main

import (
	_ "embed"
	"errors"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/rocket/internal/config"
)

const (
	defaultHost   = "0.0.0.0"
	defaultPort   = "8080"
	defaultAssets = "web"
)

//go:embed index.html
var indexPage []byte

func main() {
	if err := config.LoadDotEnv(); err != nil {
		log.Fatal("failed to load .env", "err", err)
	}
	settings, err := config.Load()
	if err != nil {
		log.Fatal("invalid configuration", "err", err)
	}
	logger := settings.NewLogger(os.Stderr, "web")

	addr := net.JoinHostPort(config.GetEnv("WEB_HOST", defaultHost), config.GetEnv("WEB_PORT", defaultPort))
	assets := config.GetEnv("WEB_ASSETS", defaultAssets)

	srv := &http.Server{
		Addr:              addr,
		Handler:           newHandler(assets, logger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting web server", "addr", "http://"+addr, "assets", assets)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("server error", "err", err)
	}
}

func newHandler(assets string, logger *log.Logger) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if _, err := w.Write(indexPage); err != nil {
			logger.Debug("write index", "err", err)
		}
	})
	mux.Handle("GET /assets/", http.StripPrefix("/assets/", http.FileServer(http.Dir(assets))))
	return mux
}
