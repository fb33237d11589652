package main

import (
	"embed"
	"html/template"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vhrabal/planetoids/internal/config"
)

//go:embed index.html
var content embed.FS

type pageData struct {
	SSHHost string
	SSHPort string
}

func main() {
	host := config.GetEnv("PLANETOIDS_WEB_HOST", "0.0.0.0")
	port := config.GetEnv("PLANETOIDS_WEB_PORT", "8080")
	data := pageData{
		SSHHost: config.GetEnv("PLANETOIDS_PUBLIC_HOST", "localhost"),
		SSHPort: config.GetEnv("PLANETOIDS_PORT", "2222"),
	}

	tmpl, err := template.ParseFS(content, "index.html")
	if err != nil {
		log.Fatal("could not parse page template", "error", err)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		if err := tmpl.Execute(w, data); err != nil {
			log.Error("could not render page", "error", err)
		}
	})

	addr := net.JoinHostPort(host, port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Info("starting web server", "addr", addr)
	if err := srv.ListenAndServe(); err != nil {
		log.Fatal("could not start server", "error", err)
	}
}
