package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/midnamic912/Midna-Blog/config"
	"github.com/midnamic912/Midna-Blog/database"
	"github.com/midnamic912/Midna-Blog/mailer"
	"github.com/midnamic912/Midna-Blog/site"
)

func main() {
	cfg := config.Load()

	store, err := database.Open(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	s := site.New(cfg, store, mailer.NewSMTPMailer(cfg))
	r := s.Routes()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("Running on http://localhost%s", cfg.ServerAddr)
		if err := http.ListenAndServe(cfg.ServerAddr, r); err != nil {
			log.Printf("HTTP server stopped: %v", err)
		}
	}()

	// Block until a signal is received
	<-signals
	log.Println("Shutting down gracefully...")

	// Close the database connection
	store.Close()
}
