package main

import (
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwise1/trailhead_admin/config"
	api "github.com/bwise1/trailhead_admin/internal/http/rest"
)

func main() {
	cfg := config.New()

	a := api.New(cfg)
	a.Backend.Seed()

	go func() {
		log.Printf("Stub admin API running on port %v ...", cfg.MockPort)
		if err := a.Serve(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	stopChan := make(chan os.Signal, 1)
	signal.Notify(stopChan, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	<-stopChan

	log.Println("Shutting down server...")
	if err := a.Shutdown(); err != nil {
		log.Fatal(err)
	}
}
