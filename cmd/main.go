package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwise1/trailhead_admin/config"
	deps "github.com/bwise1/trailhead_admin/internal/debs"
)

const (
	logoutTimeout = 10 * time.Second
)

func main() {
	cfg := config.New()
	ctx := context.Background()
	deps := deps.New(ctx, cfg)
	defer func() {
		if err := deps.Close(); err != nil {
			log.Printf("[Console]: close: %v", err)
		}
	}()

	if !deps.Auth.IsAuthenticated() && cfg.AdminEmail != "" {
		if err := deps.Auth.Login(ctx, cfg.AdminEmail, cfg.AdminPassword); err != nil {
			log.Printf("[Console]: login failed: %v", err)
			return
		}
	}
	if !deps.Auth.IsAuthenticated() {
		log.Println("[Console]: no session; set ADMIN_EMAIL and ADMIN_PASSWORD")
		return
	}

	if user := deps.Auth.User(); user != nil {
		log.Printf("[Console]: signed in as %s (%s)", user.Email, deps.Auth.Role())
	}

	if cfg.MapsEnabled() {
		if err := deps.MapsLoader.Load(ctx); err != nil {
			log.Printf("[Console]: maps unavailable: %v", err)
		}
	}

	deps.PrefetchAll(ctx)
	log.Printf("[Console]: trails=%d amenities=%d users=%d media=%d",
		deps.Trails.Len(), deps.Amenities.Len(), deps.Users.Len(), deps.Media.Len())

	loggedOut := make(chan struct{})
	deps.Auth.OnLogout(func() { close(loggedOut) })
	deps.Inactivity.Start()

	stopChan := make(chan os.Signal, 1)
	signal.Notify(stopChan, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	select {
	case <-stopChan:
	case <-loggedOut:
		log.Println("[Console]: session ended")
		return
	}

	log.Println("Request to shutdown console. Signing out...")
	logoutCtx, cancel := context.WithTimeout(ctx, logoutTimeout)
	defer cancel()
	deps.Auth.Logout(logoutCtx)
}
