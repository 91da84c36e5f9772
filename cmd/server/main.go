package main

import (
	"log"

	"anoa.com/useremployee/internal/config"
	"anoa.com/useremployee/internal/repository"
	"anoa.com/useremployee/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// All record state is session-local and lost on restart.
	store := repository.NewStore()

	srv := server.NewServer(cfg, store)

	if err := srv.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server exited with error: %v", err)
	}
}
