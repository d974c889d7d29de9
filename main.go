package main

import (
	"log"

	"distracto-server/confs"
	"distracto-server/db"
	"distracto-server/helpers"
	"distracto-server/logger"
	"distracto-server/server"
)

func main() {
	// load config
	cfg, err := confs.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	appLog, err := logger.New(cfg.Environment)
	if err != nil {
		log.Fatalf("Error building logger: %v", err)
	}

	helpers.SetJWTKey(cfg.JWTSecret)

	// connect to database Postgres
	database, err := db.Connect()
	if err != nil {
		appLog.Fatal("failed to connect to database", "error", err)
	}

	// run server
	srv := server.NewServer(database, cfg, appLog)
	defer srv.Stop()
	if err := srv.Start(); err != nil {
		appLog.Fatal("server exited", "error", err)
	}
}
