// Command server runs the certificate verification gRPC server. Startup
// opens the record store, applies migrations, warms the in-memory record
// index and then serves the verification API until interrupted.
package main

import (
	"context"
	"log"

	"github.com/dmitrijs2005/certverify/internal/server"
	"github.com/dmitrijs2005/certverify/internal/server/config"
)

func main() {
	cfg := config.LoadConfig()

	app, err := server.NewApp(cfg)
	if err != nil {
		log.Fatalf("init: %v", err)
	}

	app.Run(context.Background())
}
