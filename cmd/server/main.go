// Command server runs the PlanWise credential service.
package main

import (
	"context"
	"log"

	"github.com/dmitrijs2005/planwise/internal/server"
	"github.com/dmitrijs2005/planwise/internal/server/config"
)

func main() {
	ctx := context.Background()

	app, err := server.NewApp(ctx, config.LoadConfig())
	if err != nil {
		log.Fatalf("planwise server: %v", err)
	}

	app.Run(ctx)
}
