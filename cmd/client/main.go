// Command client is the interactive PlanWise CLI.
package main

import (
	"context"
	"log"

	"github.com/dmitrijs2005/planwise/internal/client/cli"
	"github.com/dmitrijs2005/planwise/internal/client/config"
)

func main() {
	ctx := context.Background()

	app, err := cli.NewApp(ctx, config.LoadConfig())
	if err != nil {
		log.Fatalf("planwise: %v", err)
	}

	app.Run(ctx)
}
