// Command server runs the SaudaGhar marketplace REST API.
//
// Configuration is read from the environment (and an optional .env file or
// CONFIG_PATH YAML file); see internal/config.
//
// Exit codes: 0 = clean shutdown, 1 = error.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/saudaghar/marketplace-backend/internal/app"
)

func main() {
	if err := app.Run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "server: %v\n", err)
		os.Exit(1)
	}
}
