package main

import (
	"context"
	"log"

	"github.com/88-AL3Xtx/go-ecommerce-api/internal/app/api"
)

func main() {
	ctx := context.Background()
	if err := api.Run(ctx); err != nil {
		log.Fatalf("ecommerce API exited: %v", err)
	}
}
