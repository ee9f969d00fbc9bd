package main

import (
	"context"
	"log"

	"github.com/Lucas-Almeida-SD/Trybe-Projeto-25-Store-Manager/internal/app/api"
)

func main() {
	if err := api.Run(context.Background()); err != nil {
		log.Fatalf("store manager api: %v", err)
	}
}
