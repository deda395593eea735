package main

import (
	"log"

	"github.com/pulsarbalaji/storefront-client/config"
	"github.com/pulsarbalaji/storefront-client/internal/stub"
)

func main() {
	cfg := config.LoadStub()

	server := stub.New(cfg)

	log.Printf("stub backend listening on :%s", cfg.Port)

	if err := server.Listen(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
