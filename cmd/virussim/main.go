package main

import (
	"log"

	"virussim/internal/config"
	"virussim/internal/game"
)

func main() {
	log.SetPrefix("virussim: ")
	log.SetFlags(log.Ltime)

	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatal(err)
	}
	if err := game.Run(cfg); err != nil {
		log.Fatal(err)
	}
}
