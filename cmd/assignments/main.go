package main

import (
	"log"

	"github.com/nhle/assignment-tracker/internal/cli"
)

func main() {
	if err := cli.New().Execute(); err != nil {
		log.Fatalf("error during command execution: %v", err)
	}
}
