// Package main provides a developer utility that generates a synthetic
// roster manifest for local simulator runs.
package main

import (
	"flag"
	"log"

	"github.com/openbrawl/arenasim/internal/game/roster"
)

func main() {
	count := flag.Int("n", 50, "number of participants to generate")
	out := flag.String("out", "content/roster.yaml", "output roster manifest path")
	flag.Parse()

	if *count < 0 {
		log.Fatalf("participant count must be >= 0, got %d", *count)
	}

	parts := roster.Generate(*count)
	if err := roster.WriteFile(*out, parts); err != nil {
		log.Fatalf("writing roster: %v", err)
	}
	log.Printf("wrote %d participants to %s", len(parts), *out)
}
