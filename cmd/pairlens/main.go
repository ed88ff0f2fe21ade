package main

import (
	"os"

	"github.com/wonny/pairlens/backend/cmd/pairlens/commands"
)

// main is the entry point for the pairlens CLI
// ⭐ 통합 CLI 진입점: go run ./cmd/pairlens [command]
func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
