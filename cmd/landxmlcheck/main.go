package main

import (
	"log"
	"os"

	"landxmlcheck/internal/cli"
)

func main() {
	logger := log.New(os.Stderr, "landxmlcheck: ", 0)
	if err := cli.Run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		logger.Fatal(err)
	}
}
