// Package main provides the CLI entrypoint for attribute-analyzer.
//
// attribute-analyzer finds near-duplicate attribute labels in a spreadsheet
// column:
//   - Reads labels from .xlsx, .csv, .tsv or plain text files
//   - Groups casing, punctuation and spelling variants by similarity
//   - Prints the groups and exports an Excel workbook for human review
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"attribute-analyzer/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	code := cli.Execute(ctx)

	stop()
	os.Exit(code)
}
