// Package main provides the CLI entrypoint for docref-generator.
//
// docref-generator enriches a parsed API graph with document-store mapping
// metadata:
//   - Infers persisted documents and their collections from operations
//   - Injects hidden reference properties on parent resources
//   - Remaps and renames types and properties from configuration tables
//   - Emits static container descriptors
//
// Environment variables (DOCREF_*) set the defaults; flags override them.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"docref-generator/internal/config"
)

type CLI struct {
	Enrich  EnrichCmd  `cmd:"" help:"Enrich a graph file and write model descriptors."`
	Tables  TablesCmd  `cmd:"" help:"Print the effective configuration tables."`
	Version VersionCmd `cmd:"" help:"Print version information."`
}

type VersionCmd struct{}

func (c *VersionCmd) Run(stdout io.Writer) error {
	_, err := fmt.Fprintln(stdout, Version())
	return err
}

func main() {
	opts, err := config.LoadOptions()
	if err != nil {
		fmt.Fprintf(os.Stderr, "docref-generator: %v\n", err)
		os.Exit(1)
	}

	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name("docref-generator"),
		kong.Description("Enrich API graphs with document mapping metadata."),
		kong.UsageOnError(),
		kong.Bind(&opts),
		kong.BindTo(os.Stdout, (*io.Writer)(nil)),
	)
	err = ctx.Run()
	ctx.FatalIfErrorf(err)
}
