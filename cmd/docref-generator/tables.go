package main

import (
	"fmt"
	"io"

	"docref-generator/internal/config"
)

type TablesCmd struct {
	Path  string `arg:"" optional:"" help:"Tables file to print (default: DOCREF_TABLES or the built-in tables)."`
	Check bool   `help:"Only validate the tables."`
	Out   string `help:"Write the tables to this file instead of stdout." short:"o"`
}

func (c *TablesCmd) Run(opts *config.Options, stdout io.Writer) error {
	path := opts.TablesPath
	if c.Path != "" {
		path = c.Path
	}

	tables, err := config.Load(path)
	if err != nil {
		return err
	}

	diags := config.Validate(tables)
	for _, d := range diags.Errors {
		fmt.Fprintln(stdout, d.String())
	}

	if err := diags.Error(); err != nil {
		return fmt.Errorf("invalid tables: %w", err)
	}

	if c.Check {
		_, err := fmt.Fprintln(stdout, "tables ok")
		return err
	}

	if c.Out != "" {
		if err := config.WriteFile(tables, c.Out); err != nil {
			return err
		}

		_, err := fmt.Fprintf(stdout, "wrote %s\n", c.Out)

		return err
	}

	data, err := config.Marshal(tables)
	if err != nil {
		return fmt.Errorf("failed to marshal tables: %w", err)
	}

	_, err = stdout.Write(data)

	return err
}
