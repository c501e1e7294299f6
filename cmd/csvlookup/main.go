// Command csvlookup resolves lookup terms against delimited files and prints
// one value per line.
//
// Usage:
//
//	csvlookup [-config file] [-path dir,dir] [-v] term [term ...]
//
// Each term is a lookup key optionally followed by name=value overrides, for
// example: 'Li file=elements.csv delimiter=,'.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/sevigo/csvlookup/config"
	"github.com/sevigo/csvlookup/lookup"
	"github.com/sevigo/csvlookup/searchpath"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML configuration file")
	pathList := flag.String("path", "", "comma-separated list of search roots")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: csvlookup [-config file] [-path dir,dir] [-v] term [term ...]")
		os.Exit(2)
	}

	values, err := run(logger, *configPath, *pathList, flag.Args())
	if err != nil {
		logger.Error("lookup failed", "error", err)
		os.Exit(1)
	}

	for _, v := range values {
		fmt.Println(v)
	}
}

func run(logger *slog.Logger, configPath, pathList string, terms []string) ([]string, error) {
	cfg := &config.Config{}
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	roots := cfg.SearchPath
	if pathList != "" {
		for _, root := range strings.Split(pathList, ",") {
			if root = strings.TrimSpace(root); root != "" {
				roots = append(roots, root)
			}
		}
	}

	resolver := searchpath.New(roots, searchpath.WithLogger(logger))
	l, err := lookup.New(resolver,
		lookup.WithLogger(logger),
		lookup.WithDefaultFile(cfg.Defaults.File),
		lookup.WithDefaultDelimiter(cfg.Defaults.Delimiter),
		lookup.WithDefaultEncoding(cfg.Defaults.Encoding),
	)
	if err != nil {
		return nil, err
	}

	return l.Run(terms, nil)
}
