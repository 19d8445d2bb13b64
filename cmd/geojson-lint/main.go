package main

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/woozymasta/geojson"
	"github.com/woozymasta/geojson/internal/config"
	"github.com/woozymasta/geojson/internal/logger"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	ConfigFile string `short:"c" long:"config" env:"CONFIG_FILE" description:"Path to a YAML file describing document sets to validate"`

	Args struct {
		Paths []string `positional-arg-name:"path" description:"GeoJSON files or directories to validate"`
	} `positional-args:"yes"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	opts.Logger.Setup()

	var sets []config.Set
	if opts.ConfigFile != "" {
		cfg, err := config.Load(opts.ConfigFile)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load configuration")
		}
		sets = cfg.Sets
	}
	if len(opts.Args.Paths) > 0 {
		sets = append(sets, config.Set{Name: "args", Paths: opts.Args.Paths})
	}
	if len(sets) == 0 {
		log.Fatal().Msg("Nothing to validate, pass paths or --config")
	}

	checked := 0
	failed := 0
	for _, set := range sets {
		for _, path := range set.Paths {
			files, err := collectFiles(path)
			if err != nil {
				log.Error().Err(err).Str("path", path).Msg("Failed to read path")
				failed++
				continue
			}

			for _, file := range files {
				checked++
				if !lintFile(file, set.ExpectInvalid) {
					failed++
				}
			}
		}
	}

	log.Info().
		Int("checked", checked).
		Int("failed", failed).
		Msg("Validation finished")

	if failed > 0 {
		os.Exit(1)
	}
}

// collectFiles expands a path into the GeoJSON files it refers to.
// Directories are walked recursively for .json and .geojson files.
func collectFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	var files []string
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(p)) {
		case ".json", ".geojson":
			files = append(files, p)
		}
		return nil
	})
	return files, err
}

func lintFile(path string, expectInvalid bool) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Error().Err(err).Str("file", path).Msg("Failed to read file")
		return false
	}

	_, parseErr := geojson.Parse(string(data))

	if expectInvalid {
		if parseErr == nil {
			log.Error().Str("file", path).Msg("Expected invalid document but it parsed")
			return false
		}
		log.Debug().Str("file", path).Str("reason", parseErr.Error()).Msg("Rejected as expected")
		return true
	}

	if parseErr != nil {
		log.Error().Err(parseErr).Str("file", path).Msg("Invalid GeoJSON")
		return false
	}

	log.Debug().Str("file", path).Msg("Valid GeoJSON")
	return true
}
