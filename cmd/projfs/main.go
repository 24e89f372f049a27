// Package main provides the CLI entry point for projfs.
package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/ideamans/go-l10n"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/user/projfs/pkg/adapters/logger"
	"github.com/user/projfs/pkg/adapters/moduleloader"
	"github.com/user/projfs/pkg/adapters/osfilesystem"
	"github.com/user/projfs/pkg/adapters/ziparchiver"
	"github.com/user/projfs/pkg/config"
	"github.com/user/projfs/pkg/ports"
	"github.com/user/projfs/pkg/projectfs"
)

var version = "dev"

// session holds what every subcommand needs once global flags are parsed.
type session struct {
	cfg config.Config
	log ports.Logger
	svc *projectfs.Service
}

func main() {
	app := newApp(os.Stdin, os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newApp builds the CLI. Streams are injected so tests can drive it.
func newApp(stdin io.Reader, stdout, stderr io.Writer) *cli.App {
	s := &session{}

	return &cli.App{
		Name:      "projfs",
		Usage:     l10n.T("Project-relative file and directory operations"),
		Version:   version,
		Reader:    stdin,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "root",
				Aliases: []string{"r"},
				Usage:   l10n.T("Project root prepended to every path"),
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   l10n.T("YAML configuration file"),
			},
			&cli.StringFlag{
				Name:  "env-file",
				Value: ".env",
				Usage: l10n.T("Environment file loaded before configuration"),
			},
			&cli.StringFlag{
				Name:  "zip-path",
				Usage: l10n.T("Path to the zip executable"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   l10n.T("Log level (debug, info, warn, error)"),
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"Q"},
				Usage:   l10n.T("Suppress all log output"),
			},
		},
		Before:   s.setup,
		Commands: s.commands(),
	}
}

// setup resolves configuration in order: defaults, config file, .env and
// environment, then flags.
func (s *session) setup(c *cli.Context) error {
	if err := godotenv.Load(c.String("env-file")); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", c.String("env-file"), err)
	}

	cfg := config.Defaults()
	if path := c.String("config"); path != "" {
		loaded, err := config.LoadFromFile(path)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}
	cfg.ApplyEnv()

	if c.IsSet("root") {
		cfg.ProjectRoot = c.String("root")
	}
	if c.IsSet("zip-path") {
		cfg.ZipPath = c.String("zip-path")
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}
	if c.Bool("quiet") {
		cfg.Quiet = true
	}

	var log ports.Logger
	if cfg.Quiet {
		log = logger.NewNoop()
	} else {
		// stdout carries command output, so every log line goes to stderr
		log = logger.NewWriter(cfg.Level(), c.App.ErrWriter, c.App.ErrWriter)
	}
	if path := c.String("config"); path != "" {
		log.Debug("Loaded configuration from %s", path)
	}
	log.Debug("Project root: %s", cfg.ProjectRoot)

	ziparchiver.SetZipPath(cfg.ZipPath)
	if !ziparchiver.IsZipAvailable() {
		log.Debug("zip not found, archive commands will fail")
	}

	plugins := make([]string, 0, len(cfg.Plugins))
	for _, p := range cfg.Plugins {
		plugins = append(plugins, cfg.ProjectRoot+p)
	}
	loader := moduleloader.NewAllowlist(moduleloader.NewSharedObject(), plugins...)

	fsys := osfilesystem.New()
	if exists, err := fsys.Exists(cfg.ProjectRoot); err == nil && !exists {
		log.Warn("Project root %s does not exist", cfg.ProjectRoot)
	}

	s.cfg = cfg
	s.log = log
	s.svc = projectfs.New(fsys, ziparchiver.New(""), loader, log)
	return nil
}
