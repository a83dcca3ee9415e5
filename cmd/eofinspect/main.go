package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/malik672/EOF-Parser/eof"
)

// settings carries global flag values and the loaded config to subcommands.
type settings struct {
	logger     *zap.Logger
	configPath string
	logLevel   string
	cfg        Config
}

func main() {
	if err := newApp().Run(context.Background(), os.Args); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.Command {
	s := &settings{}

	return &cli.Command{
		Name:  "eofinspect",
		Usage: "Decode and inspect EOF containers",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Usage:       "path to config file",
				Value:       configPath(),
				Destination: &s.configPath,
			},
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "debug, info, warn or error",
				Destination: &s.logLevel,
			},
		},
		Before: s.before,
		After:  s.after,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return cli.ShowAppHelp(cmd)
		},
		Commands: []*cli.Command{
			inspectCmd(s),
			validateCmd(s),
			tuiCmd(s),
		},
	}
}

func (s *settings) before(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	cfg, err := LoadConfig(s.configPath)
	if err != nil {
		return ctx, err
	}
	s.cfg = cfg

	level := s.logLevel
	if level == "" {
		level = cfg.LogLevel
	}
	logger, err := newLogger(level)
	if err != nil {
		return ctx, err
	}
	s.logger = logger
	eof.SetLogger(logger.Named("eof"))
	return ctx, nil
}

func (s *settings) after(ctx context.Context, cmd *cli.Command) error {
	if s.logger != nil {
		_ = s.logger.Sync()
	}
	return nil
}
