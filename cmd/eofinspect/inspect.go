package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

func inspectCmd(s *settings) *cli.Command {
	var (
		format string
		asHex  bool
		strict bool
	)

	return &cli.Command{
		Name:      "inspect",
		Usage:     "Print the header, types table and sections of a container",
		ArgsUsage: "<file|hex>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Usage: "output format: text or json", Value: formatText, Destination: &format},
			&cli.BoolFlag{Name: "hex", Usage: "treat the argument as hex-encoded bytes", Destination: &asHex},
			&cli.BoolFlag{Name: "strict", Usage: "fail when structural validation fails", Destination: &strict},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			applyInspectConfig(cmd, s.cfg, &format, &strict)

			if cmd.NArg() != 1 {
				return cli.Exit("error: inspect takes exactly one <file|hex> argument", 2)
			}
			if format != formatText && format != formatJSON {
				return cli.Exit(fmt.Sprintf("error: unknown format %q", format), 2)
			}

			c, err := decodeInput(cmd.Args().First(), asHex)
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: decode: %v", err), 1)
			}
			s.logger.Debug("container decoded",
				zap.Int("size", c.Size()),
				zap.Int("types", len(c.Body.Types)))

			if strict {
				if err := c.Validate(); err != nil {
					return cli.Exit(fmt.Sprintf("error: validate: %v", err), 1)
				}
			}

			w := cmd.Root().Writer
			if format == formatJSON {
				return renderJSON(w, c)
			}
			return renderText(w, c, palette{color: wantColor(s.cfg, w)})
		},
	}
}

func validateCmd(s *settings) *cli.Command {
	var asHex bool

	return &cli.Command{
		Name:      "validate",
		Usage:     "Decode a container and run the structural checks",
		ArgsUsage: "<file|hex>",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "hex", Usage: "treat the argument as hex-encoded bytes", Destination: &asHex},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.NArg() != 1 {
				return cli.Exit("error: validate takes exactly one <file|hex> argument", 2)
			}

			c, err := decodeInput(cmd.Args().First(), asHex)
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: decode: %v", err), 1)
			}
			if err := c.Validate(); err != nil {
				return cli.Exit(fmt.Sprintf("error: validate: %v", err), 1)
			}

			s.logger.Info("container valid", zap.String("input", cmd.Args().First()))
			_, err = fmt.Fprintln(cmd.Root().Writer, "ok")
			return err
		},
	}
}
