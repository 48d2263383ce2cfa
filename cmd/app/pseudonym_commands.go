package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/rlink7/rlink-pseudonym/cmd/app/commands"
	"github.com/rlink7/rlink-pseudonym/internal/app"
	"github.com/rlink7/rlink-pseudonym/internal/config"
)

func getPseudonymCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "generate",
			Usage: "Generate a batch of pseudonyms for one or more prefixes",
			Flags: []cli.Flag{
				&cli.StringSliceFlag{
					Name:     "prefix",
					Aliases:  []string{"p"},
					Required: true,
					Usage:    "Prefix quota as prefix:count (repeatable, served in order)",
				},
				&cli.IntFlag{
					Name:    "digits",
					Aliases: []string{"d"},
					Value:   0,
					Usage:   "Main code length in digits (0 uses the configured default)",
				},
				&cli.IntFlag{
					Name:    "min-distance",
					Aliases: []string{"m"},
					Value:   -1,
					Usage:   "Minimum edit distance between issued codes (-1 uses the configured default, 0 disables)",
				},
				&cli.BoolFlag{
					Name:    "dry-run",
					Aliases: []string{"n"},
					Value:   false,
					Usage:   "Generate and report without persisting",
				},
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "text",
					Usage:   "Output format: 'text' or 'json'",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				generationUseCase, err := container.GenerationUseCase()
				if err != nil {
					return err
				}

				digits := int(cmd.Int("digits"))
				if digits == 0 {
					digits = cfg.GenerationDigits
				}

				minDistance := int(cmd.Int("min-distance"))
				if minDistance < 0 {
					minDistance = cfg.GenerationMinDistance
				}

				return commands.RunGenerateBatch(
					ctx,
					generationUseCase,
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.StringSlice("prefix"),
					digits,
					minDistance,
					cmd.Bool("dry-run"),
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "verify",
			Usage: "Verify a pseudonym value and show its issuance record",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "value",
					Aliases:  []string{"v"},
					Required: true,
					Usage:    "Full pseudonym value (prefix + code + check digit)",
				},
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "text",
					Usage:   "Output format: 'text' or 'json'",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				generationUseCase, err := container.GenerationUseCase()
				if err != nil {
					return err
				}

				return commands.RunVerifyValue(
					ctx,
					generationUseCase,
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("value"),
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "stats",
			Usage: "Show how many pseudonyms have been issued under a prefix",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "prefix",
					Aliases:  []string{"p"},
					Required: true,
					Usage:    "Prefix to count issued pseudonyms for",
				},
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "text",
					Usage:   "Output format: 'text' or 'json'",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				generationUseCase, err := container.GenerationUseCase()
				if err != nil {
					return err
				}

				return commands.RunPrefixStats(
					ctx,
					generationUseCase,
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("prefix"),
					cmd.String("format"),
				)
			},
		},
	}
}
