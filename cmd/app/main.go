package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/starford/jera/internal"
	"github.com/starford/jera/internal/api"
	"github.com/starford/jera/internal/mcpserver"
	"github.com/starford/jera/internal/verify"
	pkgconfig "github.com/starford/jera/pkg/config"
)

func loadConfig(cmd *cli.Command) (*internal.Config, string, error) {
	configPath := cmd.String("config")

	cfg := internal.NewDefaultConfig()
	if err := pkgconfig.Load(configPath, cfg); err != nil {
		return nil, "", fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, configPath, nil
}

func runServe(ctx context.Context, cmd *cli.Command) error {
	cfg, configPath, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	opts := []internal.Option{
		internal.WithConfig(cfg),
		internal.WithConfigPath(configPath),
	}

	if err := internal.Run(ctx, opts...); err != nil {
		return fmt.Errorf("app run error: %w", err)
	}

	return nil
}

func runMCP(ctx context.Context, cmd *cli.Command) error {
	// Stdio transport; stdout carries the protocol, so no history side
	// effects and no logging to stdout.
	srv := mcpserver.New(api.NewService(nil))
	return srv.ServeStdio()
}

func runConvert(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 1 {
		return fmt.Errorf("usage: convert --from <calendar> --to <calendar> <date>")
	}

	svc := api.NewService(nil)
	resp, err := svc.Convert(cmd.Args().Get(0), cmd.String("from"), cmd.String("to"))
	if err != nil {
		return err
	}
	return printJSON(resp)
}

func runCycles(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 1 {
		return fmt.Errorf("usage: cycles [--calendar <calendar>] <date>")
	}

	svc := api.NewService(nil)
	resp, err := svc.Cycles(cmd.Args().Get(0), cmd.String("calendar"))
	if err != nil {
		return err
	}
	return printJSON(resp)
}

func runVerify(ctx context.Context, cmd *cli.Command) error {
	rep := verify.Run()
	for _, res := range rep.Results {
		status := "ok"
		if !res.Pass {
			status = fmt.Sprintf("FAIL (got %d, want %d)", res.Got, res.Want)
		}
		fmt.Printf("%-42s %s\n", res.Name, status)
	}
	fmt.Printf("passed: %d, failed: %d\n", rep.Passed, rep.Failed)
	if !rep.OK() {
		return fmt.Errorf("%d facts failed", rep.Failed)
	}
	return nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func main() {
	cmd := &cli.Command{
		Name:  "jera",
		Usage: "Multi-calendar date conversion engine with 17 calendar systems and long-period cycle calculators",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Path to config file",
				DefaultText: "config/config.yaml",
				Value:       "config/config.yaml",
				Sources:     cli.EnvVars("APP_CONFIG_FILE"),
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Run the HTTP API server",
				Action: runServe,
			},
			{
				Name:   "mcp",
				Usage:  "Run the MCP server on stdio",
				Action: runMCP,
			},
			{
				Name:      "convert",
				Usage:     "Convert a date between two calendar systems",
				ArgsUsage: "<date>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "from", Value: "gregorian", Usage: "Source calendar tag"},
					&cli.StringFlag{Name: "to", Value: "gregorian", Usage: "Target calendar tag"},
				},
				Action: runConvert,
			},
			{
				Name:      "cycles",
				Usage:     "Show long-period cycle positions for a date",
				ArgsUsage: "<date>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "calendar", Value: "gregorian", Usage: "Calendar tag of the date"},
				},
				Action: runCycles,
			},
			{
				Name:   "verify",
				Usage:  "Check the conversion engine against documented epochs and anchors",
				Action: runVerify,
			},
		},
		Action: runServe,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
