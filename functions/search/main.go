package main

import (
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/letmevibethatforyou/guidex/catalogue"
	"github.com/letmevibethatforyou/guidex/inmemory"
	"github.com/urfave/cli/v2"
)

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	app := &cli.App{
		Name:  "guideline-search",
		Usage: "Serve guideline searches from AWS Lambda",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "table-name",
				Usage:   "DynamoDB table holding the catalogue; the built-in catalogue is used when unset",
				EnvVars: []string{"TABLE_NAME"},
			},
			&cli.StringFlag{
				Name:    "catalogue",
				Usage:   "Catalogue file bundled with the function (takes precedence over the table)",
				EnvVars: []string{"GUIDEX_CATALOGUE"},
			},
		},
		Action: runAction,
	}

	if err := app.Run(os.Args); err != nil {
		slog.Error("Application failed", "error", err)
		os.Exit(1)
	}
}

func runAction(c *cli.Context) error {
	ctx := c.Context

	source := catalogue.Source{
		Path:  c.String("catalogue"),
		Table: c.String("table-name"),
	}
	if source.Path == "" && source.Table != "" {
		cfg, err := config.LoadDefaultConfig(ctx)
		if err != nil {
			slog.ErrorContext(ctx, "Failed to load AWS config", "error", err)
			return err
		}
		source.Client = dynamodb.NewFromConfig(cfg)
	}

	// Loaded once per cold start; the catalogue is immutable afterwards.
	records, err := source.Load(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to load catalogue", "source", source.Name(), "error", err)
		return err
	}
	slog.InfoContext(ctx, "Catalogue loaded", "source", source.Name(), "guidelines", len(records))

	handler := NewHandler(inmemory.New(records))

	if os.Getenv("AWS_LAMBDA_RUNTIME_API") != "" {
		slog.InfoContext(ctx, "Running in Lambda environment")
		lambda.Start(handler.HandleRequest)
	} else {
		slog.InfoContext(ctx, "Function cannot run outside of AWS Lambda environment")
	}

	return nil
}
