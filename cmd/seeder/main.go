package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/letmevibethatforyou/guidex"
	"github.com/letmevibethatforyou/guidex/catalogue"
	"github.com/urfave/cli/v2"
)

// loadRecords reads the catalogue without validating it; validation runs in
// seed once missing IDs are filled.
func loadRecords(path string) ([]guidex.Guideline, error) {
	if path == "" {
		return catalogue.Default(), nil
	}
	return catalogue.Read(path)
}

// seed assigns IDs to records that lack one, then writes the catalogue.
func seed(ctx context.Context, client catalogue.DynamoDBClient, tableName string, records []guidex.Guideline) error {
	if n := catalogue.AssignMissingIDs(records); n > 0 {
		slog.InfoContext(ctx, "Assigned ids to guidelines without one", "count", n)
	}

	if err := catalogue.SaveDynamoDB(ctx, client, tableName, records); err != nil {
		return fmt.Errorf("failed to seed table %s: %w", tableName, err)
	}

	for _, g := range records {
		slog.DebugContext(ctx, "Seeded guideline",
			"id", g.ID,
			"name", g.Name,
			"category", g.Category,
		)
	}
	return nil
}

func runAction(c *cli.Context) error {
	ctx := c.Context
	env := c.String("env")
	tableName := c.String("table-name")
	path := c.String("catalogue")

	slog.InfoContext(ctx, "Starting catalogue seeder",
		"environment", env,
		"table", tableName,
		"catalogue", path,
	)

	records, err := loadRecords(path)
	if err != nil {
		return fmt.Errorf("failed to load catalogue: %w", err)
	}

	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := dynamodb.NewFromConfig(cfg)

	if err := seed(ctx, client, tableName, records); err != nil {
		return err
	}

	slog.InfoContext(ctx, "Successfully seeded catalogue", "count", len(records))
	return nil
}

func main() {
	// Configure JSON logging for AWS environments
	if os.Getenv("AWS_LAMBDA_RUNTIME_API") != "" || os.Getenv("AWS_REGION") != "" {
		slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))
	}

	app := &cli.App{
		Name:  "seeder",
		Usage: "Write a guideline catalogue into DynamoDB",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "env",
				Aliases:  []string{"e"},
				Usage:    "Environment name",
				EnvVars:  []string{"ENVIRONMENT"},
				Required: true,
			},
			&cli.StringFlag{
				Name:     "table-name",
				Aliases:  []string{"t"},
				Usage:    "DynamoDB table name",
				EnvVars:  []string{"TABLE_NAME"},
				Required: true,
			},
			&cli.StringFlag{
				Name:    "catalogue",
				Aliases: []string{"c"},
				Usage:   "Catalogue file (.json, .yaml, .yml); the built-in catalogue is seeded when unset",
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
