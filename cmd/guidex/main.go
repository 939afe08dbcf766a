package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/letmevibethatforyou/guidex"
	"github.com/letmevibethatforyou/guidex/catalogue"
	"github.com/letmevibethatforyou/guidex/inmemory"
	"github.com/urfave/cli/v2"
)

const (
	defaultLimit   = 8
	defaultTimeout = 5 * time.Second
)

func main() {
	if os.Getenv("AWS_LAMBDA_RUNTIME_API") != "" || os.Getenv("AWS_REGION") != "" {
		slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, nil)))
	}

	if err := newApp(os.Stdout).Run(os.Args); err != nil {
		slog.Error("Application failed", "error", err)
		os.Exit(1)
	}
}

func newApp(out io.Writer) *cli.App {
	return &cli.App{
		Name:   "guidex",
		Usage:  "Search the clinical guideline catalogue",
		Writer: out,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "catalogue",
				Aliases: []string{"c"},
				Usage:   "Catalogue file (.json, .yaml, .yml); the built-in catalogue is used when unset",
				EnvVars: []string{"GUIDEX_CATALOGUE"},
			},
			&cli.StringFlag{
				Name:    "table",
				Aliases: []string{"t"},
				Usage:   "DynamoDB table holding the catalogue",
				EnvVars: []string{"TABLE_NAME"},
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "Timeout for loading the catalogue and searching",
				Value: defaultTimeout,
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "search",
				Usage:     "Rank guidelines against a free-text query",
				ArgsUsage: "QUERY",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "query",
						Aliases: []string{"q"},
						Usage:   "Query string to search for; positional args are a fallback",
					},
					&cli.IntFlag{
						Name:    "limit",
						Aliases: []string{"l"},
						Usage:   "Maximum number of guidelines to display; 0 shows all",
						Value:   defaultLimit,
					},
					&cli.IntFlag{
						Name:    "offset",
						Aliases: []string{"o"},
						Usage:   "Number of ranked guidelines to skip",
					},
					&cli.StringSliceFlag{
						Name:  "category",
						Usage: "Only show guidelines of this category; repeatable",
					},
				},
				Action: searchAction,
			},
			{
				Name:      "symptoms",
				Usage:     "List guidelines with a symptom containing any of the targets",
				ArgsUsage: "TARGET...",
				Action:    lookupAction(func(s *inmemory.Searcher, targets []string) []guidex.Guideline { return s.FindBySymptoms(targets) }),
			},
			{
				Name:      "keywords",
				Usage:     "List guidelines with a keyword containing any of the targets",
				ArgsUsage: "TARGET...",
				Action:    lookupAction(func(s *inmemory.Searcher, targets []string) []guidex.Guideline { return s.FindByKeywords(targets) }),
			},
			{
				Name:   "validate",
				Usage:  "Load and validate the catalogue",
				Action: validateAction,
			},
		},
	}
}

func loadSearcher(c *cli.Context) (*inmemory.Searcher, error) {
	ctx, cancel := context.WithTimeout(c.Context, timeout(c))
	defer cancel()

	source, err := catalogueSource(ctx, c)
	if err != nil {
		return nil, err
	}

	records, err := source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalogue from %s: %w", source.Name(), err)
	}

	slog.DebugContext(ctx, "catalogue loaded", "source", source.Name(), "guidelines", len(records))
	return inmemory.New(records), nil
}

func catalogueSource(ctx context.Context, c *cli.Context) (catalogue.Source, error) {
	source := catalogue.Source{
		Path:  strings.TrimSpace(c.String("catalogue")),
		Table: strings.TrimSpace(c.String("table")),
	}
	if source.Path != "" || source.Table == "" {
		return source, nil
	}

	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return source, fmt.Errorf("failed to load AWS config: %w", err)
	}
	source.Client = dynamodb.NewFromConfig(cfg)
	return source, nil
}

func timeout(c *cli.Context) time.Duration {
	d := c.Duration("timeout")
	if d <= 0 {
		slog.WarnContext(c.Context, "timeout must be positive; using default", "timeout", d, "default", defaultTimeout)
		return defaultTimeout
	}
	return d
}

func searchAction(c *cli.Context) error {
	query := strings.TrimSpace(c.String("query"))
	if query == "" && c.NArg() > 0 {
		query = strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	}

	limit := c.Int("limit")
	if limit < 0 {
		slog.WarnContext(c.Context, "limit cannot be negative; falling back to default", "limit", limit, "default", defaultLimit)
		limit = defaultLimit
	}

	offset := c.Int("offset")
	if offset < 0 {
		slog.WarnContext(c.Context, "offset cannot be negative; resetting to 0", "offset", offset)
		offset = 0
	}

	searcher, err := loadSearcher(c)
	if err != nil {
		return err
	}

	opts := []guidex.SearchOption{
		guidex.WithLimit(limit),
		guidex.WithOffset(offset),
	}
	opts = append(opts, categoryFilter(c.StringSlice("category"))...)

	slog.DebugContext(c.Context, "executing query",
		"query", query,
		"limit", limit,
		"offset", offset,
	)

	ctx, cancel := context.WithTimeout(c.Context, timeout(c))
	defer cancel()

	results, err := searcher.Search(ctx, query, opts...)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	return printJSON(c.App.Writer, searchPayload(results))
}

// categoryFilter turns repeated --category flags into a single OR filter.
func categoryFilter(raw []string) []guidex.SearchOption {
	var exprs []guidex.Expression
	for _, category := range raw {
		category = strings.TrimSpace(category)
		if category == "" {
			continue
		}
		exprs = append(exprs, guidex.Eq(guidex.FieldCategory, category))
	}

	switch len(exprs) {
	case 0:
		return nil
	case 1:
		return []guidex.SearchOption{exprs[0]}
	default:
		return []guidex.SearchOption{guidex.Or(exprs...)}
	}
}

func lookupAction(find func(*inmemory.Searcher, []string) []guidex.Guideline) cli.ActionFunc {
	return func(c *cli.Context) error {
		if c.NArg() == 0 {
			return fmt.Errorf("at least one target is required")
		}

		searcher, err := loadSearcher(c)
		if err != nil {
			return err
		}

		matches := find(searcher, c.Args().Slice())
		return printJSON(c.App.Writer, struct {
			Total      int                `json:"total"`
			Guidelines []guidex.Guideline `json:"guidelines"`
		}{
			Total:      len(matches),
			Guidelines: matches,
		})
	}
}

func validateAction(c *cli.Context) error {
	searcher, err := loadSearcher(c)
	if err != nil {
		return err
	}

	return printJSON(c.App.Writer, struct {
		Valid      bool `json:"valid"`
		Guidelines int  `json:"guidelines"`
	}{
		Valid:      true,
		Guidelines: searcher.Size(),
	})
}

type searchResponse struct {
	Total      int64              `json:"total"`
	Took       int64              `json:"took_ms"`
	Query      string             `json:"query"`
	NextOffset *int               `json:"next_offset,omitempty"`
	Guidelines []guidex.Guideline `json:"guidelines"`
}

func searchPayload(res *guidex.Results) searchResponse {
	return searchResponse{
		Total:      res.Total,
		Took:       res.Took,
		Query:      res.Query,
		NextOffset: res.NextOffset,
		Guidelines: res.Items,
	}
}

func printJSON(w io.Writer, payload any) error {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}

	_, err = fmt.Fprintln(w, string(data))
	return err
}
