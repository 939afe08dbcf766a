package catalogue

import (
	"context"
	"fmt"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/cockroachdb/errors"
	"github.com/letmevibethatforyou/guidex"
	"github.com/letmevibethatforyou/guidex/internal/ddb"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// DynamoDBClient defines the DynamoDB operations used for catalogue storage.
type DynamoDBClient interface {
	dynamodb.ScanAPIClient
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

var tracer = otel.Tracer("guidex-catalogue")

// LoadDynamoDB scans table for guideline items and returns the validated
// catalogue. Items of other kinds are skipped. DynamoDB does not guarantee scan
// order, so the result is ordered by ID to keep ranking ties deterministic.
func LoadDynamoDB(ctx context.Context, client dynamodb.ScanAPIClient, table string) ([]guidex.Guideline, error) {
	ctx, span := tracer.Start(ctx, "dynamodb.load_catalogue",
		trace.WithAttributes(
			attribute.String("dynamodb.table_name", table),
		),
	)
	defer span.End()

	paginator := dynamodb.NewScanPaginator(client, &dynamodb.ScanInput{
		TableName:        aws.String(table),
		FilterExpression: aws.String("sk = :kind"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":kind": &types.AttributeValueMemberS{Value: ddb.GuidelineKind},
		},
	})

	var records []guidex.Guideline
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "failed to scan catalogue table")
			return nil, errors.WithSecondaryError(
				guidex.ErrBackendUnavailable,
				errors.Wrapf(err, "failed to scan table %s", table),
			)
		}

		for _, item := range page.Items {
			record, err := ddb.UnmarshalRecord(item)
			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, "failed to unmarshal catalogue item")
				return nil, errors.WithSecondaryError(
					guidex.ErrInvalidCatalogue,
					errors.Wrapf(err, "failed to unmarshal item from table %s", table),
				)
			}
			if record.Kind != ddb.GuidelineKind {
				continue
			}
			records = append(records, record.Object)
		}
	}

	sortByID(records)

	span.SetAttributes(attribute.Int("guidex.guideline_count", len(records)))

	if err := finish(records); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid catalogue")
		return nil, err
	}

	span.SetStatus(codes.Ok, "catalogue loaded")
	return records, nil
}

// SaveDynamoDB validates records and writes each one to table.
func SaveDynamoDB(ctx context.Context, client DynamoDBClient, table string, records []guidex.Guideline) error {
	ctx, span := tracer.Start(ctx, "dynamodb.save_catalogue",
		trace.WithAttributes(
			attribute.String("dynamodb.table_name", table),
			attribute.Int("guidex.guideline_count", len(records)),
		),
	)
	defer span.End()

	if err := Validate(records); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid catalogue")
		return err
	}

	for _, g := range records {
		item, err := ddb.MarshalRecord(g)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "failed to marshal guideline")
			return err
		}

		_, err = client.PutItem(ctx, &dynamodb.PutItemInput{
			TableName: aws.String(table),
			Item:      item,
		})
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, fmt.Sprintf("failed to put guideline %s", g.ID))
			return errors.WithSecondaryError(
				guidex.ErrBackendUnavailable,
				errors.Wrapf(err, "failed to put guideline %s in table %s", g.ID, table),
			)
		}
	}

	span.SetStatus(codes.Ok, fmt.Sprintf("saved %d guidelines", len(records)))
	return nil
}

func sortByID(records []guidex.Guideline) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].ID < records[j].ID
	})
}
