package catalogue

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	crdberrors "github.com/cockroachdb/errors"
	"github.com/letmevibethatforyou/guidex"
	"github.com/letmevibethatforyou/guidex/internal/ddb"
)

// mockDynamoDBClient implements DynamoDBClient for testing
type mockDynamoDBClient struct {
	pages   [][]map[string]types.AttributeValue
	scanErr error
	putErr  error

	scans []*dynamodb.ScanInput
	puts  []*dynamodb.PutItemInput
}

func (m *mockDynamoDBClient) Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	m.scans = append(m.scans, params)
	if m.scanErr != nil {
		return nil, m.scanErr
	}

	page := len(m.scans) - 1
	out := &dynamodb.ScanOutput{Items: m.pages[page]}
	if page+1 < len(m.pages) {
		out.LastEvaluatedKey = map[string]types.AttributeValue{
			"pk": &types.AttributeValueMemberS{Value: "cursor"},
		}
	}
	return out, nil
}

func (m *mockDynamoDBClient) PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	if m.putErr != nil {
		return nil, m.putErr
	}
	m.puts = append(m.puts, params)
	return &dynamodb.PutItemOutput{}, nil
}

func mustItem(t *testing.T, g guidex.Guideline) map[string]types.AttributeValue {
	t.Helper()
	item, err := ddb.MarshalRecord(g)
	if err != nil {
		t.Fatalf("Failed to marshal %s: %v", g.ID, err)
	}
	return item
}

func TestLoadDynamoDB_Success(t *testing.T) {
	ctx := context.Background()

	other := map[string]types.AttributeValue{
		"pk": &types.AttributeValueMemberS{Value: "meta"},
		"sk": &types.AttributeValueMemberS{Value: "settings"},
	}
	client := &mockDynamoDBClient{
		pages: [][]map[string]types.AttributeValue{
			{mustItem(t, guidex.Guideline{ID: "sepse", Name: "Sepse", Category: "Medicina Intensiva"}), other},
			{mustItem(t, guidex.Guideline{ID: "asma", Name: "Asma", Category: "Pneumologia", Symptoms: []string{"sibilância"}})},
		},
	}

	records, err := LoadDynamoDB(ctx, client, "guidelines")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(client.scans) != 2 {
		t.Errorf("Expected 2 scan calls, got %d", len(client.scans))
	}
	if aws.ToString(client.scans[0].TableName) != "guidelines" {
		t.Errorf("Expected table 'guidelines', got %q", aws.ToString(client.scans[0].TableName))
	}
	if len(records) != 2 {
		t.Fatalf("Expected 2 guidelines, got %d", len(records))
	}
	if records[0].ID != "asma" || records[1].ID != "sepse" {
		t.Errorf("Expected guidelines ordered by id, got %s, %s", records[0].ID, records[1].ID)
	}
	if len(records[0].Symptoms) != 1 || records[0].Symptoms[0] != "sibilância" {
		t.Errorf("Unexpected symptoms %v", records[0].Symptoms)
	}
}

func TestLoadDynamoDB_ScanError(t *testing.T) {
	client := &mockDynamoDBClient{scanErr: errors.New("throttled")}

	_, err := LoadDynamoDB(context.Background(), client, "guidelines")
	if !crdberrors.Is(err, guidex.ErrBackendUnavailable) {
		t.Errorf("Expected ErrBackendUnavailable, got %v", err)
	}
}

func TestLoadDynamoDB_EmptyTable(t *testing.T) {
	client := &mockDynamoDBClient{pages: [][]map[string]types.AttributeValue{{}}}

	_, err := LoadDynamoDB(context.Background(), client, "guidelines")
	if !crdberrors.Is(err, guidex.ErrInvalidCatalogue) {
		t.Errorf("Expected ErrInvalidCatalogue, got %v", err)
	}
}

func TestLoadDynamoDB_InvalidRecord(t *testing.T) {
	client := &mockDynamoDBClient{
		pages: [][]map[string]types.AttributeValue{
			{mustItem(t, guidex.Guideline{ID: "sepse", Name: "Sepse"})},
		},
	}

	_, err := LoadDynamoDB(context.Background(), client, "guidelines")
	if !crdberrors.Is(err, guidex.ErrInvalidGuideline) {
		t.Errorf("Expected ErrInvalidGuideline, got %v", err)
	}
}

func TestSaveDynamoDB(t *testing.T) {
	ctx := context.Background()
	client := &mockDynamoDBClient{}
	records := Default()[:3]

	if err := SaveDynamoDB(ctx, client, "guidelines", records); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(client.puts) != 3 {
		t.Fatalf("Expected 3 put calls, got %d", len(client.puts))
	}
	for i, put := range client.puts {
		if aws.ToString(put.TableName) != "guidelines" {
			t.Errorf("Expected table 'guidelines', got %q", aws.ToString(put.TableName))
		}
		record, err := ddb.UnmarshalRecord(put.Item)
		if err != nil {
			t.Fatalf("Failed to unmarshal put item: %v", err)
		}
		if record.Object.ID != records[i].ID {
			t.Errorf("Expected %s, got %s", records[i].ID, record.Object.ID)
		}
	}
}

func TestSaveDynamoDB_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid catalogue", func(t *testing.T) {
		client := &mockDynamoDBClient{}
		err := SaveDynamoDB(ctx, client, "guidelines", []guidex.Guideline{{Name: "No ID", Category: "C"}})
		if !crdberrors.Is(err, guidex.ErrInvalidGuideline) {
			t.Errorf("Expected ErrInvalidGuideline, got %v", err)
		}
		if len(client.puts) != 0 {
			t.Errorf("Expected no writes, got %d", len(client.puts))
		}
	})

	t.Run("put failure", func(t *testing.T) {
		client := &mockDynamoDBClient{putErr: errors.New("access denied")}
		err := SaveDynamoDB(ctx, client, "guidelines", Default()[:1])
		if !crdberrors.Is(err, guidex.ErrBackendUnavailable) {
			t.Errorf("Expected ErrBackendUnavailable, got %v", err)
		}
	})
}
