// Package ddb maps guidelines to and from the single-table DynamoDB layout
// used for catalogue storage: pk holds the guideline ID, sk the record kind
// and object the guideline itself.
package ddb

import (
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/cockroachdb/errors"
	"github.com/letmevibethatforyou/guidex"
)

// GuidelineKind is the sort key value of guideline items.
const GuidelineKind = "guideline"

// Record represents a stored catalogue item
type Record struct {
	ID     string           `dynamodbav:"pk"`     // PK field
	Kind   string           `dynamodbav:"sk"`     // SK field
	Object guidex.Guideline `dynamodbav:"object"` // object field
}

// MarshalRecord converts a guideline into a DynamoDB item.
func MarshalRecord(g guidex.Guideline) (map[string]types.AttributeValue, error) {
	if g.ID == "" {
		return nil, errors.Newf("guideline %q has no id", g.Name)
	}

	item, err := attributevalue.MarshalMap(Record{
		ID:     g.ID,
		Kind:   GuidelineKind,
		Object: g,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal guideline %s", g.ID)
	}
	return item, nil
}

// UnmarshalRecord converts a DynamoDB item into a Record struct.
// The key takes precedence over an ID stored inside the object.
func UnmarshalRecord(item map[string]types.AttributeValue) (Record, error) {
	var record Record
	err := attributevalue.UnmarshalMap(item, &record)
	if err != nil {
		return Record{}, errors.Wrap(err, "failed to unmarshal record")
	}
	if record.ID != "" {
		record.Object.ID = record.ID
	}
	return record, nil
}
