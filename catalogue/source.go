package catalogue

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/cockroachdb/errors"
	"github.com/letmevibethatforyou/guidex"
)

// Source selects where a catalogue comes from. Path wins over Table; with
// neither set the compiled-in catalogue is used.
type Source struct {
	// Path is a .json, .yaml or .yml catalogue file.
	Path string
	// Table is a DynamoDB table holding guideline items.
	Table string
	// Client scans Table. Required when Table is set.
	Client dynamodb.ScanAPIClient
}

// Name describes the source for logs.
func (s Source) Name() string {
	switch {
	case s.Path != "":
		return "file:" + s.Path
	case s.Table != "":
		return "dynamodb:" + s.Table
	default:
		return "builtin"
	}
}

// Load returns the validated catalogue of the source.
func (s Source) Load(ctx context.Context) ([]guidex.Guideline, error) {
	switch {
	case s.Path != "":
		return Load(s.Path)
	case s.Table != "":
		if s.Client == nil {
			return nil, errors.Wrapf(guidex.ErrBackendUnavailable, "no DynamoDB client for table %s", s.Table)
		}
		return LoadDynamoDB(ctx, s.Client, s.Table)
	default:
		return Default(), nil
	}
}
