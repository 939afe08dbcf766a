package catalogue

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/letmevibethatforyou/guidex"
	"gopkg.in/yaml.v3"
)

// document is the on-disk shape of a catalogue file. A bare list of
// guidelines is accepted as well.
type document struct {
	Guidelines []guidex.Guideline `json:"guidelines" yaml:"guidelines"`
}

// Load reads a catalogue file, choosing the decoder from its extension
// (.json, .yaml or .yml), and validates the result.
func Load(path string) ([]guidex.Guideline, error) {
	records, err := Read(path)
	if err != nil {
		return nil, err
	}
	if err := finish(records); err != nil {
		return nil, errors.Wrapf(err, "failed to load catalogue %s", path)
	}
	return records, nil
}

// Read decodes a catalogue file without validating it, for callers that
// complete the records first (see AssignMissingIDs).
func Read(path string) ([]guidex.Guideline, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open catalogue %s", path)
	}
	defer f.Close()

	var records []guidex.Guideline
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		records, err = decodeJSON(f)
	case ".yaml", ".yml":
		records, err = decodeYAML(f)
	default:
		return nil, errors.Wrapf(guidex.ErrInvalidCatalogue, "unsupported catalogue extension %q", ext)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read catalogue %s", path)
	}

	return records, nil
}

// DecodeJSON decodes and validates a JSON catalogue.
func DecodeJSON(r io.Reader) ([]guidex.Guideline, error) {
	records, err := decodeJSON(r)
	if err != nil {
		return nil, err
	}
	if err := finish(records); err != nil {
		return nil, err
	}
	return records, nil
}

func decodeJSON(r io.Reader) ([]guidex.Guideline, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read catalogue")
	}

	var records []guidex.Guideline
	if trimmed := strings.TrimSpace(string(data)); strings.HasPrefix(trimmed, "[") {
		err = json.Unmarshal(data, &records)
	} else {
		var doc document
		err = json.Unmarshal(data, &doc)
		records = doc.Guidelines
	}
	if err != nil {
		return nil, errors.WithSecondaryError(
			guidex.ErrInvalidCatalogue,
			errors.Wrap(err, "failed to unmarshal JSON"),
		)
	}

	return records, nil
}

// DecodeYAML decodes and validates a YAML catalogue.
func DecodeYAML(r io.Reader) ([]guidex.Guideline, error) {
	records, err := decodeYAML(r)
	if err != nil {
		return nil, err
	}
	if err := finish(records); err != nil {
		return nil, err
	}
	return records, nil
}

func decodeYAML(r io.Reader) ([]guidex.Guideline, error) {
	var node yaml.Node
	if err := yaml.NewDecoder(r).Decode(&node); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.WithSecondaryError(
			guidex.ErrInvalidCatalogue,
			errors.Wrap(err, "failed to parse YAML"),
		)
	}

	var records []guidex.Guideline
	var err error
	if len(node.Content) > 0 && node.Content[0].Kind == yaml.SequenceNode {
		err = node.Decode(&records)
	} else if len(node.Content) > 0 {
		var doc document
		err = node.Decode(&doc)
		records = doc.Guidelines
	}
	if err != nil {
		return nil, errors.WithSecondaryError(
			guidex.ErrInvalidCatalogue,
			errors.Wrap(err, "failed to decode YAML"),
		)
	}

	return records, nil
}

// finish rejects empty catalogues and runs Validate.
func finish(records []guidex.Guideline) error {
	if len(records) == 0 {
		return errors.Wrap(guidex.ErrInvalidCatalogue, "catalogue has no guidelines")
	}
	return Validate(records)
}
