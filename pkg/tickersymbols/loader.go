package tickersymbols

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the name reported for the embedded dataset.
const DefaultPath = "embedded:data/stocks.yaml"

//go:embed data/stocks.yaml
var bundledStocks []byte

// LoadError reports a dataset that could not be read or parsed.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load dataset %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

var (
	errEmptyDocument = errors.New("empty document")
	errNotMapping    = errors.New("root is not a mapping")
	errNoCollections = errors.New("document has neither companies nor indices")
)

// Load reads and decodes the dataset at path.
func Load(path string) (*Dataset, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return decodeBytes(path, content)
}

// LoadBundled decodes the dataset embedded in the package.
func LoadBundled() (*Dataset, error) {
	return decodeBytes(DefaultPath, bundledStocks)
}

// Decode reads a dataset document from r. name is only used in errors.
func Decode(name string, r io.Reader) (*Dataset, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, &LoadError{Path: name, Err: err}
	}
	return decodeBytes(name, content)
}

func decodeBytes(name string, content []byte) (*Dataset, error) {
	if len(bytes.TrimSpace(content)) == 0 {
		return nil, &LoadError{Path: name, Err: errEmptyDocument}
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, &LoadError{Path: name, Err: err}
	}
	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return nil, &LoadError{Path: name, Err: errNotMapping}
	}

	var ds Dataset
	if err := root.Decode(&ds); err != nil {
		return nil, &LoadError{Path: name, Err: err}
	}
	if err := validate(&ds); err != nil {
		return nil, &LoadError{Path: name, Err: err}
	}
	return &ds, nil
}

// validate checks shape only; the content of the dataset is taken as is.
func validate(ds *Dataset) error {
	if ds.Companies == nil && ds.Indices == nil {
		return errNoCollections
	}
	for i, idx := range ds.Indices {
		if idx.Name == "" {
			return fmt.Errorf("indices[%d]: missing name", i)
		}
	}
	return nil
}
