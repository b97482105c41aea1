package ability

import (
	"bytes"
	_ "embed"
	"io"
	"os"

	apperr "github.com/KirkDiggler/roadtrip-engine/internal/errors"
	"gopkg.in/yaml.v3"
)

//go:embed data/abilities.yaml
var defaultCatalogYAML []byte

type catalogFile struct {
	Abilities []*Definition `yaml:"abilities"`
}

// LoadCatalog decodes a YAML catalog and validates it
func LoadCatalog(r io.Reader) (*Catalog, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var file catalogFile
	if err := dec.Decode(&file); err != nil {
		return nil, apperr.WrapWithCode(err, apperr.CodeValidation, "failed to decode ability catalog")
	}
	if len(file.Abilities) == 0 {
		return nil, apperr.Validationf("ability catalog is empty")
	}

	return NewCatalog(file.Abilities)
}

// LoadCatalogFile loads a catalog from disk
func LoadCatalogFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperr.Wrapf(err, "failed to open ability catalog %s", path)
	}
	defer f.Close()

	return LoadCatalog(f)
}

// DefaultCatalog loads the catalog shipped with the engine
func DefaultCatalog() (*Catalog, error) {
	return LoadCatalog(bytes.NewReader(defaultCatalogYAML))
}
