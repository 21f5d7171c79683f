package providers

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/ja-he/snippet/internal/model"
)

// ErrNoCatalog is returned by FindCatalogFile if no candidate file exists.
var ErrNoCatalog = errors.New("no catalog file found")

// CatalogFileNames are the file names a catalog is looked for under, in
// order of preference.
var CatalogFileNames = []string{
	"snippets.yaml",
	"snippets.yml",
	"snippets.toml",
	"snippets.xml",
}

// FileCatalogProvider loads a catalog from a single file. The format is
// chosen by the file's extension: YAML (.yaml, .yml), TOML (.toml) or XML
// (.xml).
type FileCatalogProvider struct {
	Path string
}

// NewFileCatalogProvider returns a provider for the catalog file at path.
func NewFileCatalogProvider(path string) *FileCatalogProvider {
	return &FileCatalogProvider{Path: path}
}

// Load reads and decodes the catalog file.
func (p *FileCatalogProvider) Load() (*model.Catalog, error) {
	data, err := os.ReadFile(p.Path)
	if err != nil {
		return nil, fmt.Errorf("could not read catalog (%w)", err)
	}

	catalog, err := DecodeCatalog(filepath.Ext(p.Path), data)
	if err != nil {
		return nil, fmt.Errorf("could not decode catalog '%s' (%w)", p.Path, err)
	}
	return catalog, nil
}

// DecodeCatalog decodes catalog data in the format given by the file
// extension ext (including the leading dot).
func DecodeCatalog(ext string, data []byte) (*model.Catalog, error) {
	catalog := &model.Catalog{}

	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, catalog); err != nil {
			return nil, err
		}
	case ".toml":
		if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(catalog); err != nil {
			return nil, err
		}
	case ".xml":
		if err := xml.Unmarshal(data, catalog); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown catalog format '%s'", ext)
	}

	return catalog, nil
}

// FindCatalogFile returns the path of the first catalog file found in any of
// the given directories, trying CatalogFileNames in each.
func FindCatalogFile(dirs ...string) (string, error) {
	for _, dir := range dirs {
		for _, name := range CatalogFileNames {
			candidate := filepath.Join(dir, name)
			info, err := os.Stat(candidate)
			if err == nil && !info.IsDir() {
				return candidate, nil
			}
		}
	}
	return "", fmt.Errorf("%w (looked in %s)", ErrNoCatalog, strings.Join(dirs, ", "))
}
