// Package layout reads an installer offline layout folder and reconciles it
// with a freshly extracted component catalog.
package layout

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/conn-castle/vs-layout/internal/messages"
)

// File names the installer writes into a layout folder.
const (
	DescriptorFile     = "Layout.json"
	CatalogFile        = "Catalog.json"
	CleanedCatalogFile = "Catalog_cleaned.json"
	ArchiveDir         = "Archive"
)

// Descriptor is the subset of Layout.json that records the selection a layout
// was created with. Add entries have the form "<componentId>;<suffix>".
type Descriptor struct {
	ChannelURI     string   `json:"channelUri"`
	Add            []string `json:"add"`
	AddProductLang []string `json:"addProductLang"`
}

// LoadDescriptor reads Layout.json from folder. It returns nil without error
// when the file does not exist.
func LoadDescriptor(folder string) (*Descriptor, error) {
	path := filepath.Join(folder, DescriptorFile)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf(messages.LayoutReadDescriptorFmt, path, err)
	}
	return ParseDescriptor(data, path)
}

// ParseDescriptor decodes Layout.json content; source names it in errors.
func ParseDescriptor(data []byte, source string) (*Descriptor, error) {
	var d Descriptor
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf(messages.LayoutParseDescriptorFmt, source, err)
	}
	return &d, nil
}
