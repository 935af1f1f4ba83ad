package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	toml "github.com/pelletier/go-toml"

	"github.com/conn-castle/vs-layout/internal/messages"
)

// SetValue returns content with key set to raw. An empty raw removes the key.
// The result is re-validated; comments in content are not preserved.
func SetValue(content []byte, source string, key string, raw string) ([]byte, error) {
	field, ok := LookupField(key)
	if !ok {
		return nil, fmt.Errorf(messages.ConfigSetUnknownKeyFmt, key, strings.Join(FieldKeys(), ", "))
	}

	tree, err := loadTree(content)
	if err != nil {
		return nil, fmt.Errorf(messages.ConfigSetParseFmt, source, err)
	}

	raw = strings.TrimSpace(raw)
	if raw == "" {
		if tree.Has(key) {
			if err := tree.Delete(key); err != nil {
				return nil, fmt.Errorf(messages.ConfigSetRenderFmt, source, err)
			}
		}
	} else {
		value, err := parseFieldValue(field, raw)
		if err != nil {
			return nil, fmt.Errorf(messages.ConfigSetInvalidValueFmt, raw, key, err)
		}
		tree.Set(key, value)
	}

	out, err := tree.ToTomlString()
	if err != nil {
		return nil, fmt.Errorf(messages.ConfigSetRenderFmt, source, err)
	}
	if _, err := ParseConfig([]byte(out), source); err != nil {
		return nil, err
	}
	return []byte(out), nil
}

// SetFile applies SetValue to the config file at path, creating it when
// missing.
func SetFile(path string, key string, raw string) error {
	content, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf(messages.ConfigReadFileFmt, path, err)
	}
	updated, err := SetValue(content, path, key, raw)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf(messages.ConfigCreateAppDirFmt, filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, updated, 0o644); err != nil {
		return fmt.Errorf(messages.ConfigWriteFileFmt, path, err)
	}
	return nil
}

func loadTree(content []byte) (*toml.Tree, error) {
	if len(bytes.TrimSpace(content)) == 0 {
		return toml.TreeFromMap(map[string]interface{}{})
	}
	return toml.LoadBytes(content)
}

func parseFieldValue(field FieldDef, raw string) (interface{}, error) {
	switch field.Type {
	case FieldNonNegativeInt:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, err
		}
		if n < 0 {
			return nil, errors.New("must be zero or positive")
		}
		return n, nil
	case FieldStringList:
		var items []interface{}
		for _, part := range strings.Split(raw, ",") {
			if part = strings.TrimSpace(part); part != "" {
				items = append(items, part)
			}
		}
		return items, nil
	default:
		return raw, nil
	}
}
