package config

import (
	"encoding/json"
	"fmt"

	"github.com/conn-castle/vs-layout/internal/catalog"
	"github.com/conn-castle/vs-layout/internal/messages"
)

// Languages returns the bundled installer language list.
func Languages() ([]catalog.Language, error) {
	data, err := readDefault("languages.json")
	if err != nil {
		return nil, fmt.Errorf(messages.ConfigParseLanguagesFmt, err)
	}
	var languages []catalog.Language
	if err := json.Unmarshal(data, &languages); err != nil {
		return nil, fmt.Errorf(messages.ConfigParseLanguagesFmt, err)
	}
	return languages, nil
}
