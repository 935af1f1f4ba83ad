package config

import (
	"fmt"
	"strings"

	"github.com/conn-castle/vs-layout/internal/messages"
)

// Validate checks value ranges. path names the source in errors.
func (c *Config) Validate(path string) error {
	if c.Network.TimeoutSeconds < 0 {
		return fmt.Errorf(messages.ConfigTimeoutInvalidFmt, path)
	}
	if c.Network.MaxDownloadMB < 0 {
		return fmt.Errorf(messages.ConfigMaxDownloadInvalidFmt, path)
	}
	for _, lang := range c.Layout.Languages {
		if strings.TrimSpace(lang) == "" {
			return fmt.Errorf(messages.ConfigLanguageEmptyFmt, path)
		}
	}
	return nil
}
