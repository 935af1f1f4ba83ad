package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/conn-castle/vs-layout/internal/catalog"
	"github.com/conn-castle/vs-layout/internal/messages"
)

// LoadChannels reads the channel list at path, writing the bundled default
// there first when the file does not exist.
func LoadChannels(path string) ([]catalog.Channel, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		data, err = seedChannels(path)
		if err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, fmt.Errorf(messages.ConfigReadChannelsFmt, path, err)
	}
	return ParseChannels(data, path)
}

// DefaultChannels returns the bundled channel list.
func DefaultChannels() ([]catalog.Channel, error) {
	data, err := readDefault("vs.json")
	if err != nil {
		return nil, fmt.Errorf(messages.ConfigReadChannelsFmt, "defaults/vs.json", err)
	}
	return ParseChannels(data, "defaults/vs.json")
}

// ParseChannels decodes a channel list. Unknown keys are ignored; every entry
// needs both URLs.
func ParseChannels(data []byte, source string) ([]catalog.Channel, error) {
	var channels []catalog.Channel
	if err := json.Unmarshal(data, &channels); err != nil {
		return nil, fmt.Errorf(messages.ConfigParseChannelsFmt, source, err)
	}
	for i, ch := range channels {
		if strings.TrimSpace(ch.DetailURL) == "" || strings.TrimSpace(ch.DownloaderURL) == "" {
			return nil, fmt.Errorf(messages.ConfigChannelMissingURLFmt, source, i+1, ch.Name)
		}
	}
	return channels, nil
}

func seedChannels(path string) ([]byte, error) {
	data, err := readDefault("vs.json")
	if err != nil {
		return nil, fmt.Errorf(messages.ConfigSeedChannelsFmt, path, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf(messages.ConfigCreateAppDirFmt, filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return nil, fmt.Errorf(messages.ConfigSeedChannelsFmt, path, err)
	}
	return data, nil
}

// FindChannel resolves ref against channels. ref may be a 1-based list
// index, a channel name (case-insensitive) or a channel id such as "vs-2022";
// an id shared by several channels resolves to the first.
func FindChannel(channels []catalog.Channel, ref string) (catalog.Channel, bool) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return catalog.Channel{}, false
	}
	if index, err := strconv.Atoi(ref); err == nil {
		if index >= 1 && index <= len(channels) {
			return channels[index-1], true
		}
		return catalog.Channel{}, false
	}
	for _, ch := range channels {
		if strings.EqualFold(strings.TrimSpace(ch.Name), ref) {
			return ch, true
		}
	}
	for _, ch := range channels {
		if strings.EqualFold(ch.ID(), ref) {
			return ch, true
		}
	}
	return catalog.Channel{}, false
}
