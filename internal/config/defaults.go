package config

import "embed"

//go:embed defaults/vs.json defaults/languages.json
var defaultsFS embed.FS

// readDefault returns the bundled file defaults/<name>.
func readDefault(name string) ([]byte, error) {
	return defaultsFS.ReadFile("defaults/" + name)
}
