package main

// NOTE: Tests in this package mutate package-level hooks (resolvePaths,
// isInteractive, newUI, runInstaller). Do not use t.Parallel() at the top
// level. Each helper restores the hooks via t.Cleanup().

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/conn-castle/vs-layout/internal/catalog"
	"github.com/conn-castle/vs-layout/internal/config"
	"github.com/conn-castle/vs-layout/internal/installer"
	"github.com/conn-castle/vs-layout/internal/wizard"
)

const testDownloaderURL = "https://aka.ms/vs/17/release/vs_enterprise.exe"

const catalogPage = `<!DOCTYPE html>
<html><body><main>
<div data-moniker="vs-2022">
<h2 id="azure-development">Azure development</h2>
<p><strong>ID:</strong> <code>Microsoft.VisualStudio.Workload.Azure</code></p>
<p><strong>Description:</strong> Azure SDKs and tools.</p>
<h2 id="unaffiliated-components">Unaffiliated components</h2>
<table>
<thead><tr><th>Component ID</th><th>Name</th><th>Version</th></tr></thead>
<tbody>
<tr><td>Microsoft.VisualStudio.Component.Git</td><td>Git for Windows</td><td>17.0</td></tr>
<tr><td>Component.Dotfuscator</td><td>PreEmptive Protection - Dotfuscator</td><td>17.0</td></tr>
</tbody>
</table>
</div>
</main></body></html>`

// testEnv is an isolated settings directory with one channel whose catalog
// page is served locally.
type testEnv struct {
	home   string
	server *httptest.Server
	runs   []installerRun
}

type installerRun struct {
	downloaderURL string
	args          string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{home: t.TempDir()}
	env.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(catalogPage))
	}))
	t.Cleanup(env.server.Close)
	t.Setenv(config.EnvHome, env.home)

	channels := []catalog.Channel{{
		Name:          "Test 2022",
		DetailURL:     env.server.URL + "/workload-component-id-vs-enterprise?view=vs-2022",
		DownloaderURL: testDownloaderURL,
	}}
	data, err := json.Marshal(channels)
	if err != nil {
		t.Fatalf("marshal channels: %v", err)
	}
	if err := os.WriteFile(filepath.Join(env.home, "vs.json"), data, 0o644); err != nil {
		t.Fatalf("write channels: %v", err)
	}

	stubInteractive(t, false, nil)
	origRun := runInstaller
	runInstaller = func(_ context.Context, _ *installer.Installer, downloaderURL string, args string) error {
		env.runs = append(env.runs, installerRun{downloaderURL: downloaderURL, args: args})
		return nil
	}
	t.Cleanup(func() { runInstaller = origRun })
	return env
}

func stubInteractive(t *testing.T, interactive bool, ui wizard.UI) {
	t.Helper()
	origInteractive := isInteractive
	origUI := newUI
	isInteractive = func() bool { return interactive }
	newUI = func() wizard.UI { return ui }
	t.Cleanup(func() {
		isInteractive = origInteractive
		newUI = origUI
	})
}

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := execute(append([]string{"vsl"}, args...), &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func writeTestFile(t *testing.T, path string, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// fakeUI answers prompts from a script keyed by prompt title. Unscripted
// prompts keep the preselected values.
type fakeUI struct {
	selects map[string]string
	multi   map[string][]string
	confirm map[string]bool
	err     error
	titles  []string
}

func (f *fakeUI) Select(title string, _ []wizard.Option, current *string) error {
	f.titles = append(f.titles, title)
	if f.err != nil {
		return f.err
	}
	if v, ok := f.selects[title]; ok {
		*current = v
	}
	return nil
}

func (f *fakeUI) MultiSelect(title string, _ []wizard.Option, selected *[]string) error {
	f.titles = append(f.titles, title)
	if f.err != nil {
		return f.err
	}
	if v, ok := f.multi[title]; ok {
		*selected = append([]string(nil), v...)
	}
	return nil
}

func (f *fakeUI) Confirm(title string, value *bool) error {
	f.titles = append(f.titles, title)
	if f.err != nil {
		return f.err
	}
	if v, ok := f.confirm[title]; ok {
		*value = v
	}
	return nil
}

func (f *fakeUI) Note(title string, _ string) error {
	f.titles = append(f.titles, title)
	return f.err
}
