package main

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/sboard"
	"github.com/aretw0/sboard/internal/testutils"
	httpAdapter "github.com/aretw0/sboard/pkg/adapters/http"
	"github.com/aretw0/sboard/pkg/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetFlags restores every flag to its default so runs do not leak state.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) { _ = f.Value.Set(f.DefValue) }
	c.PersistentFlags().VisitAll(reset)
	c.Flags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "sboard version")
}

func TestReports(t *testing.T) {
	path := testutils.WriteProject(t, testutils.SampleProject)

	tests := []struct {
		args     []string
		contains string
	}{
		{[]string{"info"}, "# Sample Board"},
		{[]string{"scenes"}, "| 1 | shot1 | seqA | 100-109 | 1-10 | 10 | 2 |"},
		{[]string{"panels"}, "| shot3 | 1 | panel_p4 | 0-4 | 118-122 | 4 | 0 |"},
		{[]string{"panels", "--scene", "shot2"}, "panel_p3"},
		{[]string{"layers", "--panel", "p1"}, "- Char `./elements/char/char_01.tvg`"},
		{[]string{"graph", "--panel", "p1"}, "Top --> BG"},
		{[]string{"graph", "--panel", "p1", "--highlight"}, "class Sky visited;"},
		{[]string{"library"}, "| mp4 | 2 | clipA | `./library/clips/clipA.mp4` |"},
		{[]string{"validate"}, "Project is valid!"},
	}
	for _, tt := range tests {
		t.Run(tt.args[0], func(t *testing.T) {
			out, err := run(t, append(tt.args, "--file", path)...)
			require.NoError(t, err)
			assert.Contains(t, out, tt.contains)
		})
	}
}

func TestCommandErrors(t *testing.T) {
	path := testutils.WriteProject(t, testutils.SampleProject)

	_, err := run(t, "layers", "--panel", "nope", "--file", path)
	assert.ErrorIs(t, err, domain.ErrReferenceNotFound)

	_, err = run(t, "panels", "--scene", "p1", "--file", path)
	assert.ErrorIs(t, err, domain.ErrStructuralPrecondition)

	_, err = run(t, "info", "--file", filepath.Join(t.TempDir(), "missing.sboard"))
	assert.Error(t, err)

	_, err = run(t, "info", "--doc", "sample", "--dir", t.TempDir())
	assert.ErrorIs(t, err, domain.ErrDocumentNotFound)

	broken := testutils.WriteProject(t, testutils.Mutate(t, `<link out="BG" in="Sky"/>`, `<link out="BG" in="Cloud"/>`))
	_, err = run(t, "validate", "--file", broken)
	assert.ErrorContains(t, err, "validation failed")
}

func TestConfigFile(t *testing.T) {
	path := testutils.WriteProject(t, testutils.SampleProject)
	cfgPath := filepath.Join(t.TempDir(), "sboard.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(fmt.Sprintf("log_level: debug\nfile: %s\n", path)), 0644))

	out, err := run(t, "info", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "# Sample Board")
	assert.Equal(t, "debug", cfg.LogLevel)

	_, err = run(t, "info", "--config", cfgPath, "--log-level", "error")
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.LogLevel)
}

func TestRedisDocuments(t *testing.T) {
	mr := miniredis.RunT(t)
	path := testutils.WriteProject(t, testutils.SampleProject)
	cfgPath := filepath.Join(t.TempDir(), "sboard.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(fmt.Sprintf("redis:\n  addr: %s\n  prefix: \"test:\"\n", mr.Addr())), 0644))

	out, err := run(t, "docs", "push", path, "board", "--config", cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "board\n", out)
	assert.True(t, mr.Exists("test:board"))

	out, err = run(t, "docs", "list", "--config", cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "board\n", out)

	out, err = run(t, "scenes", "--doc", "board", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "shot2")

	_, err = run(t, "docs", "rm", "board", "--config", cfgPath)
	require.NoError(t, err)

	_, err = run(t, "info", "--doc", "board", "--config", cfgPath)
	assert.ErrorIs(t, err, domain.ErrDocumentNotFound)
}

func TestReloaderSwapsProject(t *testing.T) {
	metrics := httpAdapter.NewMetrics()
	r := &reloader{build: func(p *sboard.Project) http.Handler {
		return httpAdapter.NewHandler(p, httpAdapter.WithMetrics(metrics))
	}}

	title := func() string {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/project", nil))
		require.Equal(t, http.StatusOK, w.Code)
		return w.Body.String()
	}

	first, err := sboard.Load(strings.NewReader(testutils.SampleProject))
	require.NoError(t, err)
	r.swap(first)
	assert.Contains(t, title(), "Sample Board")

	second, err := sboard.Load(strings.NewReader(testutils.Mutate(t, `title="Sample Board"`, `title="Revised Board"`)))
	require.NoError(t, err)
	r.swap(second)
	assert.Contains(t, title(), "Revised Board")

	// Instruments survive the swap.
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, w.Body.String(), `sboard_http_requests_total{code="200",route="/project"} 2`)
}

func TestDirectoryDocuments(t *testing.T) {
	path := testutils.WriteProject(t, testutils.SampleProject)
	dir := filepath.Dir(path)

	out, err := run(t, "docs", "list", "--dir", dir)
	require.NoError(t, err)
	assert.Equal(t, "sample.sboard\n", out)

	out, err = run(t, "info", "--doc", "sample", "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "# Sample Board")
}
