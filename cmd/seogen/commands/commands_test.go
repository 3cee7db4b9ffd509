package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/require"

	ferrors "git.home.luguber.info/inful/seogen/internal/foundation/errors"
	"git.home.luguber.info/inful/seogen/internal/metrics"
)

// run parses args the way main does and executes the selected command.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("seogen"),
		kong.Vars{"version": "test"},
		kong.Exit(func(int) { t.Fatalf("unexpected exit for %v", args) }),
	)
	require.NoError(t, err)
	kctx, err := parser.Parse(args)
	require.NoError(t, err)

	var out bytes.Buffer
	err = kctx.Run(&Global{Ctx: t.Context(), Stdout: &out}, cli)
	return out.String(), err
}

func TestGenerate_IsDefaultCommand(t *testing.T) {
	t.Chdir(t.TempDir())

	out, err := run(t, "--run-date", "2025-03-14")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "Generated 110 programmatic SEO pages\n"), out)
	require.Contains(t, out, "   - 75 Industry pages")

	_, err = os.Stat(filepath.Join("public", "sitemap-programmatic.xml"))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join("public", "vs", "erase-bg", "index.html"))
	require.NoError(t, err)
}

func TestGenerate_Overrides(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := run(t, "generate", "-o", "site", "--base-url", "https://example.com/", "--concurrency", "1")
	require.NoError(t, err)

	body, err := os.ReadFile(filepath.Join("site", "for", "no-watermark", "index.html"))
	require.NoError(t, err)
	require.Contains(t, string(body), `href="https://example.com/for/no-watermark/"`)
}

func TestGenerate_BadDimensionsFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile("dims.yaml", []byte(`
competitors:
  - slug: "Bad Slug!"
    name: Bad
`), 0o600))
	require.NoError(t, os.WriteFile("seogen.yaml", []byte("dimensions:\n  file: dims.yaml\n"), 0o600))

	_, err := run(t)
	require.Error(t, err)
	require.True(t, ferrors.HasCategory(err, ferrors.CategoryValidation))
	require.Equal(t, 2, ferrors.NewCLIErrorAdapter(false, nil).ExitCodeFor(err))

	_, statErr := os.Stat("public")
	require.True(t, os.IsNotExist(statErr), "no output may be written")
}

func TestValidateAndPlan(t *testing.T) {
	t.Chdir(t.TempDir())

	out, err := run(t, "validate")
	require.NoError(t, err)
	require.Equal(t, "Dimension tables are valid: 110 pages planned\n", out)

	out, err = run(t, "plan", "--base-url", "https://example.com")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 111)
	require.True(t, strings.HasPrefix(lines[0], "KIND"))
	require.Contains(t, lines[1], "https://example.com/vs/")
	require.Contains(t, lines[110], "p/")

	_, err = os.Stat("public")
	require.True(t, os.IsNotExist(err))
}

func TestValidateAndPlan_LeaveLedgerUntouched(t *testing.T) {
	t.Chdir(t.TempDir())
	require.NoError(t, os.WriteFile("seogen.yaml", []byte("ledger:\n  path: state/ledger.db\n"), 0o600))

	_, err := run(t, "validate")
	require.NoError(t, err)
	_, err = run(t, "plan")
	require.NoError(t, err)

	_, err = os.Stat("state")
	require.True(t, os.IsNotExist(err), "read-only commands must not open the ledger")
}

func TestWatchRegenerator_MetricsAccumulateAcrossPasses(t *testing.T) {
	t.Chdir(t.TempDir())
	require.NoError(t, os.WriteFile("seogen.yaml", []byte("metrics:\n  textfile: seogen.prom\n"), 0o600))

	cmd := &WatchCmd{}
	regen := cmd.regenerator(&CLI{Config: "seogen.yaml"}, metrics.NewPrometheusRecorder(nil))
	require.NoError(t, regen(t.Context(), "startup"))
	require.NoError(t, regen(t.Context(), "file_change"))

	data, err := os.ReadFile("seogen.prom")
	require.NoError(t, err)
	text := string(data)
	require.Contains(t, text, `seogen_run_outcomes_total{outcome="success"} 2`)
	require.Contains(t, text, `seogen_pages_generated_total{kind="industry"} 150`)
}

func TestStale_RequiresLedger(t *testing.T) {
	t.Chdir(t.TempDir())
	_, err := run(t, "stale")
	require.True(t, ferrors.HasCategory(err, ferrors.CategoryConfig))
}

func TestStale_AfterGenerate(t *testing.T) {
	t.Chdir(t.TempDir())
	require.NoError(t, os.WriteFile("seogen.yaml", []byte("ledger:\n  path: state/ledger.db\n"), 0o600))

	_, err := run(t)
	require.NoError(t, err)

	out, err := run(t, "stale")
	require.NoError(t, err)
	require.Equal(t, "No stale pages\n", out)
}

func TestInit(t *testing.T) {
	t.Chdir(t.TempDir())

	out, err := run(t, "init")
	require.NoError(t, err)
	require.Equal(t, "Wrote example configuration to seogen.yaml\n", out)

	_, err = run(t, "init")
	require.ErrorContains(t, err, "already exists")

	_, err = run(t, "init", "--force")
	require.NoError(t, err)
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "seogen "), out)
}
