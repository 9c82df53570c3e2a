package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emiliopalmerini/mcba/internal/analysis"
	"github.com/emiliopalmerini/mcba/internal/domain"
)

// runCLI executes the root command with args and returns stdout.
// Flag variables are package globals, so they are reset first.
func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	inputPath, useDemo, envFile = "", false, ""
	rankStats = false
	exportOutput = ""
	reportOutput, reportTitle = "report.pdf", "Treatment cost-benefit comparison"
	servePort = 0

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(append(args, "--env-file", filepath.Join(t.TempDir(), "missing.env")))

	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func demoRanked() []domain.Treatment {
	return analysis.Analyze(domain.DemoTreatments())
}

func TestRankCommand_Demo(t *testing.T) {
	out, err := runCLI(t, "", "rank", "--demo")
	require.NoError(t, err)

	for _, want := range []string{"Rank", "Precision irrigation upgrade", "300,000", "1.94", "0.94"} {
		assert.Contains(t, out, want)
	}
	assert.Less(t,
		strings.Index(out, "Precision irrigation upgrade"),
		strings.Index(out, "Control / Current practice"),
		"highest NPV should be listed first")
}

func TestRankCommand_Empty(t *testing.T) {
	out, err := runCLI(t, "", "rank")
	require.NoError(t, err)
	assert.Equal(t, analysis.EmptySummaryPrompt+"\n", out)
}

func TestRankCommand_Stats(t *testing.T) {
	out, err := runCLI(t, "", "rank", "--demo", "--stats")
	require.NoError(t, err)
	assert.Contains(t, out, "$1,660,000")
}

func TestDemoCommand(t *testing.T) {
	out, err := runCLI(t, "", "demo")
	require.NoError(t, err)
	assert.Contains(t, out, analysis.Summarize(demoRanked()))
}

func TestSummaryCommand(t *testing.T) {
	out, err := runCLI(t, "", "summary", "--demo")
	require.NoError(t, err)
	assert.Equal(t, analysis.Summarize(demoRanked())+"\n", out)
}

func TestCardsCommand(t *testing.T) {
	out, err := runCLI(t, "", "cards", "--demo")
	require.NoError(t, err)
	assert.Contains(t, out, "#1 Precision irrigation upgrade")
	assert.Contains(t, out, "NPV $300,000")
}

func TestExportCommand_Stdout(t *testing.T) {
	out, err := runCLI(t, "", "export", "--demo")
	require.NoError(t, err)

	want, err := analysis.ToCSV(domain.DemoTreatments())
	require.NoError(t, err)
	assert.Equal(t, want+"\n", out)
}

func TestExportCommand_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")

	_, err := runCLI(t, "", "export", "--demo", "-o", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), strings.Join(analysis.CSVHeader, ",")+"\n"))
}

func TestExportCommand_EmptyIsRefused(t *testing.T) {
	out, err := runCLI(t, "", "export")
	require.ErrorIs(t, err, analysis.ErrNoTreatments)
	assert.Empty(t, out)
}

func TestExportCommand_FromInputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trial.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`treatments:
  - name: Mulch
    pv_benefits: "12,000"
    pv_costs: 8000
`), 0o644))

	out, err := runCLI(t, "", "export", "-i", path)
	require.NoError(t, err)
	assert.Contains(t, out, `"Mulch",12000,8000,4000,1.5,0.5,""`)
}

func TestReportCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.pdf")

	_, err := runCLI(t, "", "report", "--demo", "-o", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestReportCommand_EmptyIsRefused(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.pdf")

	_, err := runCLI(t, "", "report", "-o", path)
	require.ErrorIs(t, err, analysis.ErrNoTreatments)
	assert.NoFileExists(t, path)
}

func TestWatchCommand_RequiresInput(t *testing.T) {
	_, err := runCLI(t, "", "watch")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--input")
}

func TestInputAndDemoConflict(t *testing.T) {
	_, err := runCLI(t, "", "rank", "--demo", "-i", "x.yaml")
	require.Error(t, err)
}

func TestSessionCommand(t *testing.T) {
	out, err := runCLI(t, "add Mulch|1000|400|cheap\nsummary\nquit\n", "session")
	require.NoError(t, err)
	assert.Contains(t, out, "Added #1 Mulch (NPV $600).")
	assert.Contains(t, out, "Mulch has the highest NPV at $600")
}
