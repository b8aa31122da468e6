package commands_test

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cratchit-dev/cratchit/internal/accounts"
	"github.com/cratchit-dev/cratchit/internal/commands"
	"github.com/cratchit-dev/cratchit/internal/config"
	"github.com/cratchit-dev/cratchit/internal/model"
)

func runCratchit(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := commands.NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args, "--log-level", "error"))
	err := cmd.Execute()
	return out.String(), err
}

func initProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	_, err := runCratchit(t, "init", dir, "--name", "Test Biz")
	require.NoError(t, err)
	return dir
}

func TestInit_CreatesProject(t *testing.T) {
	dir := t.TempDir()
	out, err := runCratchit(t, "init", dir, "--name", "My Company")
	require.NoError(t, err)
	assert.Contains(t, out, "Initialized cratchit project")

	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	require.NoError(t, err)
	assert.Equal(t, "My Company", cfg.Business.Name)

	chart, err := accounts.LoadFile(filepath.Join(dir, cfg.Chart.Path))
	require.NoError(t, err)
	assert.Equal(t, accounts.DefaultChart().Count(), chart.Count())
}

func TestInit_RequiresName(t *testing.T) {
	_, err := runCratchit(t, "init", t.TempDir())
	require.Error(t, err, "init without --name should fail")
}

func TestInit_RefusesExistingProject(t *testing.T) {
	dir := initProject(t)
	_, err := runCratchit(t, "init", dir, "--name", "Again")
	require.Error(t, err)
}

func TestInit_Git(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}
	dir := t.TempDir()
	_, err := runCratchit(t, "init", dir, "--name", "Test Biz", "--git")
	require.NoError(t, err)

	log := exec.Command("git", "log", "--format=%s", "-1")
	log.Dir = dir
	out, err := log.Output()
	require.NoError(t, err)
	assert.Contains(t, string(out), "init: Initialize Test Biz")
}

func TestCountAndIDs(t *testing.T) {
	dir := initProject(t)

	out, err := runCratchit(t, "count", "--repo", dir)
	require.NoError(t, err)
	assert.Equal(t, "16\n", out)

	out, err = runCratchit(t, "ids", "--repo", dir)
	require.NoError(t, err)
	ids := strings.Fields(out)
	assert.Len(t, ids, 16)
	assert.Equal(t, "01", ids[0])
	assert.Equal(t, "05-04", ids[len(ids)-1])
}

func TestIDs_ByType(t *testing.T) {
	dir := initProject(t)

	out, err := runCratchit(t, "ids", "--repo", dir, "--type", "liability")
	require.NoError(t, err)
	assert.Equal(t, []string{"02", "02-01"}, strings.Fields(out))

	out, err = runCratchit(t, "ids", "--repo", dir, "--type", "Income")
	require.NoError(t, err)
	assert.Equal(t, []string{"04", "04-01", "04-02"}, strings.Fields(out))

	out, err = runCratchit(t, "ids", "--repo", dir, "--type", "other")
	require.NoError(t, err)
	assert.Empty(t, strings.TrimSpace(out))

	_, err = runCratchit(t, "ids", "--repo", dir, "--type", "revenue")
	require.Error(t, err)
}

func TestShow(t *testing.T) {
	dir := initProject(t)

	out, err := runCratchit(t, "show", "02-01", "--repo", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Credit Card")
	assert.Contains(t, out, "liability")
	assert.Contains(t, out, "USD")

	_, err = runCratchit(t, "show", "99", "--repo", dir)
	require.Error(t, err)
}

func TestTree(t *testing.T) {
	dir := initProject(t)

	out, err := runCratchit(t, "tree", "--repo", dir)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 16)
	assert.Equal(t, "01  Assets [asset, USD] (placeholder)", lines[0])
	assert.Equal(t, "  01-01  Business Checking [asset, USD]", lines[1])
}

func TestChartFlag_LoadsFixture(t *testing.T) {
	out, err := runCratchit(t, "count", "--chart", filepath.Join("..", "accounts", "testdata", "chart.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "3\n", out)
}

func writeDuplicateChart(t *testing.T) string {
	t.Helper()
	chart := accounts.NewChart()
	chart.AddTopLevelAccount(model.NewAccount("01", "A", "", model.AccountTypeAsset, model.CurrencyUSDollar, false))
	chart.AddTopLevelAccount(model.NewAccount("01", "B", "", model.AccountTypeAsset, model.CurrencyUSDollar, false))
	path := filepath.Join(t.TempDir(), "dup.json")
	require.NoError(t, accounts.SaveFile(path, chart))
	return path
}

func TestCheck(t *testing.T) {
	dir := initProject(t)
	out, err := runCratchit(t, "check", "--repo", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "ok: 16 accounts")

	out, err = runCratchit(t, "check", "--chart", writeDuplicateChart(t))
	require.ErrorIs(t, err, commands.ErrDuplicateIDs)
	assert.Contains(t, out, `account id "01" used 2 times`)
}

func TestDuplicates_LastWinsUnlessStrict(t *testing.T) {
	path := writeDuplicateChart(t)

	out, err := runCratchit(t, "show", "01", "--chart", path)
	require.NoError(t, err)
	assert.Regexp(t, `Name:\s+B\n`, out)

	dir := t.TempDir()
	cfg := config.Default("Strict")
	cfg.Chart.StrictIDs = true
	require.NoError(t, config.Save(filepath.Join(dir, config.FileName), cfg))

	_, err = runCratchit(t, "show", "01", "--repo", dir, "--chart", path)
	require.Error(t, err)
}

func TestExport(t *testing.T) {
	dir := initProject(t)

	out, err := runCratchit(t, "export", "--repo", dir, "--format", "csv")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "account_id,account_name,"))

	_, err = runCratchit(t, "export", "--repo", dir, "--format", "xml")
	require.Error(t, err)

	target := filepath.Join(t.TempDir(), "chart.yaml")
	_, err = runCratchit(t, "export", "--repo", dir, "-o", target)
	require.NoError(t, err)

	chart, err := accounts.LoadFile(target)
	require.NoError(t, err)
	assert.Equal(t, 16, chart.Count())
}

func TestExport_FormatAndOutputConflict(t *testing.T) {
	dir := initProject(t)
	target := filepath.Join(t.TempDir(), "chart.json")

	_, err := runCratchit(t, "export", "--repo", dir, "--format", "csv", "-o", target)
	require.Error(t, err)

	_, statErr := os.Stat(target)
	assert.ErrorIs(t, statErr, os.ErrNotExist, "nothing is written when the flags conflict")
}

func TestAdd(t *testing.T) {
	dir := initProject(t)

	out, err := runCratchit(t, "add", "--repo", dir, "--id", "06", "--name", "Suspense", "--type", "other", "--placeholder")
	require.NoError(t, err)
	assert.Contains(t, out, "Added account 06")

	out, err = runCratchit(t, "show", "06", "--repo", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Suspense")
	assert.Contains(t, out, "other")

	_, err = runCratchit(t, "add", "--repo", dir, "--name", "No ID")
	require.Error(t, err)
}

func TestAdd_CommitsInGitProject(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}
	dir := t.TempDir()
	_, err := runCratchit(t, "init", dir, "--name", "Test Biz", "--git")
	require.NoError(t, err)

	_, err = runCratchit(t, "add", "--repo", dir, "--id", "06", "--name", "Suspense")
	require.NoError(t, err)

	log := exec.Command("git", "log", "--format=%s", "-1")
	log.Dir = dir
	out, err := log.Output()
	require.NoError(t, err)
	assert.Contains(t, string(out), "accounts: add 06 Suspense")
}

func TestMissingChart(t *testing.T) {
	_, err := runCratchit(t, "count", "--repo", t.TempDir())
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
