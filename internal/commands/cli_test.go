package commands_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var binaryPath string

func TestMain(m *testing.M) {
	// Build the binary once for all tests.
	tmpDir, err := os.MkdirTemp("", "ledgerlab-test-*")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(tmpDir)

	binaryPath = filepath.Join(tmpDir, "ledgerlab")
	cmd := exec.Command("go", "build", "-o", binaryPath, "../../cmd/ledgerlab")
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		panic("failed to build binary: " + err.Error())
	}

	os.Exit(m.Run())
}

func runLedgerlab(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := exec.Command(binaryPath, args...)
	out, err := cmd.CombinedOutput()
	return string(out), err
}

func TestInit_CreatesWorkspace(t *testing.T) {
	dir := t.TempDir()
	_, err := runLedgerlab(t, "init", dir)
	require.NoError(t, err)

	for _, name := range []string{
		"ledgerlab.yaml",
		"trial-balance.csv",
		"journal.csv",
		"purchases.csv",
		"sales.csv",
	} {
		_, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err, "%s should exist", name)
	}

	data, err := os.ReadFile(filepath.Join(dir, "ledgerlab.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "revenue_accounts")
}

func TestStatements_SampleData(t *testing.T) {
	out, err := runLedgerlab(t, "statements")
	require.NoError(t, err)

	assert.Contains(t, out, "Income Statement")
	assert.Contains(t, out, "Net Income")
	assert.Contains(t, out, "6000.00")
	// The sample trial balance is intentionally lopsided.
	assert.Contains(t, out, "does NOT balance")
	assert.Contains(t, out, "Cash Flow Statement")
	assert.Contains(t, out, "-2800.00")
}

func TestStatements_FromInitializedWorkspace(t *testing.T) {
	dir := t.TempDir()
	_, err := runLedgerlab(t, "init", dir)
	require.NoError(t, err)

	outDir := filepath.Join(dir, "exports")
	out, err := runLedgerlab(t, "statements",
		"--input", filepath.Join(dir, "trial-balance.csv"),
		"--out", outDir)
	require.NoError(t, err)
	assert.Contains(t, out, "Net Income")

	for _, name := range []string{"income-statement.csv", "balance-sheet.csv", "cash-flow.csv"} {
		_, err := os.Stat(filepath.Join(outDir, name))
		require.NoError(t, err, "%s should be exported", name)
	}
}

func TestCycle_SampleData(t *testing.T) {
	out, err := runLedgerlab(t, "cycle")
	require.NoError(t, err)

	assert.Contains(t, out, "Ledger Accounts")
	assert.Contains(t, out, "Adjusted Trial Balance")
	// Revenue 2500, expenses 2000 (rent 800 plus supplies used 1200).
	assert.Contains(t, out, "Total Revenue")
	assert.Contains(t, out, "2500.00")
	assert.Contains(t, out, "2000.00")
	assert.Contains(t, out, "500.00")
	assert.Contains(t, out, "Liabilities + Equity")
}

func TestDepreciation_StraightLine(t *testing.T) {
	out, err := runLedgerlab(t, "depreciation",
		"--method", "sl", "--cost", "10000", "--salvage", "1000", "--life", "5")
	require.NoError(t, err)

	assert.Contains(t, out, "1800.00")
	assert.Contains(t, out, "9000.00")
}

func TestDepreciation_UnitsOfProductionFlags(t *testing.T) {
	out, err := runLedgerlab(t, "depreciation",
		"--method", "uop", "--cost", "10000", "--salvage", "1000", "--life", "3",
		"--total-units", "9000", "--units", "4000,3000,2000")
	require.NoError(t, err)
	assert.Contains(t, out, "4000.00")
	assert.Contains(t, out, "2000.00")
}

func TestDepreciation_InvalidLife(t *testing.T) {
	out, err := runLedgerlab(t, "depreciation", "--method", "sl", "--life", "0")
	require.Error(t, err)
	assert.Contains(t, out, "useful life")
}

func TestInventory_PeriodicFIFO(t *testing.T) {
	out, err := runLedgerlab(t, "inventory", "--method", "fifo", "--system", "periodic")
	require.NoError(t, err)

	assert.Contains(t, out, "175.00")
	assert.Contains(t, out, "105.00")
	assert.Contains(t, out, "Step-by-Step Flow")
}

func TestInventory_PerpetualLIFO(t *testing.T) {
	out, err := runLedgerlab(t, "inventory", "--method", "lifo", "--system", "perpetual")
	require.NoError(t, err)

	assert.Contains(t, out, "200.00")
	assert.Contains(t, out, "80.00")
}

func TestInventory_UnknownMethod(t *testing.T) {
	out, err := runLedgerlab(t, "inventory", "--method", "hifo")
	require.Error(t, err)
	assert.Contains(t, out, "unknown method")
}
