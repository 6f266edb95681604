package main

import (
	"os"
	"path/filepath"
	"testing"
)

// getBinaryPath returns the path to the ve_audit binary for testing
func getBinaryPath(t *testing.T) string {
	binaryName := "ve_audit"
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := filepath.Join("..", "..", "bin", binaryName)
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		t.Skipf("Binary not found at %s, build it first with 'go build -o bin/ve_audit ./cmd/ve_audit'", binaryPath)
	}

	return binaryPath
}

// occupationRecords is a small DOT extract used by the command tests.
const occupationRecords = `[
	{
		"Code": "169.167-034", "Title": "MANAGER, OFFICE",
		"StrengthNum": 2, "SVPNum": 6, "GEDR": 4, "GEDM": 3, "GEDL": 4,
		"WFData": 3, "WFPeople": 6, "WFThings": 8,
		"WField1Short": "231", "MPSMS1Short": "890"
	},
	{
		"Code": "205.367-014", "Title": "CHARGE-ACCOUNT CLERK",
		"StrengthNum": 1, "SVPNum": 4, "GEDR": 3, "GEDM": 2, "GEDL": 3,
		"WFData": 3, "WFPeople": 6, "WFThings": 8,
		"WField1Short": "231", "MPSMS1Short": "890",
		"StoopingNum": 1
	},
	{
		"Code": "209.587-034", "Title": "MARKER",
		"StrengthNum": 2, "SVPNum": 2, "GEDR": 2, "GEDM": 1, "GEDL": 1,
		"WFData": 5, "WFPeople": 8, "WFThings": 7,
		"WField1Short": "041",
		"StoopingNum": 3
	}
]`

// writeRecords writes occupationRecords to a temp file and returns its path.
func writeRecords(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "records.json")
	if err := os.WriteFile(path, []byte(occupationRecords), 0644); err != nil {
		t.Fatalf("failed to write records: %v", err)
	}
	return path
}
