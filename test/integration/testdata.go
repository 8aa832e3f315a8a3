package integration

import (
	"os"
	"strconv"
	"testing"
)

// TestData manages test data paths and availability
type TestData struct {
	// CompressedPath is the path to an Oodle compressed blob
	CompressedPath string
	// ExpectedPath is the path to the blob's decompressed bytes (optional)
	ExpectedPath string
	// Size is the decompressed size of CompressedPath
	Size int64
}

// GetTestData returns test data configuration from environment variables
func GetTestData(t *testing.T) *TestData {
	td := &TestData{
		CompressedPath: os.Getenv("OODLE_TEST_COMPRESSED"),
		ExpectedPath:   os.Getenv("OODLE_TEST_EXPECTED"),
	}

	if size := os.Getenv("OODLE_TEST_SIZE"); size != "" {
		n, err := strconv.ParseInt(size, 10, 64)
		if err != nil {
			t.Fatalf("invalid OODLE_TEST_SIZE %q: %v", size, err)
		}
		td.Size = n
	}

	return td
}

// HasCompressed returns true if a compressed sample is available for testing
func (td *TestData) HasCompressed() bool {
	return td.CompressedPath != "" && td.Size > 0 && FileExists(td.CompressedPath)
}

// SkipIfNoCompressed skips the test if no compressed sample is available
func (td *TestData) SkipIfNoCompressed(t *testing.T) {
	t.Helper()
	if !td.HasCompressed() {
		t.Skip("Skipping test: no compressed sample available (set OODLE_TEST_COMPRESSED and OODLE_TEST_SIZE)")
	}
}
