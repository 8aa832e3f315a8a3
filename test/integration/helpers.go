package integration

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// BuildOodleHelper builds the oodle-helper binary and returns the path to it
func BuildOodleHelper(t *testing.T, tags ...string) string {
	t.Helper()

	binPath := filepath.Join(t.TempDir(), "oodle-helper")
	args := []string{"build", "-o", binPath}
	for _, tag := range tags {
		args = append(args, "-tags", tag)
	}
	args = append(args, "./cmd/oodle-helper")

	cmd := exec.Command("go", args...)
	cmd.Dir = filepath.Join("..", "..")
	output, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("Failed to build oodle-helper binary: %v\nOutput: %s", err, output)
	}

	return binPath
}

// RunOodleHelper runs the oodle-helper binary with the given stdin and arguments
func RunOodleHelper(t *testing.T, binPath string, stdin []byte, args ...string) (stdout []byte, stderr string, exitCode int) {
	t.Helper()

	cmd := exec.Command(binPath, args...)
	cmd.Env = append(os.Environ(), "HOME="+t.TempDir())
	cmd.Stdin = bytes.NewReader(stdin)

	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	err := cmd.Run()
	stdout = outBuf.Bytes()
	stderr = errBuf.String()

	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			t.Fatalf("Failed to run oodle-helper: %v", err)
		}
	}

	return stdout, stderr, exitCode
}

// FileExists checks if a file exists
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
