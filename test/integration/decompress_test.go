package integration

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

// TestDecompressCommand tests the 'oodle-helper decompress' command
func TestDecompressCommand(t *testing.T) {
	binPath := BuildOodleHelper(t)

	t.Run("usage", func(t *testing.T) {
		for _, args := range [][]string{
			{},
			{"decompress"},
			{"compress", "16"},
			{"decompress", "16", "only-input"},
			{"--help"},
			{"decompress", "--help"},
			{"--version"},
		} {
			stdout, stderr, code := RunOodleHelper(t, binPath, []byte("data"), args...)
			if code != 1 {
				t.Errorf("args %v: exit code = %d, want 1", args, code)
			}
			if len(stdout) != 0 {
				t.Errorf("args %v: unexpected stdout %q", args, stdout)
			}
			if !strings.Contains(stderr, "Usage:") {
				t.Errorf("args %v: expected usage on stderr, got %q", args, stderr)
			}
		}
	})

	t.Run("invalid size", func(t *testing.T) {
		for _, size := range []string{"0", "67108865", "nope"} {
			_, stderr, code := RunOodleHelper(t, binPath, []byte("data"), "decompress", size)
			if code != 1 {
				t.Errorf("size %s: exit code = %d, want 1", size, code)
			}
			if !strings.Contains(stderr, "invalid decompressed size") {
				t.Errorf("size %s: unexpected stderr %q", size, stderr)
			}
		}
	})

	t.Run("empty input", func(t *testing.T) {
		_, stderr, code := RunOodleHelper(t, binPath, nil, "decompress", "16")
		if code != 1 {
			t.Errorf("exit code = %d, want 1", code)
		}
		if !strings.Contains(stderr, "no input data") {
			t.Errorf("unexpected stderr %q", stderr)
		}
	})

	t.Run("missing input file", func(t *testing.T) {
		dir := t.TempDir()
		out := filepath.Join(dir, "out.bin")
		_, _, code := RunOodleHelper(t, binPath, nil, "decompress", "16", filepath.Join(dir, "missing.bin"), out)
		if code != 1 {
			t.Errorf("exit code = %d, want 1", code)
		}
		if FileExists(out) {
			t.Errorf("output %s was created", out)
		}
	})

	t.Run("failed decompression leaves no output", func(t *testing.T) {
		dir := t.TempDir()
		in := filepath.Join(dir, "in.bin")
		out := filepath.Join(dir, "out.bin")
		if err := os.WriteFile(in, []byte("not oodle"), 0644); err != nil {
			t.Fatal(err)
		}
		_, _, code := RunOodleHelper(t, binPath, nil, "decompress", "16", in, out)
		if code != 1 {
			t.Errorf("exit code = %d, want 1", code)
		}
		if FileExists(out) {
			t.Errorf("output %s was created", out)
		}
	})
}

// TestDecompressSample decompresses a real sample with a binary linked against Oodle
func TestDecompressSample(t *testing.T) {
	td := GetTestData(t)
	td.SkipIfNoCompressed(t)

	binPath := BuildOodleHelper(t, "oodle")

	compressed, err := os.ReadFile(td.CompressedPath)
	if err != nil {
		t.Fatal(err)
	}
	size := strconv.FormatInt(td.Size, 10)

	var expected []byte
	if td.ExpectedPath != "" {
		if expected, err = os.ReadFile(td.ExpectedPath); err != nil {
			t.Fatal(err)
		}
	}

	t.Run("stream mode", func(t *testing.T) {
		stdout, stderr, code := RunOodleHelper(t, binPath, compressed, "decompress", size)
		if code != 0 {
			t.Fatalf("exit code = %d\nStderr: %s", code, stderr)
		}
		if int64(len(stdout)) != td.Size {
			t.Errorf("got %d bytes, want %d", len(stdout), td.Size)
		}
		if expected != nil && !bytes.Equal(stdout, expected) {
			t.Error("decompressed data does not match expected")
		}
	})

	t.Run("file mode", func(t *testing.T) {
		out := filepath.Join(t.TempDir(), "out.bin")
		_, stderr, code := RunOodleHelper(t, binPath, nil, "decompress", size, td.CompressedPath, out)
		if code != 0 {
			t.Fatalf("exit code = %d\nStderr: %s", code, stderr)
		}
		got, err := os.ReadFile(out)
		if err != nil {
			t.Fatal(err)
		}
		if expected != nil && !bytes.Equal(got, expected) {
			t.Error("decompressed data does not match expected")
		}
	})

	t.Run("size mismatch", func(t *testing.T) {
		_, stderr, code := RunOodleHelper(t, binPath, compressed, "decompress", strconv.FormatInt(td.Size+1, 10))
		if code != 1 {
			t.Errorf("exit code = %d, want 1", code)
		}
		if stderr == "" {
			t.Error("expected a diagnostic on stderr")
		}
	})
}
