package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/otiai10/copy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// SetUpFromGoldenFile copies the golden file of the current test in a temp directory.
// The file must exist in directory testdata/.
func SetUpFromGoldenFile(t *testing.T, extension string) string {
	return SetUpFromGoldenFileNamed(t, t.Name()+extension)
}

// SetUpFromGoldenFileNamed copies the given golden file in a temp directory.
func SetUpFromGoldenFileNamed(t *testing.T, filename string) string {
	in := GoldenFileNamed(t, filename)
	return SetUpFromFileContent(t, filepath.Base(filename), string(in))
}

// SetUpFromFileContent creates a temp file with the given content.
func SetUpFromFileContent(t *testing.T, filename string, content string) string {
	fileOut := filepath.Join(t.TempDir(), filename)
	if err := os.WriteFile(fileOut, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return fileOut
}

// SetUpFromGoldenDir copies the golden directory of the current test in a temp directory.
func SetUpFromGoldenDir(t *testing.T) string {
	return SetUpFromGoldenDirNamed(t, t.Name())
}

// SetUpFromGoldenDirNamed copies the given golden directory in a temp directory.
// Tests are free to modify the copy.
func SetUpFromGoldenDirNamed(t *testing.T, testname string) string {
	dirIn := filepath.Join("testdata", testname)
	dirOut := filepath.Join(t.TempDir(), filepath.Base(testname))
	if err := copy.Copy(dirIn, dirOut); err != nil {
		t.Fatalf("failed copying golden dir %s: %v", dirIn, err)
	}
	return dirOut
}

// GoldenFile reads the content of the golden file of the current test.
func GoldenFile(t *testing.T, extension string) []byte {
	return GoldenFileNamed(t, t.Name()+extension)
}

// GoldenFileNamed reads the content of the given golden file.
func GoldenFileNamed(t *testing.T, filename string) []byte {
	path := filepath.Join("testdata", filename)
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed reading golden file %s: %v", path, err)
	}
	return b
}

/* Assertions */

// AssertFileContains checks the exact content of a file.
func AssertFileContains(t *testing.T, filename string, expected string) {
	t.Helper()
	actual, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.Equal(t, expected, string(actual))
}
