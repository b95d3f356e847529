package services

import (
	"archive/tar"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackageSite_RelativePaths(t *testing.T) {
	src := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(src, "posts", "hello"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(src, "index.html"), []byte("<html>home</html>"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(src, "posts", "hello", "index.html"), []byte("<html>post</html>"), 0644))

	dest := filepath.Join(t.TempDir(), "site.tar.gz")
	require.NoError(t, PackageSite(src, dest))

	names, contents := readArchive(t, dest)
	sort.Strings(names)

	// Paths are relative to the artifact root, no wrapping directory.
	assert.Equal(t, []string{"index.html", "posts/", "posts/hello/", "posts/hello/index.html"}, names)
	assert.Equal(t, "<html>home</html>", contents["index.html"])
	assert.Equal(t, "<html>post</html>", contents["posts/hello/index.html"])
}

func TestPackageSite_EmptyArtifact(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "site.tar.gz")

	err := PackageSite(t.TempDir(), dest)
	assert.ErrorIs(t, err, ErrEmptyArtifact)

	_, statErr := os.Stat(dest)
	assert.True(t, os.IsNotExist(statErr), "no archive should be left behind")
}

func TestPackageSite_MissingArtifact(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "site.tar.gz")

	err := PackageSite(filepath.Join(t.TempDir(), "nope"), dest)
	assert.ErrorIs(t, err, ErrEmptyArtifact)
}

func readArchive(t *testing.T, path string) ([]string, map[string]string) {
	t.Helper()

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	gz, err := gzip.NewReader(f)
	require.NoError(t, err)
	tr := tar.NewReader(gz)

	var names []string
	contents := map[string]string{}
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		names = append(names, hdr.Name)
		if hdr.Typeflag == tar.TypeReg {
			data, err := io.ReadAll(tr)
			require.NoError(t, err)
			contents[hdr.Name] = string(data)
		}
	}
	return names, contents
}
