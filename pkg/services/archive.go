package services

import (
	"archive/tar"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// ErrEmptyArtifact is returned when the build output holds no files to pack.
var ErrEmptyArtifact = errors.New("build artifact is missing or empty")

// PackageSite compresses the contents of srcDir into a tar.gz archive at
// destFile. Member paths are relative to srcDir so extraction at the remote
// root reproduces the same layout without a wrapping directory.
func PackageSite(srcDir, destFile string) error {
	info, err := os.Stat(srcDir)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEmptyArtifact, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", ErrEmptyArtifact, srcDir)
	}

	out, err := os.Create(destFile)
	if err != nil {
		return err
	}
	defer out.Close()

	gz := gzip.NewWriter(out)
	tw := tar.NewWriter(gz)

	fileCount := 0
	err = filepath.WalkDir(srcDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == srcDir {
			return nil
		}

		rel, err := filepath.Rel(srcDir, path)
		if err != nil {
			return err
		}

		fi, err := d.Info()
		if err != nil {
			return err
		}
		hdr, err := tar.FileInfoHeader(fi, "")
		if err != nil {
			return err
		}
		hdr.Name = filepath.ToSlash(rel)
		if d.IsDir() {
			hdr.Name += "/"
		}
		if err := tw.WriteHeader(hdr); err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		if _, err := io.Copy(tw, f); err != nil {
			return err
		}
		fileCount++
		return nil
	})
	if err != nil {
		return err
	}

	if err := tw.Close(); err != nil {
		return err
	}
	if err := gz.Close(); err != nil {
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	if fileCount == 0 {
		os.Remove(destFile)
		return ErrEmptyArtifact
	}
	return nil
}
