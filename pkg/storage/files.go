package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// TempDir is the staging area under the media root. Files live here between
// temp-save and finalize and are deleted on promotion or discard.
const TempDir = "tmp"

// Store is a local-disk file store with write-to-temp then move-to-permanent
// semantics. All paths returned and accepted are relative to the media root so
// they can be persisted and served by stable path.
type Store struct {
	root string
}

func New(root string) *Store {
	return &Store{root: root}
}

// Abs resolves a stored relative path to its location on disk.
func (s *Store) Abs(rel string) string {
	return filepath.Join(s.root, rel)
}

// SaveTemp writes an upload into the staging area keyed by its original
// filename, overwriting any previous upload with the same name.
func (s *Store) SaveTemp(filename string, r io.Reader) (string, error) {
	rel := filepath.Join(TempDir, filepath.Base(filename))
	if err := s.write(rel, r); err != nil {
		return "", err
	}
	return rel, nil
}

// Save writes an upload directly into permanent storage under subdir.
func (s *Store) Save(subdir, filename string, r io.Reader) (string, error) {
	rel := filepath.Join(subdir, filepath.Base(filename))
	if err := s.write(rel, r); err != nil {
		return "", err
	}
	return rel, nil
}

// Promote moves a staged file into permanent storage under subdir/finalName
// and removes the temp file. Falls back to copy+remove when rename crosses
// filesystems.
func (s *Store) Promote(tmpRel, subdir, finalName string) (string, error) {
	destRel := filepath.Join(subdir, filepath.Base(finalName))
	src := s.Abs(tmpRel)
	dest := s.Abs(destRel)

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return "", fmt.Errorf("storage: create dir: %w", err)
	}

	if err := os.Rename(src, dest); err != nil {
		in, openErr := os.Open(src)
		if openErr != nil {
			return "", fmt.Errorf("storage: promote %s: %w", tmpRel, openErr)
		}
		defer in.Close()
		out, createErr := os.Create(dest)
		if createErr != nil {
			return "", fmt.Errorf("storage: promote %s: %w", tmpRel, createErr)
		}
		if _, copyErr := io.Copy(out, in); copyErr != nil {
			out.Close()
			return "", fmt.Errorf("storage: promote %s: %w", tmpRel, copyErr)
		}
		if err := out.Close(); err != nil {
			return "", err
		}
		if err := os.Remove(src); err != nil {
			return "", err
		}
	}
	return destRel, nil
}

// Remove deletes a stored file. Missing files are not an error so discard
// paths stay idempotent.
func (s *Store) Remove(rel string) error {
	if rel == "" {
		return nil
	}
	err := os.Remove(s.Abs(rel))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Exists reports whether a stored path is present on disk.
func (s *Store) Exists(rel string) bool {
	if rel == "" {
		return false
	}
	_, err := os.Stat(s.Abs(rel))
	return err == nil
}

func (s *Store) write(rel string, r io.Reader) error {
	abs := s.Abs(rel)
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return fmt.Errorf("storage: create dir: %w", err)
	}
	f, err := os.Create(abs)
	if err != nil {
		return fmt.Errorf("storage: create file: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		return fmt.Errorf("storage: write file: %w", err)
	}
	return f.Close()
}
