// Package baseline persists named reference images and their metadata.
//
// Layout: one <name>.png per baseline plus a single metadata.json mapping
// names to provenance records. Image bytes on disk are the source of truth
// for pixel content; metadata carries provenance only. The store assumes a
// single writer per directory: every mutation rewrites metadata.json in full.
package baseline

import (
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/disintegration/imaging"
)

// MetadataFileName is the metadata file kept alongside baseline images.
const MetadataFileName = "metadata.json"

// Meta is the stored provenance record for one baseline.
type Meta struct {
	Created float64 `json:"created,omitempty"`
	Updated float64 `json:"updated,omitempty"`
	Hash    string  `json:"hash,omitempty"`
	Size    []int   `json:"size,omitempty"`
	Path    string  `json:"path,omitempty"`
}

// Store manages baseline images under a single directory.
type Store struct {
	dir  string
	meta map[string]Meta
}

// Open prepares a baseline store at dir, creating the directory when missing.
// A corrupt or absent metadata file loads as empty; the image files on disk
// remain authoritative for what baselines exist.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create baselines dir: %w", err)
	}
	s := &Store{dir: dir, meta: map[string]Meta{}}
	data, err := os.ReadFile(s.metadataPath())
	if err == nil {
		if jsonErr := json.Unmarshal(data, &s.meta); jsonErr != nil {
			s.meta = map[string]Meta{}
		}
	}
	return s, nil
}

// Dir returns the store directory.
func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) metadataPath() string {
	return filepath.Join(s.dir, MetadataFileName)
}

// Path returns the image path for a baseline name.
func (s *Store) Path(name string) string {
	return filepath.Join(s.dir, name+".png")
}

// Exists reports whether a baseline image is on disk.
func (s *Store) Exists(name string) bool {
	_, err := os.Stat(s.Path(name))
	return err == nil
}

// Meta returns the stored metadata record for a name, if any.
func (s *Store) Meta(name string) (Meta, bool) {
	m, ok := s.meta[name]
	return m, ok
}

// Load reads a baseline image from disk.
func (s *Store) Load(name string) (image.Image, error) {
	img, err := imaging.Open(s.Path(name))
	if err != nil {
		return nil, fmt.Errorf("load baseline %q: %w", name, err)
	}
	return img, nil
}

// Create writes a brand-new baseline image and records its metadata.
func (s *Store) Create(name string, img image.Image, hash string) (string, error) {
	path := s.Path(name)
	if err := imaging.Save(img, path); err != nil {
		return "", fmt.Errorf("save baseline %q: %w", name, err)
	}
	s.meta[name] = Meta{
		Created: epochSeconds(),
		Hash:    hash,
		Size:    []int{img.Bounds().Dx(), img.Bounds().Dy()},
	}
	if err := s.saveMetadata(); err != nil {
		return "", err
	}
	return path, nil
}

// Update overwrites (or creates) a baseline, refreshing hash, size and the
// updated timestamp while preserving the original creation timestamp.
func (s *Store) Update(name string, img image.Image, hash string) (string, error) {
	path := s.Path(name)
	if err := imaging.Save(img, path); err != nil {
		return "", fmt.Errorf("save baseline %q: %w", name, err)
	}
	now := epochSeconds()
	m := Meta{
		Created: now,
		Updated: now,
		Hash:    hash,
		Size:    []int{img.Bounds().Dx(), img.Bounds().Dy()},
	}
	if prev, ok := s.meta[name]; ok && prev.Created != 0 {
		m.Created = prev.Created
	}
	s.meta[name] = m
	if err := s.saveMetadata(); err != nil {
		return "", err
	}
	return path, nil
}

// Delete removes a baseline image and its metadata entry. It reports whether
// anything was removed; deleting an unknown name is not an error.
func (s *Store) Delete(name string) (bool, error) {
	path := s.Path(name)
	if _, err := os.Stat(path); err != nil {
		return false, nil
	}
	if err := os.Remove(path); err != nil {
		return false, fmt.Errorf("delete baseline %q: %w", name, err)
	}
	if _, ok := s.meta[name]; ok {
		delete(s.meta, name)
		if err := s.saveMetadata(); err != nil {
			return true, err
		}
	}
	return true, nil
}

// List enumerates baseline images on disk. The file set is authoritative:
// entries with no stored metadata get a synthesized minimal record, which
// keeps the store usable after metadata corruption or manual file copies.
func (s *Store) List() (map[string]Meta, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("list baselines: %w", err)
	}
	out := map[string]Meta{}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".png") {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), ".png")
		if m, ok := s.meta[name]; ok {
			out[name] = m
			continue
		}
		m := Meta{Path: filepath.Join(s.dir, entry.Name())}
		if f, err := os.Open(m.Path); err == nil {
			if cfg, err := png.DecodeConfig(f); err == nil {
				m.Size = []int{cfg.Width, cfg.Height}
			}
			_ = f.Close()
		}
		out[name] = m
	}
	return out, nil
}

func (s *Store) saveMetadata() error {
	data, err := json.MarshalIndent(s.meta, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.metadataPath(), data, 0o644); err != nil {
		return fmt.Errorf("save metadata: %w", err)
	}
	return nil
}

func epochSeconds() float64 {
	return float64(time.Now().UnixNano()) / float64(time.Second)
}
