// Package backup archives the data directory into timestamped zip files and
// restores or prunes them. Each archive carries a metadata.json describing
// its contents and a SHA-256 digest for verification.
package backup

import (
	"archive/zip"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

const metadataName = "metadata.json"

// Info describes one backup archive.
type Info struct {
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	Reason    string    `json:"reason"`
	Files     []string  `json:"files"`
	Digest    string    `json:"digest"`
}

// Manager creates and restores archives of dataDir under backupDir.
type Manager struct {
	dataDir   string
	backupDir string
	now       func() time.Time
}

func NewManager(dataDir, backupDir string) *Manager {
	return &Manager{dataDir: dataDir, backupDir: backupDir, now: time.Now}
}

// Create zips every regular file under the data directory. reason is free
// text recorded in the metadata ("routine", "pre-restore", ...).
func (m *Manager) Create(reason string) (*Info, error) {
	if err := os.MkdirAll(m.backupDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating backup directory: %w", err)
	}

	files, err := m.collectFiles()
	if err != nil {
		return nil, err
	}

	info := &Info{
		Name:      "backup_" + m.now().Format("20060102_150405"),
		CreatedAt: m.now(),
		Reason:    reason,
		Files:     files,
	}

	digest := sha256.New()

	archivePath := filepath.Join(m.backupDir, info.Name+".zip")

	f, err := os.Create(archivePath)
	if err != nil {
		return nil, fmt.Errorf("creating archive: %w", err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)

	for _, rel := range files {
		src, err := os.Open(filepath.Join(m.dataDir, rel))
		if err != nil {
			return nil, fmt.Errorf("opening %s: %w", rel, err)
		}

		dst, err := zw.Create(rel)
		if err != nil {
			src.Close()
			return nil, fmt.Errorf("adding %s: %w", rel, err)
		}

		if _, err := io.Copy(io.MultiWriter(dst, digest), src); err != nil {
			src.Close()
			return nil, fmt.Errorf("copying %s: %w", rel, err)
		}

		src.Close()
	}

	info.Digest = hex.EncodeToString(digest.Sum(nil))

	meta, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding metadata: %w", err)
	}

	mw, err := zw.Create(metadataName)
	if err != nil {
		return nil, fmt.Errorf("adding metadata: %w", err)
	}

	if _, err := mw.Write(meta); err != nil {
		return nil, fmt.Errorf("writing metadata: %w", err)
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("finalizing archive: %w", err)
	}

	return info, nil
}

func (m *Manager) collectFiles() ([]string, error) {
	var files []string

	err := filepath.WalkDir(m.dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			// The backup directory may live inside the data directory;
			// archives must never contain earlier archives.
			if filepath.Clean(path) == filepath.Clean(m.backupDir) {
				return fs.SkipDir
			}

			return nil
		}

		rel, err := filepath.Rel(m.dataDir, path)
		if err != nil {
			return err
		}

		files = append(files, filepath.ToSlash(rel))

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking data directory: %w", err)
	}

	sort.Strings(files)

	return files, nil
}

// List returns the metadata of every archive in the backup directory,
// newest first.
func (m *Manager) List() ([]Info, error) {
	entries, err := os.ReadDir(m.backupDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}

		return nil, fmt.Errorf("reading backup directory: %w", err)
	}

	var infos []Info

	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".zip") {
			continue
		}

		info, err := m.readMetadata(filepath.Join(m.backupDir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("archive %s: %w", e.Name(), err)
		}

		infos = append(infos, *info)
	}

	sort.Slice(infos, func(i, j int) bool {
		return infos[i].CreatedAt.After(infos[j].CreatedAt)
	})

	return infos, nil
}

func (m *Manager) readMetadata(path string) (*Info, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("opening archive: %w", err)
	}
	defer zr.Close()

	for _, f := range zr.File {
		if f.Name != metadataName {
			continue
		}

		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("opening metadata: %w", err)
		}
		defer rc.Close()

		var info Info
		if err := json.NewDecoder(rc).Decode(&info); err != nil {
			return nil, fmt.Errorf("decoding metadata: %w", err)
		}

		return &info, nil
	}

	return nil, fmt.Errorf("no %s in archive", metadataName)
}

// Restore unpacks the named backup into destDir. The archive's metadata
// file is not extracted.
func (m *Manager) Restore(name, destDir string) error {
	zr, err := zip.OpenReader(filepath.Join(m.backupDir, name+".zip"))
	if err != nil {
		return fmt.Errorf("opening archive: %w", err)
	}
	defer zr.Close()

	for _, f := range zr.File {
		if f.Name == metadataName {
			continue
		}

		// Reject entries that would escape the destination.
		target := filepath.Join(destDir, filepath.FromSlash(f.Name))
		if !strings.HasPrefix(target, filepath.Clean(destDir)+string(os.PathSeparator)) {
			return fmt.Errorf("archive entry %q escapes destination", f.Name)
		}

		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", filepath.Dir(target), err)
		}

		rc, err := f.Open()
		if err != nil {
			return fmt.Errorf("opening %s: %w", f.Name, err)
		}

		dst, err := os.Create(target)
		if err != nil {
			rc.Close()
			return fmt.Errorf("creating %s: %w", target, err)
		}

		if _, err := io.Copy(dst, rc); err != nil {
			dst.Close()
			rc.Close()

			return fmt.Errorf("extracting %s: %w", f.Name, err)
		}

		dst.Close()
		rc.Close()
	}

	return nil
}

// Prune deletes all but the keep newest archives.
func (m *Manager) Prune(keep int) error {
	infos, err := m.List()
	if err != nil {
		return err
	}

	if keep < 0 {
		keep = 0
	}

	for _, info := range infos[min(keep, len(infos)):] {
		path := filepath.Join(m.backupDir, info.Name+".zip")
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("removing %s: %w", path, err)
		}
	}

	return nil
}
