package backup

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestCreateListRestore(t *testing.T) {
	dataDir := t.TempDir()
	backupDir := t.TempDir()

	writeFile(t, filepath.Join(dataDir, "ledger.json"), `{"entries":[]}`)
	writeFile(t, filepath.Join(dataDir, "exports", "transactions.csv"), "id,date\n")

	m := NewManager(dataDir, backupDir)
	m.now = func() time.Time { return time.Date(2024, 7, 1, 10, 30, 0, 0, time.UTC) }

	info, err := m.Create("routine")
	require.NoError(t, err)

	assert.Equal(t, "backup_20240701_103000", info.Name)
	assert.Equal(t, "routine", info.Reason)
	assert.Equal(t, []string{"exports/transactions.csv", "ledger.json"}, info.Files)
	assert.Len(t, info.Digest, 64)

	infos, err := m.List()
	require.NoError(t, err)
	require.Len(t, infos, 1)
	assert.Equal(t, info.Name, infos[0].Name)
	assert.Equal(t, info.Digest, infos[0].Digest)

	dest := t.TempDir()
	require.NoError(t, m.Restore(info.Name, dest))

	got, err := os.ReadFile(filepath.Join(dest, "ledger.json"))
	require.NoError(t, err)
	assert.Equal(t, `{"entries":[]}`, string(got))

	got, err = os.ReadFile(filepath.Join(dest, "exports", "transactions.csv"))
	require.NoError(t, err)
	assert.Equal(t, "id,date\n", string(got))

	// metadata.json is archive bookkeeping, not data.
	_, err = os.Stat(filepath.Join(dest, "metadata.json"))
	assert.True(t, os.IsNotExist(err))
}

func TestCreate_NestedBackupDirExcluded(t *testing.T) {
	dataDir := t.TempDir()
	backupDir := filepath.Join(dataDir, "backups")

	writeFile(t, filepath.Join(dataDir, "ledger.json"), `{"entries":[]}`)

	m := NewManager(dataDir, backupDir)

	base := time.Date(2024, 7, 1, 8, 0, 0, 0, time.UTC)
	for i := 0; i < 2; i++ {
		stamp := base.Add(time.Duration(i) * time.Hour)
		m.now = func() time.Time { return stamp }

		info, err := m.Create("routine")
		require.NoError(t, err)

		assert.Equal(t, []string{"ledger.json"}, info.Files)
		for _, f := range info.Files {
			require.NotContains(t, f, "backups/")
		}
	}

	dest := t.TempDir()
	require.NoError(t, m.Restore("backup_20240701_090000", dest))

	_, err := os.Stat(filepath.Join(dest, "backups"))
	assert.True(t, os.IsNotExist(err))
}

func TestList_EmptyDirectory(t *testing.T) {
	m := NewManager(t.TempDir(), filepath.Join(t.TempDir(), "missing"))

	infos, err := m.List()
	require.NoError(t, err)
	assert.Empty(t, infos)
}

func TestPrune_KeepsNewest(t *testing.T) {
	dataDir := t.TempDir()
	backupDir := t.TempDir()

	writeFile(t, filepath.Join(dataDir, "ledger.json"), "{}")

	m := NewManager(dataDir, backupDir)

	base := time.Date(2024, 7, 1, 8, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		stamp := base.Add(time.Duration(i) * time.Hour)
		m.now = func() time.Time { return stamp }

		_, err := m.Create("routine")
		require.NoError(t, err)
	}

	require.NoError(t, m.Prune(2))

	infos, err := m.List()
	require.NoError(t, err)
	require.Len(t, infos, 2)
	assert.Equal(t, "backup_20240701_100000", infos[0].Name)
	assert.Equal(t, "backup_20240701_090000", infos[1].Name)
}

func TestRestore_MissingArchive(t *testing.T) {
	m := NewManager(t.TempDir(), t.TempDir())
	assert.Error(t, m.Restore("nope", t.TempDir()))
}
