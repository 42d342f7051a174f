package files

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, dir, name string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("Name,Class,Subject,Score\n"), 0644))
}

func TestListDatasets(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "student_scores_100.csv")
	touch(t, dir, "student_scores_10000.csv")
	touch(t, dir, "uploaded.xlsx")
	touch(t, dir, "notes.txt")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "reports"), 0755))

	datasets, err := NewDiscovery(dir).ListDatasets()
	require.NoError(t, err)
	require.Len(t, datasets, 3, "only csv and xlsx files are datasets")

	byName := make(map[string]DatasetInfo)
	for _, ds := range datasets {
		byName[ds.Name] = ds
	}

	assert.Equal(t, 100, byName["student_scores_100.csv"].NumRecords)
	assert.Equal(t, 10000, byName["student_scores_10000.csv"].NumRecords)
	assert.Zero(t, byName["uploaded.xlsx"].NumRecords, "unconventional names carry no count")
	assert.NotZero(t, byName["uploaded.xlsx"].Size)
}

func TestListDatasetsMissingDir(t *testing.T) {
	_, err := NewDiscovery(filepath.Join(t.TempDir(), "nope")).ListDatasets()
	require.Error(t, err)
}

func TestListDatasetsEmpty(t *testing.T) {
	datasets, err := NewDiscovery(t.TempDir()).ListDatasets()
	require.NoError(t, err)
	assert.Empty(t, datasets)
}
