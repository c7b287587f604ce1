package csvwriter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/imu-csv-splitter/internal/types"
)

func record(fields ...string) types.Record {
	var rec types.Record
	copy(rec.Fields[:], fields)
	return rec
}

func TestProjectionWriter(t *testing.T) {
	dir := t.TempDir()
	accPath := filepath.Join(dir, "acc_data.csv")
	magPath := filepath.Join(dir, "mag_data.csv")

	acc, err := Create(accPath)
	require.NoError(t, err)
	mag, err := Create(magPath)
	require.NoError(t, err)

	recs := []types.Record{
		record("1", "2", "3", "4", "5", "6\n"),
		record("7", "8", "9", "10", "11", "12"),
	}
	for _, rec := range recs {
		require.NoError(t, acc.WriteAcc(rec))
		require.NoError(t, mag.WriteMag(rec))
	}

	assert.Equal(t, 2, acc.Rows())
	assert.Equal(t, accPath, acc.Path())
	require.NoError(t, acc.Close())
	require.NoError(t, mag.Close())

	accData, err := os.ReadFile(accPath)
	require.NoError(t, err)
	assert.Equal(t, "1, 2, 3\n7, 8, 9\n", string(accData))

	magData, err := os.ReadFile(magPath)
	require.NoError(t, err)
	assert.Equal(t, "4, 5, 6\n10, 11, 12", string(magData))
}

func TestCreateTruncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "acc_data.csv")
	require.NoError(t, os.WriteFile(path, []byte("stale content that is long\n"), 0644))

	w, err := Create(path)
	require.NoError(t, err)
	require.NoError(t, w.WriteAcc(record("a", "b", "c", "d", "e", "f")))
	require.NoError(t, w.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a, b, c\n", string(data))
}

func TestCreateMissingDirectory(t *testing.T) {
	_, err := Create(filepath.Join(t.TempDir(), "missing", "acc_data.csv"))
	require.Error(t, err)
}
