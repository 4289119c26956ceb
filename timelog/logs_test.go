package timelog

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	v1 "rcauthy.net/rcauthy/rcauthy/v1"
	"rcauthy.net/rcauthy/rcauthy/v1/common"
)

func entry(id string, createdAt time.Time, logType string) v1.LogEntry {
	return v1.LogEntry{
		ID:        id,
		CreatedAt: common.Timestamp{Time: createdAt},
		Type:      logType,
	}
}

func sampleEntries() []v1.LogEntry {
	base := time.Date(2025, 8, 1, 8, 0, 0, 0, time.UTC)
	return []v1.LogEntry{
		entry("r2", base.AddDate(0, 0, 1), v1.TypeOnline),
		entry("r1", base, v1.TypeOnsite),
		entry("r4", base.AddDate(0, 0, 3), v1.TypeOnsite),
		entry("r3", base.AddDate(0, 0, 2), v1.TypeOnline),
	}
}

func ids(entries []v1.LogEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.ID
	}
	return out
}

func TestSortOrders(t *testing.T) {
	entries := sampleEntries()

	asc := Sort(entries, OrderAsc)
	assert.Equal(t, []string{"r1", "r2", "r3", "r4"}, ids(asc))

	desc := Sort(entries, OrderDesc)
	assert.Equal(t, []string{"r4", "r3", "r2", "r1"}, ids(desc))

	// The input order is untouched.
	assert.Equal(t, []string{"r2", "r1", "r4", "r3"}, ids(entries))
}

func TestSortIdempotent(t *testing.T) {
	entries := sampleEntries()

	once := Sort(entries, OrderAsc)
	twice := Sort(once, OrderAsc)
	assert.Equal(t, ids(once), ids(twice))
}

func TestSortAscReversedEqualsDesc(t *testing.T) {
	entries := sampleEntries()

	asc := Sort(entries, OrderAsc)
	desc := Sort(entries, OrderDesc)

	for i := range asc {
		assert.Equal(t, asc[i].ID, desc[len(desc)-1-i].ID)
	}
}

func TestSortStableOnEqualTimestamps(t *testing.T) {
	ts := time.Date(2025, 8, 1, 8, 0, 0, 0, time.UTC)
	entries := []v1.LogEntry{
		entry("a", ts, v1.TypeOnsite),
		entry("b", ts, v1.TypeOnsite),
		entry("c", ts, v1.TypeOnsite),
	}

	assert.Equal(t, []string{"a", "b", "c"}, ids(Sort(entries, OrderAsc)))
	assert.Equal(t, []string{"a", "b", "c"}, ids(Sort(entries, OrderDesc)))
}

func TestFilter(t *testing.T) {
	entries := sampleEntries()

	t.Run("All is the identity", func(t *testing.T) {
		assert.Equal(t, ids(entries), ids(Filter(entries, CategoryAll)))
	})

	t.Run("Onsite keeps only Onsite, order preserved", func(t *testing.T) {
		assert.Equal(t, []string{"r1", "r4"}, ids(Filter(entries, CategoryOnsite)))
	})

	t.Run("Online keeps only Online, order preserved", func(t *testing.T) {
		assert.Equal(t, []string{"r2", "r3"}, ids(Filter(entries, CategoryOnline)))
	})
}

func TestFilterComposesWithSort(t *testing.T) {
	entries := sampleEntries()

	// sort-then-filter and filter-then-sort agree
	a := Filter(Sort(entries, OrderDesc), CategoryOnline)
	b := Sort(Filter(entries, CategoryOnline), OrderDesc)
	assert.Equal(t, ids(a), ids(b))
}

func TestExportXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs.xlsx")

	if err := ExportXLSX(sampleEntries(), path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("export file missing: %v", err)
	}
	if info.Size() == 0 {
		t.Errorf("export file is empty")
	}
}
