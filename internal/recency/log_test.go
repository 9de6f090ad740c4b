package recency

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVisit_PrependsNewPath(t *testing.T) {
	log := Visit(nil, "/tools/json", 100, 10)
	log = Visit(log, "/tools/base64", 200, 10)

	assert.Equal(t, []HistoryEntry{
		{Path: "/tools/base64", Timestamp: 200},
		{Path: "/tools/json", Timestamp: 100},
	}, log)
}

func TestVisit_RevisitMovesToFrontWithNewTimestamp(t *testing.T) {
	log := []HistoryEntry{
		{Path: "/c", Timestamp: 3},
		{Path: "/b", Timestamp: 2},
		{Path: "/a", Timestamp: 1},
	}

	next := Visit(log, "/a", 9, 10)

	assert.Len(t, next, 3)
	assert.Equal(t, HistoryEntry{Path: "/a", Timestamp: 9}, next[0])
	assert.Equal(t, []string{"/a", "/c", "/b"}, Paths(next))
}

func TestVisit_DoesNotModifyInput(t *testing.T) {
	log := []HistoryEntry{{Path: "/b", Timestamp: 2}, {Path: "/a", Timestamp: 1}}
	_ = Visit(log, "/a", 5, 10)

	assert.Equal(t, []HistoryEntry{{Path: "/b", Timestamp: 2}, {Path: "/a", Timestamp: 1}}, log)
}

func TestVisit_EvictsOldestBeyondCap(t *testing.T) {
	var log []HistoryEntry
	for i := 1; i <= 11; i++ {
		log = Visit(log, fmt.Sprintf("p%d", i), int64(i), MaxHistoryItems)
		assert.LessOrEqual(t, len(log), MaxHistoryItems)
	}

	want := []string{"p11", "p10", "p9", "p8", "p7", "p6", "p5", "p4", "p3", "p2"}
	assert.Equal(t, want, Paths(log))
}

func TestVisit_RevisitAtCapacityKeepsLength(t *testing.T) {
	var log []HistoryEntry
	for i := 1; i <= 10; i++ {
		log = Visit(log, fmt.Sprintf("p%d", i), int64(i), 10)
	}

	log = Visit(log, "p1", 99, 10)

	require.Len(t, log, 10)
	assert.Equal(t, "p1", log[0].Path)
	assert.Equal(t, "p2", log[9].Path)
}

func TestVisit_EmptyPathIsAccepted(t *testing.T) {
	log := Visit(nil, "", 1, 10)
	log = Visit(log, "", 2, 10)

	assert.Equal(t, []HistoryEntry{{Path: "", Timestamp: 2}}, log)
}

func TestVisit_NonPositiveMaxFallsBackToDefault(t *testing.T) {
	var log []HistoryEntry
	for i := 0; i < 15; i++ {
		log = Visit(log, fmt.Sprintf("p%d", i), int64(i), 0)
	}
	assert.Len(t, log, MaxHistoryItems)
}

func TestNormalize_DropsLaterDuplicatesAndCaps(t *testing.T) {
	in := []HistoryEntry{
		{Path: "/a", Timestamp: 5},
		{Path: "/b", Timestamp: 4},
		{Path: "/a", Timestamp: 3},
		{Path: "/c", Timestamp: 2},
		{Path: "/d", Timestamp: 1},
	}

	out := Normalize(in, 3)

	assert.Equal(t, []HistoryEntry{
		{Path: "/a", Timestamp: 5},
		{Path: "/b", Timestamp: 4},
		{Path: "/c", Timestamp: 2},
	}, out)
}

func TestPaths_Empty(t *testing.T) {
	assert.Equal(t, []string{}, Paths(nil))
}
