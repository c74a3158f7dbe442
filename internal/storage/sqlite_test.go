package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rusenback/idswatch/internal/logging"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	s, err := NewStorage(time.Hour)
	if err != nil {
		t.Fatalf("NewStorage failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestQueryFullResolution(t *testing.T) {
	s := newTestStorage(t)
	now := time.Unix(1_800_000_000, 0)

	samples := []*Sample{
		{Timestamp: now.Add(-10 * time.Minute), CPUPercent: 99, MemoryPercent: 99}, // outside 5min
		{Timestamp: now.Add(-4 * time.Second), CPUPercent: 10, MemoryPercent: 40},
		{Timestamp: now.Add(-2 * time.Second), CPUPercent: 20, MemoryPercent: 41},
	}
	if err := s.batchWrite(samples); err != nil {
		t.Fatalf("batchWrite failed: %v", err)
	}

	points, err := s.queryAt(Range5Min, now)
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if len(points) != 2 {
		t.Fatalf("Expected 2 points inside the range, got %d", len(points))
	}
	if points[0].CPUPercent != 10 || points[1].CPUPercent != 20 {
		t.Errorf("Expected oldest first, got %+v", points)
	}
	if points[1].MemoryPercent != 41 {
		t.Errorf("Unexpected memory value %v", points[1].MemoryPercent)
	}
}

func TestQueryBucketsAverage(t *testing.T) {
	s := newTestStorage(t)
	base := time.Unix(1_800_000_000, 0) // on a 30s bucket boundary

	samples := []*Sample{
		{Timestamp: base, CPUPercent: 10, MemoryPercent: 50},
		{Timestamp: base.Add(10 * time.Second), CPUPercent: 30, MemoryPercent: 70},
		{Timestamp: base.Add(40 * time.Second), CPUPercent: 80, MemoryPercent: 20},
	}
	if err := s.batchWrite(samples); err != nil {
		t.Fatalf("batchWrite failed: %v", err)
	}

	points, err := s.queryAt(Range1Hour, base.Add(time.Minute))
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if len(points) != 2 {
		t.Fatalf("Expected 2 buckets, got %d: %+v", len(points), points)
	}
	if points[0].CPUPercent != 20 || points[0].MemoryPercent != 60 {
		t.Errorf("Expected averaged first bucket, got %+v", points[0])
	}
	if points[1].CPUPercent != 80 {
		t.Errorf("Unexpected second bucket %+v", points[1])
	}
}

func TestWriteIsFlushedOnClose(t *testing.T) {
	s, err := NewStorage(time.Hour)
	if err != nil {
		t.Fatalf("NewStorage failed: %v", err)
	}

	s.Write(&Sample{Timestamp: time.Now(), CPUPercent: 5, MemoryPercent: 6})

	// Stop the goroutines but keep the database open to inspect it.
	s.closeOnce.Do(func() { close(s.closeChan) })
	s.wg.Wait()
	defer s.db.Close()

	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM resource_samples").Scan(&count); err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected queued sample to be flushed, got %d rows", count)
	}
}

func TestPrune(t *testing.T) {
	s := newTestStorage(t)
	now := time.Unix(1_800_000_000, 0)

	var samples []*Sample
	for i := 0; i < 5; i++ {
		samples = append(samples, &Sample{Timestamp: now.Add(-time.Duration(i) * time.Hour)})
	}
	if err := s.batchWrite(samples); err != nil {
		t.Fatalf("batchWrite failed: %v", err)
	}

	deleted, err := s.prune(now.Add(-90 * time.Minute).Unix())
	if err != nil {
		t.Fatalf("prune failed: %v", err)
	}
	if deleted != 3 {
		t.Errorf("Expected 3 old samples deleted, got %d", deleted)
	}
}

func TestCloseTwice(t *testing.T) {
	s, err := NewStorage(time.Hour)
	if err != nil {
		t.Fatalf("NewStorage failed: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	// sql.DB.Close is idempotent and the close channel is guarded.
	s.Close()
}

func TestTimeRange(t *testing.T) {
	if Range15Min.String() != "15min" || Range15Min.Duration() != 15*time.Minute {
		t.Errorf("Unexpected Range15Min: %s %s", Range15Min, Range15Min.Duration())
	}
	if TimeRange(99).String() != "unknown" {
		t.Error("Expected unknown for invalid range")
	}
	if len(Ranges) != 4 {
		t.Errorf("Expected 4 selectable ranges, got %d", len(Ranges))
	}
}

// logContent returns everything the global logger wrote to dir
func logContent(t *testing.T, dir string) string {
	t.Helper()
	files, err := filepath.Glob(filepath.Join(dir, "*.log"))
	if err != nil || len(files) == 0 {
		t.Fatalf("No log file in %s: %v", dir, err)
	}
	var b strings.Builder
	for _, f := range files {
		data, err := os.ReadFile(f)
		if err != nil {
			t.Fatalf("Failed to read %s: %v", f, err)
		}
		b.Write(data)
	}
	return b.String()
}

func TestFailedWriteIsLogged(t *testing.T) {
	dir := t.TempDir()
	if err := logging.Init(dir); err != nil {
		t.Fatalf("logging.Init failed: %v", err)
	}

	s, err := NewStorage(time.Hour)
	if err != nil {
		t.Fatalf("NewStorage failed: %v", err)
	}
	s.db.Close()

	s.Write(&Sample{Timestamp: time.Now(), CPUPercent: 1, MemoryPercent: 2})
	s.Close()
	logging.Close()

	if !strings.Contains(logContent(t, dir), "[WARN] history write:") {
		t.Error("Expected the failed batch write to be logged")
	}
}

func TestFailedPruneIsLogged(t *testing.T) {
	dir := t.TempDir()
	if err := logging.Init(dir); err != nil {
		t.Fatalf("logging.Init failed: %v", err)
	}

	s, err := NewStorage(time.Hour)
	if err != nil {
		t.Fatalf("NewStorage failed: %v", err)
	}
	s.db.Close()

	s.pruneExpired(time.Now())
	s.Close()
	logging.Close()

	if !strings.Contains(logContent(t, dir), "[WARN] history prune:") {
		t.Error("Expected the failed prune to be logged")
	}
}
