package storage

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/rusenback/idswatch/internal/logging"
	_ "modernc.org/sqlite"
)

// TimeRange represents the graph window options
type TimeRange int

const (
	Range5Min TimeRange = iota
	Range15Min
	Range30Min
	Range1Hour
)

// Ranges lists every selectable range in key order
var Ranges = []TimeRange{Range5Min, Range15Min, Range30Min, Range1Hour}

func (t TimeRange) String() string {
	switch t {
	case Range5Min:
		return "5min"
	case Range15Min:
		return "15min"
	case Range30Min:
		return "30min"
	case Range1Hour:
		return "1hour"
	default:
		return "unknown"
	}
}

// Duration returns the time duration for the range
func (t TimeRange) Duration() time.Duration {
	switch t {
	case Range5Min:
		return 5 * time.Minute
	case Range15Min:
		return 15 * time.Minute
	case Range30Min:
		return 30 * time.Minute
	case Range1Hour:
		return time.Hour
	default:
		return 5 * time.Minute
	}
}

// bucketSeconds is the aggregation step; 0 means full resolution
func (t TimeRange) bucketSeconds() int64 {
	switch t {
	case Range15Min:
		return 10
	case Range30Min:
		return 20
	case Range1Hour:
		return 30
	default:
		return 0
	}
}

// DataPoint represents a single point on the resource graph
type DataPoint struct {
	Timestamp     time.Time
	CPUPercent    float64
	MemoryPercent float64
}

// Sample is one client-observed gauge reading
type Sample struct {
	Timestamp     time.Time
	CPUPercent    float64
	MemoryPercent float64
}

// Storage keeps the gauge history of the running session in an in-memory
// sqlite database. Nothing survives the process.
type Storage struct {
	db        *sql.DB
	retention time.Duration
	writeChan chan *Sample
	closeChan chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
}

// NewStorage creates the in-memory history store. Samples older than retention are pruned.
func NewStorage(retention time.Duration) (*Storage, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// Every new connection to :memory: is a separate empty database.
	db.SetMaxOpenConns(1)

	if err := createTables(db); err != nil {
		db.Close()
		return nil, err
	}

	s := &Storage{
		db:        db,
		retention: retention,
		writeChan: make(chan *Sample, 1000),
		closeChan: make(chan struct{}),
	}

	s.wg.Add(2)
	go s.writer()
	go s.cleanup()

	return s, nil
}

func createTables(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS resource_samples (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp INTEGER NOT NULL,
		cpu_percent REAL,
		memory_percent REAL
	);

	CREATE INDEX IF NOT EXISTS idx_resource_time
	ON resource_samples(timestamp);
	`

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}
	return nil
}

// Write queues a sample. It never blocks the caller.
func (s *Storage) Write(sample *Sample) {
	select {
	case s.writeChan <- sample:
	default:
		// Queue full: dropping a gauge sample only leaves a gap in the graph
	}
}

// writer batches queued samples into the database
func (s *Storage) writer() {
	defer s.wg.Done()

	buffer := make([]*Sample, 0, 50)
	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case sample := <-s.writeChan:
			buffer = append(buffer, sample)
			if len(buffer) >= 50 {
				s.flush(buffer)
				buffer = buffer[:0]
			}

		case <-ticker.C:
			if len(buffer) > 0 {
				s.flush(buffer)
				buffer = buffer[:0]
			}

		case <-s.closeChan:
			// Drain whatever is still queued
			for {
				select {
				case sample := <-s.writeChan:
					buffer = append(buffer, sample)
				default:
					if len(buffer) > 0 {
						s.flush(buffer)
					}
					return
				}
			}
		}
	}
}

// flush writes a batch; a failure only costs the graph those samples
func (s *Storage) flush(samples []*Sample) {
	if err := s.batchWrite(samples); err != nil {
		logging.Warn("history write: %v", err)
	}
}

// batchWrite writes samples in one transaction
func (s *Storage) batchWrite(samples []*Sample) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO resource_samples (timestamp, cpu_percent, memory_percent)
		VALUES (?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, sample := range samples {
		if _, err := stmt.Exec(sample.Timestamp.Unix(), sample.CPUPercent, sample.MemoryPercent); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// Query returns the data points inside the time range, oldest first.
// Wider ranges are averaged into buckets.
func (s *Storage) Query(timeRange TimeRange) ([]DataPoint, error) {
	return s.queryAt(timeRange, time.Now())
}

func (s *Storage) queryAt(timeRange TimeRange, now time.Time) ([]DataPoint, error) {
	cutoff := now.Add(-timeRange.Duration()).Unix()

	bucket := timeRange.bucketSeconds()
	if bucket == 0 {
		rows, err := s.db.Query(`
			SELECT timestamp, cpu_percent, memory_percent
			FROM resource_samples
			WHERE timestamp > ?
			ORDER BY timestamp ASC, id ASC
		`, cutoff)
		if err != nil {
			return nil, err
		}
		defer rows.Close()
		return scanRows(rows)
	}

	rows, err := s.db.Query(`
		SELECT
			(timestamp / ?) * ? AS bucket,
			AVG(cpu_percent) AS avg_cpu,
			AVG(memory_percent) AS avg_mem
		FROM resource_samples
		WHERE timestamp > ?
		GROUP BY bucket
		ORDER BY bucket ASC
	`, bucket, bucket, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRows(rows)
}

func scanRows(rows *sql.Rows) ([]DataPoint, error) {
	var points []DataPoint

	for rows.Next() {
		var timestamp int64
		var cpu, mem float64

		if err := rows.Scan(&timestamp, &cpu, &mem); err != nil {
			return nil, err
		}

		points = append(points, DataPoint{
			Timestamp:     time.Unix(timestamp, 0),
			CPUPercent:    cpu,
			MemoryPercent: mem,
		})
	}

	return points, rows.Err()
}

// cleanup prunes samples past the retention window every minute
func (s *Storage) cleanup() {
	defer s.wg.Done()

	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.pruneExpired(time.Now())
		case <-s.closeChan:
			return
		}
	}
}

// pruneExpired removes samples older than the retention window at now
func (s *Storage) pruneExpired(now time.Time) {
	if _, err := s.prune(now.Add(-s.retention).Unix()); err != nil {
		logging.Warn("history prune: %v", err)
	}
}

// prune deletes old rows in batches to keep the single connection responsive
func (s *Storage) prune(cutoff int64) (int64, error) {
	const batchSize = 1000
	var total int64

	for {
		result, err := s.db.Exec(`
			DELETE FROM resource_samples
			WHERE id IN (
				SELECT id FROM resource_samples WHERE timestamp < ? LIMIT ?
			)`, cutoff, batchSize)
		if err != nil {
			return total, err
		}

		n, err := result.RowsAffected()
		if err != nil {
			return total, err
		}
		total += n
		if n < batchSize {
			return total, nil
		}
	}
}

// Close flushes pending samples and closes the database
func (s *Storage) Close() error {
	s.closeOnce.Do(func() { close(s.closeChan) })
	s.wg.Wait()
	return s.db.Close()
}
