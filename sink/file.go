package sink

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/RIT-Landsat-Field-Radiometers/shared-utils/backend"
	"github.com/RIT-Landsat-Field-Radiometers/shared-utils/core"
	"github.com/RIT-Landsat-Field-Radiometers/shared-utils/formatter"
)

// File writes formatted records to a file with rotation support
type File struct {
	*engine
	filename       string
	file           *os.File
	formatter      formatter.Formatter
	bufFormatter   formatter.BufferFormatter
	mu             sync.Mutex
	buf            bytes.Buffer
	maxSize        int64
	maxAge         time.Duration
	maxBackups     int
	rotateInterval time.Duration
	currentSize    int64
	lastRotateTime time.Time
}

var _ backend.Backend = (*File)(nil)

// FileConfig holds configuration for the file sink
type FileConfig struct {
	// Filename is the path to the log file
	Filename string
	// Formatter to use (default: TextFormatter)
	Formatter formatter.Formatter
	// Levels is the category policy store (default: everything at
	// core.DefaultLevel)
	Levels *backend.LevelMap
	// Async enables asynchronous processing (default: false)
	Async bool
	// BufferSize is the size of the async queue (default: 1000)
	BufferSize int
	// MaxSize is the maximum size in bytes before rotation (0 = no size rotation)
	MaxSize int64
	// MaxAge is the maximum age before rotation (0 = no age rotation)
	MaxAge time.Duration
	// MaxBackups is the maximum number of old log files to retain (0 = keep all)
	MaxBackups int
	// RotateInterval is the interval for time-based rotation (0 = no interval rotation)
	RotateInterval time.Duration
	// OverflowPolicy defines per-level overflow behavior (default: uses DefaultLevelPolicy)
	OverflowPolicy map[core.Level]OverflowPolicy
	// BlockTimeout is the timeout for blocking overflow policy (default: 100ms)
	BlockTimeout time.Duration
	// DrainTimeout is the timeout for draining the queue on Close (default: 5s)
	DrainTimeout time.Duration
	// UseCoarseClock stamps records from the shared coarse clock
	UseCoarseClock bool
}

// NewFile creates a new file sink
func NewFile(cfg FileConfig) (*File, error) {
	if cfg.Filename == "" {
		return nil, fmt.Errorf("filename is required")
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter(formatter.Config{})
	}
	if cfg.Levels == nil {
		cfg.Levels = backend.NewLevelMap(core.DefaultLevel)
	}
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = 1000
	}
	if cfg.OverflowPolicy == nil {
		cfg.OverflowPolicy = DefaultLevelPolicy()
	}
	if cfg.BlockTimeout == 0 {
		cfg.BlockTimeout = 100 * time.Millisecond
	}
	if cfg.DrainTimeout == 0 {
		cfg.DrainTimeout = 5 * time.Second
	}

	// Create directory if it doesn't exist
	dir := filepath.Dir(cfg.Filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}

	file, err := os.OpenFile(cfg.Filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}

	info, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("stat log file: %w", err)
	}

	f := &File{
		filename:       cfg.Filename,
		file:           file,
		formatter:      cfg.Formatter,
		maxSize:        cfg.MaxSize,
		maxAge:         cfg.MaxAge,
		maxBackups:     cfg.MaxBackups,
		rotateInterval: cfg.RotateInterval,
		currentSize:    info.Size(),
		lastRotateTime: time.Now(),
	}
	// Formatting into the sink's own buffer skips the per-record
	// slice allocation Format would make.
	f.bufFormatter, _ = cfg.Formatter.(formatter.BufferFormatter)

	f.engine = newEngine(engineConfig{
		levels:       cfg.Levels,
		async:        cfg.Async,
		bufferSize:   cfg.BufferSize,
		overflow:     cfg.OverflowPolicy,
		blockTimeout: cfg.BlockTimeout,
		drainTimeout: cfg.DrainTimeout,
		coarseClock:  cfg.UseCoarseClock,
	}, f.writeRecord)

	return f, nil
}

// writeRecord formats and writes one record, rotating first if needed
func (f *File) writeRecord(rec *core.Record) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.buf.Reset()
	if f.bufFormatter != nil {
		f.bufFormatter.FormatRecord(rec, &f.buf)
	} else {
		data, err := f.formatter.Format(rec)
		if err != nil {
			return err
		}
		f.buf.Write(data)
	}

	if err := f.rotateIfNeeded(); err != nil {
		return err
	}

	n, err := f.file.Write(f.buf.Bytes())
	if err == nil {
		f.currentSize += int64(n)
	}
	if f.buf.Cap() > 64*1024 { // Don't keep very large buffers
		f.buf = bytes.Buffer{}
	}
	return err
}

// rotateIfNeeded checks and performs rotation if needed
func (f *File) rotateIfNeeded() error {
	needRotate := false

	// Check size-based rotation
	if f.maxSize > 0 && f.currentSize >= f.maxSize {
		needRotate = true
	}

	// Check age-based rotation
	if f.maxAge > 0 && time.Since(f.lastRotateTime) >= f.maxAge {
		needRotate = true
	}

	// Check interval-based rotation
	if f.rotateInterval > 0 && time.Since(f.lastRotateTime) >= f.rotateInterval {
		needRotate = true
	}

	if !needRotate {
		return nil
	}

	return f.rotate()
}

// rotate performs the actual file rotation
func (f *File) rotate() error {
	// Sync and close current file
	if err := f.file.Sync(); err != nil {
		return err
	}
	if err := f.file.Close(); err != nil {
		return err
	}

	// Rename current file with timestamp
	timestamp := time.Now().Format("2006-01-02T15-04-05.000")
	rotatedName := fmt.Sprintf("%s.%s", f.filename, timestamp)

	if err := os.Rename(f.filename, rotatedName); err != nil {
		// If rename fails, try to reopen the original file
		file, openErr := os.OpenFile(f.filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if openErr != nil {
			return fmt.Errorf("rotation failed: %v, reopen failed: %v", err, openErr)
		}
		f.file = file
		return err
	}

	// Clean up old backups if needed
	if f.maxBackups > 0 {
		f.cleanupOldBackups()
	}

	// Open new file
	file, err := os.OpenFile(f.filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}

	f.file = file
	f.currentSize = 0
	f.lastRotateTime = time.Now()

	return nil
}

// cleanupOldBackups removes old backup files based on MaxBackups
func (f *File) cleanupOldBackups() {
	dir := filepath.Dir(f.filename)
	base := filepath.Base(f.filename)

	// Find all backup files
	pattern := filepath.Join(dir, base+".*")
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return
	}

	// Filter to only timestamp-based backups
	var backups []string
	for _, match := range matches {
		if strings.HasPrefix(filepath.Base(match), base+".") {
			backups = append(backups, match)
		}
	}

	// Sort by modification time (oldest first)
	sort.Slice(backups, func(i, j int) bool {
		infoI, errI := os.Stat(backups[i])
		infoJ, errJ := os.Stat(backups[j])
		if errI != nil || errJ != nil {
			return false
		}
		return infoI.ModTime().Before(infoJ.ModTime())
	})

	// Remove oldest files if we exceed MaxBackups
	if len(backups) > f.maxBackups {
		toRemove := backups[:len(backups)-f.maxBackups]
		for _, old := range toRemove {
			if err := os.Remove(old); err != nil {
				return
			}
		}
	}
}

// Sync flushes buffered writes to stable storage.
func (f *File) Sync() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.file == nil {
		return nil
	}
	return f.file.Sync()
}

// Close stops async processing, drains pending records, then syncs
// and closes the file.
func (f *File) Close() error {
	f.engine.close()

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.file == nil {
		return nil
	}
	if err := f.file.Sync(); err != nil {
		_ = f.file.Close()
		f.file = nil
		return err
	}
	err := f.file.Close()
	f.file = nil
	return err
}
