package tilemap

import (
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"

	"github.com/charmbracelet/log"
)

//go:embed levels/*.txt
var embeddedLevels embed.FS

// ErrLevelNotFound is returned when no file exists for a level number.
var ErrLevelNotFound = errors.New("tilemap: level not found")

var levelFilePattern = regexp.MustCompile(`^ski_level(\d+)\.txt$`)

// FileName returns the file name of level n.
func FileName(n int) string {
	return fmt.Sprintf("ski_level%d.txt", n)
}

// LevelNumber returns the level number encoded in a level file name.
func LevelNumber(path string) (int, bool) {
	m := levelFilePattern.FindStringSubmatch(filepath.Base(path))
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	return n, err == nil
}

// Loader reads level files. A file in Dir shadows the built-in level with
// the same number.
type Loader struct {
	Dir    string
	Layout Layout
	logger *log.Logger
}

// NewLoader creates a loader. dir may be empty to use only built-in levels.
func NewLoader(dir string, layout Layout, logger *log.Logger) *Loader {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Loader{Dir: dir, Layout: layout, logger: logger}
}

// Load reads and decodes level n.
func (l *Loader) Load(n int) (*Grid, error) {
	data, source, err := l.read(n)
	if err != nil {
		return nil, err
	}
	grid, report := Decode(string(data), l.Layout)
	l.warn(source, report)
	l.logger.Debug("level loaded", "level", n, "source", source)
	return grid, nil
}

// LoadFile reads and decodes an arbitrary level file.
func (l *Loader) LoadFile(path string) (*Grid, DecodeReport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, DecodeReport{}, fmt.Errorf("reading level %s: %w", path, err)
	}
	grid, report := Decode(string(data), l.Layout)
	l.warn(path, report)
	return grid, report, nil
}

// Available returns the level numbers that can be loaded, ascending.
func (l *Loader) Available() ([]int, error) {
	seen := make(map[int]bool)

	entries, err := fs.ReadDir(embeddedLevels, "levels")
	if err != nil {
		return nil, fmt.Errorf("listing built-in levels: %w", err)
	}
	collectLevels(entries, seen)

	if l.Dir != "" {
		entries, err := os.ReadDir(l.Dir)
		if err != nil {
			return nil, fmt.Errorf("listing levels in %s: %w", l.Dir, err)
		}
		collectLevels(entries, seen)
	}

	levels := make([]int, 0, len(seen))
	for n := range seen {
		levels = append(levels, n)
	}
	sort.Ints(levels)
	return levels, nil
}

func (l *Loader) read(n int) ([]byte, string, error) {
	name := FileName(n)
	if l.Dir != "" {
		path := filepath.Join(l.Dir, name)
		data, err := os.ReadFile(path)
		if err == nil {
			return data, path, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, path, fmt.Errorf("reading level %s: %w", path, err)
		}
	}

	data, err := embeddedLevels.ReadFile("levels/" + name)
	if err != nil {
		return nil, name, fmt.Errorf("%w: %s", ErrLevelNotFound, name)
	}
	return data, "builtin:" + name, nil
}

func (l *Loader) warn(source string, report DecodeReport) {
	if len(report.Unrecognized) > 0 {
		first := report.Unrecognized[0]
		l.logger.Warn("unrecognized level characters skipped",
			"source", source,
			"count", len(report.Unrecognized),
			"first", fmt.Sprintf("%q at %d:%d", first.Char, first.Line, first.Column),
		)
	}
	if len(report.Clipped) > 0 {
		l.logger.Warn("level characters outside the map dropped",
			"source", source,
			"count", len(report.Clipped),
		)
	}
}

func collectLevels(entries []fs.DirEntry, seen map[int]bool) {
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		m := levelFilePattern.FindStringSubmatch(e.Name())
		if m == nil {
			continue
		}
		if n, err := strconv.Atoi(m[1]); err == nil {
			seen[n] = true
		}
	}
}
