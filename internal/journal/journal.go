package journal

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"ghsync/internal/counter"
	"ghsync/internal/gitrepo"
	"ghsync/internal/reconcile"

	"github.com/sirupsen/logrus"
)

// Stat keys mirrored in the summary record.
const (
	StatCloned  = "cloned"
	StatUpdated = "updated"
	StatMoved   = "moved"
	StatDeleted = "deleted"
	StatErrors  = "errors"
)

var statForKind = map[reconcile.Kind]string{
	reconcile.KindClone:  StatCloned,
	reconcile.KindUpdate: StatUpdated,
	reconcile.KindMove:   StatMoved,
	reconcile.KindDelete: StatDeleted,
}

// Journal is the append-only action log: one JSON object per line, written in
// a shape a log pipeline ingests directly. It also keeps per-kind counters
// for the end-of-run summary record.
type Journal struct {
	log       *logrus.Logger
	file      *os.File
	path      string
	startTime time.Time
	stats     map[string]*counter.Counter
}

// Open creates parent directories as needed and opens the journal file for
// appending.
func Open(path string) (*Journal, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return nil, fmt.Errorf("failed to create journal directory: %w", err)
		}
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, fmt.Errorf("failed to open journal file: %w", err)
	}

	log := logrus.New()
	log.SetOutput(file)
	log.SetLevel(logrus.InfoLevel)
	log.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime: "timestamp",
			logrus.FieldKeyMsg:  "message",
		},
	})

	stats := map[string]*counter.Counter{}
	for _, stat := range []string{StatCloned, StatUpdated, StatMoved, StatDeleted, StatErrors} {
		stats[stat] = counter.NewCounter()
	}

	return &Journal{
		log:       log,
		file:      file,
		path:      path,
		startTime: time.Now(),
		stats:     stats,
	}, nil
}

// Path returns the absolute journal file path where possible.
func (j *Journal) Path() string {
	path, err := filepath.Abs(j.path)
	if err != nil {
		return j.path
	}
	return path
}

// Event writes a free-form detail record, e.g. run start or a fatal listing
// failure.
func (j *Journal) Event(message string, fields logrus.Fields) {
	entry := j.log.WithField("type", "detail")
	if fields != nil {
		entry = entry.WithFields(fields)
	}
	entry.Info(message)
}

func (j *Journal) ActionSucceeded(kind reconcile.Kind, repo string, visibility gitrepo.Visibility) {
	if stat, ok := statForKind[kind]; ok {
		j.stats[stat].Add(1)
	}
	j.log.WithFields(logrus.Fields{
		"type":       "detail",
		"action":     string(kind),
		"repo":       repo,
		"visibility": string(visibility),
		"outcome":    "success",
	}).Infof("%s of repository %s succeeded", kind, repo)
}

func (j *Journal) ActionFailed(kind reconcile.Kind, repo string, visibility gitrepo.Visibility, err error) {
	j.stats[StatErrors].Add(1)
	j.log.WithFields(logrus.Fields{
		"type":       "detail",
		"action":     string(kind),
		"repo":       repo,
		"visibility": string(visibility),
		"outcome":    "failure",
		"error":      err.Error(),
	}).Errorf("%s of repository %s failed", kind, repo)
}

// Summary appends the end-of-run record with per-kind stats and duration.
func (j *Journal) Summary() {
	stats := logrus.Fields{}
	for stat, count := range j.stats {
		stats[stat] = count.Count()
	}
	j.log.WithFields(logrus.Fields{
		"type":             "summary",
		"duration_seconds": time.Since(j.startTime).Seconds(),
		"stats":            stats,
	}).Info("GitHub repository sync completed")
}

func (j *Journal) Close() error {
	return j.file.Close()
}
