// Package store reads the fan controller's measurement log, an SQLite
// database populated by a separate logging process. Access is read-only
// and a fresh connection is used for every load.
package store

import (
	"database/sql"
	"fmt"
	"net/url"
	"os"

	"github.com/charmbracelet/log"
	"github.com/glebarez/sqlite"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DefaultPath is where the logging script keeps its database.
const DefaultPath = "/home/pi/skripty/mereni_data.db"

// Query is the only statement ever run against the database. Rows come back
// in insertion order, which the logger keeps chronological.
const Query = "SELECT cas, teplota, noctua FROM noctua_rpi"

// Row is one logged measurement.
type Row struct {
	Time string  // cas
	Temp float64 // teplota
	Fan  string  // noctua
}

// record mirrors the columns of noctua_rpi. Columns may be NULL.
type record struct {
	Cas     sql.NullString  `gorm:"column:cas"`
	Teplota sql.NullFloat64 `gorm:"column:teplota"`
	Noctua  sql.NullString  `gorm:"column:noctua"`
}

func (record) TableName() string { return "noctua_rpi" }

// Stage names the step of a load that failed.
type Stage string

const (
	StageConnect Stage = "connect"
	StageQuery   Stage = "query"
)

// Failure describes why a load produced no rows.
type Failure struct {
	Stage Stage
	Path  string
	Err   error
}

func (f *Failure) Error() string {
	return fmt.Sprintf("%s %s: %v", f.Stage, f.Path, f.Err)
}

func (f *Failure) Unwrap() error { return f.Err }

// Result is the outcome of a load: either rows or a Failure, never both.
type Result struct {
	Rows []Row
	Err  error
}

// OK reports whether the load succeeded.
func (r Result) OK() bool { return r.Err == nil }

// Reader loads the measurement log from one database file.
type Reader struct {
	path    string
	log     *log.Logger
	lastErr string
}

// NewReader returns a Reader for path. Failures are reported to l.
func NewReader(path string, l *log.Logger) *Reader {
	return &Reader{path: path, log: l}
}

// Load opens the database read-only, runs Query and closes the connection.
// A failure is logged once per distinct cause and returned in the Result.
func (r *Reader) Load() Result {
	res := Load(r.path)
	r.report(res)
	return res
}

func (r *Reader) report(res Result) {
	if r.log == nil {
		return
	}
	if res.OK() {
		if r.lastErr != "" {
			r.log.Info("database readable again", "path", r.path)
		}
		r.lastErr = ""
		return
	}

	msg := res.Err.Error()
	if msg == r.lastErr {
		return
	}
	r.lastErr = msg

	var f *Failure
	if errors.As(res.Err, &f) {
		r.log.Error("cannot load measurements", "stage", f.Stage, "path", f.Path, "err", f.Err)
		return
	}
	r.log.Error("cannot load measurements", "path", r.path, "err", res.Err)
}

// Load is the stateless form of Reader.Load; it does not log.
func Load(path string) Result {
	db, err := open(path)
	if err != nil {
		return Result{Err: &Failure{Stage: StageConnect, Path: path, Err: err}}
	}
	defer closeDB(db)

	var recs []record
	if err := db.Raw(Query).Scan(&recs).Error; err != nil {
		return Result{Err: &Failure{Stage: StageQuery, Path: path, Err: err}}
	}

	rows := make([]Row, 0, len(recs))
	for _, rec := range recs {
		rows = append(rows, Row{
			Time: rec.Cas.String,
			Temp: rec.Teplota.Float64,
			Fan:  rec.Noctua.String,
		})
	}
	return Result{Rows: rows}
}

func open(path string) (*gorm.DB, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.Wrap(err, "database file")
	}
	if info.IsDir() {
		return nil, errors.Errorf("database file %s is a directory", path)
	}

	db, err := gorm.Open(sqlite.Open(readOnlyDSN(path)), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, errors.Wrap(err, "open database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "open database")
	}
	// SQLite opens lazily; reading the header surfaces corrupt files here
	// rather than at query time.
	var version int
	if err := sqlDB.QueryRow("PRAGMA schema_version").Scan(&version); err != nil {
		sqlDB.Close()
		return nil, errors.Wrap(err, "open database")
	}
	return db, nil
}

// readOnlyDSN builds a SQLite URI for path; characters such as '#' and '?'
// are escaped so they stay part of the file name.
func readOnlyDSN(path string) string {
	return (&url.URL{Scheme: "file", Path: path, RawQuery: "mode=ro"}).String()
}

func closeDB(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
}
