package mysql

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// sqlRecorder keeps every statement gorm renders, arguments inlined.
type sqlRecorder struct {
	statements []string
}

func (r *sqlRecorder) LogMode(logger.LogLevel) logger.Interface { return r }
func (r *sqlRecorder) Info(context.Context, string, ...interface{})  {}
func (r *sqlRecorder) Warn(context.Context, string, ...interface{})  {}
func (r *sqlRecorder) Error(context.Context, string, ...interface{}) {}

func (r *sqlRecorder) Trace(_ context.Context, _ time.Time, fc func() (string, int64), _ error) {
	sql, _ := fc()
	r.statements = append(r.statements, sql)
}

func (r *sqlRecorder) last(t *testing.T) string {
	t.Helper()
	require.NotEmpty(t, r.statements, "no statement rendered")
	return r.statements[len(r.statements)-1]
}

// find returns the first statement containing substr.
func (r *sqlRecorder) find(t *testing.T, substr string) string {
	t.Helper()
	for _, s := range r.statements {
		if strings.Contains(s, substr) {
			return s
		}
	}
	t.Fatalf("no statement contains %q in %v", substr, r.statements)
	return ""
}

func openGorm(t *testing.T, cfg *gorm.Config) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	cfg.SkipDefaultTransaction = true
	db, err := gorm.Open(gormmysql.New(gormmysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), cfg)
	require.NoError(t, err)
	return db, mock
}

// newDryRunDB renders statements without executing them.
func newDryRunDB(t *testing.T) (*gorm.DB, *sqlRecorder) {
	rec := &sqlRecorder{}
	db, _ := openGorm(t, &gorm.Config{DryRun: true, Logger: rec})
	return db, rec
}

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	return openGorm(t, &gorm.Config{Logger: logger.Discard})
}
