package postgres_test

import (
	"database/sql"
	"database/sql/driver"
	"reflect"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

// int64SliceConverter lets []int64 arguments reach sqlmock unchanged, the way
// the pgx driver accepts them for = ANY($n). Other values use the default conversion.
type int64SliceConverter struct{}

func (int64SliceConverter) ConvertValue(v interface{}) (driver.Value, error) {
	if ids, ok := v.([]int64); ok {
		return ids, nil
	}
	return driver.DefaultParameterConverter.ConvertValue(v)
}

// int64sArg matches a []int64 argument by value.
type int64sArg []int64

func (a int64sArg) Match(v driver.Value) bool {
	got, ok := v.([]int64)
	return ok && reflect.DeepEqual(got, []int64(a))
}

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.ValueConverterOption(int64SliceConverter{}))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})
	return db, mock
}

// q turns a literal SQL fragment into a sqlmock expectation pattern.
func q(fragment string) string {
	return regexp.QuoteMeta(fragment)
}
