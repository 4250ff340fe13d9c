package revocations

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

const recordQ = `(?s)^INSERT\s+INTO\s+revoked_tokens\s*\(jti,\s*expires_at\)\s*VALUES\s*\(\$1,\s*\$2\)\s*ON\s+CONFLICT\s*\(jti\)\s*DO\s+NOTHING$`

func TestRecord_Inserted(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	exp := time.Now().Add(time.Hour)
	mock.ExpectExec(recordQ).
		WithArgs("jti-1", exp).
		WillReturnResult(sqlmock.NewResult(0, 1))

	inserted, err := repo.Record(context.Background(), "jti-1", exp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !inserted {
		t.Fatal("expected inserted=true")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRecord_AlreadyPresentIsNoop(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	exp := time.Now().Add(time.Hour)
	mock.ExpectExec(recordQ).
		WithArgs("jti-1", exp).
		WillReturnResult(sqlmock.NewResult(0, 0))

	inserted, err := repo.Record(context.Background(), "jti-1", exp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inserted {
		t.Fatal("expected inserted=false for an existing jti")
	}
}

func TestRecord_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(recordQ).WillReturnError(errors.New("db down"))

	_, err := repo.Record(context.Background(), "jti-1", time.Now())
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestRecord_RowsAffectedError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(recordQ).WillReturnResult(sqlmock.NewErrorResult(errors.New("no count")))

	_, err := repo.Record(context.Background(), "jti-1", time.Now())
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestExists(t *testing.T) {
	q := `(?s)^SELECT\s+EXISTS\s*\(SELECT\s+1\s+FROM\s+revoked_tokens\s+WHERE\s+jti\s*=\s*\$1\)$`

	for _, want := range []bool{true, false} {
		repo, mock, db := newRepoWithMock(t)

		mock.ExpectQuery(q).
			WithArgs("jti-1").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(want))

		got, err := repo.Exists(context.Background(), "jti-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != want {
			t.Fatalf("Exists = %v, want %v", got, want)
		}
		db.Close()
	}
}

func TestExists_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT EXISTS`).WillReturnError(errors.New("db err"))

	_, err := repo.Exists(context.Background(), "jti-1")
	if err == nil || !regexp.MustCompile(`db error: .*db err`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestPrune(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	mock.ExpectExec(`(?s)^DELETE\s+FROM\s+revoked_tokens\s+WHERE\s+expires_at\s*<=\s*\$1$`).
		WithArgs(now).
		WillReturnResult(sqlmock.NewResult(0, 3))

	n, err := repo.Prune(context.Background(), now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 3 {
		t.Fatalf("pruned %d, want 3", n)
	}
}

func TestPrune_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`DELETE`).WillReturnError(errors.New("db err"))

	if _, err := repo.Prune(context.Background(), time.Now()); err == nil {
		t.Fatal("expected error")
	}
}
