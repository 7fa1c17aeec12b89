//go:build integration

// Package testdb provides database utilities for integration tests.
//
// Tests run against a migrated PostgreSQL database. When
// TASKBOARD_TEST_DATABASE_URL is set that database is used; otherwise a
// throwaway postgres container is started once per test binary with
// testcontainers-go.
//
// Each test runs inside its own transaction, which WithTx rolls back when
// the test completes, so tests can use t.Parallel() and leave no data behind:
//
//	func TestBoardStore(t *testing.T) {
//	    t.Parallel()
//	    db := testdb.GetTestDBWithT(t)
//
//	    testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
//	        boards := postgres.NewPostgresBoardStore(tx, nil)
//	        ...
//	    })
//	}
package testdb
