// Package testdb provides utilities for database-backed integration tests.
// Tests using it carry the integration build tag and are skipped unless
// CATALOG_TEST_DB_URL or DATABASE_URL points at a PostgreSQL instance.
package testdb
