// Package service contains the application-specific use cases of the catalog.
// It orchestrates the stores defined in internal/store to fulfill the API's
// operations and owns the transaction boundaries of multi-step writes.
//
// Key components:
//
// 1. SongService:
//   - Lists songs with filters and pagination, eager-loading genres and country
//   - Creates and updates songs, checking the referenced country and genres
//     and replacing genre associations inside one transaction
//
// 2. CatalogService:
//   - Read access to countries and genres
//
// Errors:
//   - Expected conditions are returned as sentinels (store.ErrSongNotFound,
//     ErrNothingUpdated, ...) that callers check with errors.Is
//   - Unexpected errors are wrapped in SongServiceError
//
// The service layer depends on domain entities and store interfaces, never on
// the PostgreSQL implementations.
package service
