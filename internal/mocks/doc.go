// Package mocks provides test doubles shared across the application's tests.
//
// Two styles are offered:
//
//   - In-memory stores (MemoryUserStore, MemoryCategoryStore, ...) that behave
//     like the Postgres stores, including not-found and duplicate errors. Set
//     Err on any of them to make every call fail.
//   - Function-field and testify mocks (MockJWTService, MockPasswordVerifier,
//     TestifyMockUserStore) for asserting on individual calls.
//
// Usage:
//
//	stores := mocks.NewMemoryStores()
//	svc := service.NewTaskService(stores.Tasks, nil)
package mocks
