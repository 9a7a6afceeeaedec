// Package testutil provides test doubles and helpers for userenv packages.
//
// Key components:
//   - MockStore / MockHandle: testify mocks of store.Store and store.Handle,
//     used to script store failures and to assert that no write happened
//   - FailingStore: a store whose Open always fails
//   - RecordingNotifier: a notify.Notifier that counts calls
//   - Isolate: points every userenv directory at a temporary location
//
// Operation tests should prefer store.NewMemory and reach for the mocks only
// when they need an error or a call expectation.
package testutil
