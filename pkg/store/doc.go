// Package store provides access to the per-user environment collection: the
// persistent set of named string slots that back user environment variables.
//
// A Store opens short-lived Handles. A Handle is used for a single
// read-modify-write sequence and closed afterwards; handles are never cached
// between operations.
//
// Three implementations exist:
//
//   - Registry: HKEY_CURRENT_USER\Environment on Windows.
//   - File: a TOML document on an afero filesystem, optionally guarded by an
//     advisory file lock so several processes can share it.
//   - Memory: an in-process map, used by tests and throwaway runs.
//
// Absent names surface as errors carrying the NOT_FOUND code (see
// errors.IsNotFound) from Get. Delete treats an absent name as success. Any
// other failure is returned with the PERMISSION, STORE_UNAVAILABLE or
// ENCODING code. Names compare case-insensitively in every implementation.
package store
