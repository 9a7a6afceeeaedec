// Package envvar reads and writes persistent per-user environment variables.
//
// A Client combines a store.Store, a notify.Notifier and a reader/writer
// guard. Every operation opens a fresh store handle, performs its whole
// read-decode-modify-encode-write sequence under the guard, closes the
// handle, releases the guard and only then notifies, so a slow broadcast
// never holds up other callers.
//
// # Operations
//
//	Set(name, value)             write unconditionally, notify
//	Get(name)                    raw value and whether it exists
//	Remove(name)                 delete (absent is fine), always notify
//	Append(name, value)          add at the end unless present
//	Prepend(name, value)         add at the front unless present
//	RemoveFromList(name, value)  drop every matching entry
//	ExistsInList(name, value)    membership test
//
// # List semantics
//
// List values are ';'-separated (see package envlist). Append and Prepend
// ignore empty segments, so appending "b" to "a;;" yields "a;b". They do
// nothing, not even notify, when the value is already an entry.
//
// RemoveFromList and ExistsInList look at raw segments instead, empty ones
// included. RemoveFromList rewrites and announces an existing variable even
// when no entry matched, and leaves an empty string behind rather than
// deleting the variable when the last entry goes. Removing from an absent
// variable reports false and touches nothing.
//
// # Concurrency
//
// Clients built with New share one process-wide guard, so all callers in a
// process are serialized no matter how many clients exist. WithGuard gives a
// client its own. The guard does not protect against other processes; the
// file store's lock file does, the registry does not.
package envvar
