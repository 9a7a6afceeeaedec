package testutil

import (
	"sync"

	"github.com/arthur-debert/userenv/pkg/errors"
	"github.com/arthur-debert/userenv/pkg/store"
	"github.com/stretchr/testify/mock"
)

// MockStore is a testify mock of store.Store.
type MockStore struct {
	mock.Mock
}

// Open returns the Handle (or error) configured with On("Open").
func (m *MockStore) Open() (store.Handle, error) {
	args := m.Called()
	h, _ := args.Get(0).(store.Handle)
	return h, args.Error(1)
}

// MockHandle is a testify mock of store.Handle.
type MockHandle struct {
	mock.Mock
}

func (m *MockHandle) Get(name string) (string, error) {
	args := m.Called(name)
	return args.String(0), args.Error(1)
}

func (m *MockHandle) Set(name, value string) error {
	return m.Called(name, value).Error(0)
}

func (m *MockHandle) Delete(name string) error {
	return m.Called(name).Error(0)
}

func (m *MockHandle) Close() error {
	return m.Called().Error(0)
}

// NewMockStore returns a MockStore whose Open yields h, with Close
// expected once per Open.
func NewMockStore(h *MockHandle) *MockStore {
	s := &MockStore{}
	s.On("Open").Return(h, nil)
	h.On("Close").Return(nil)
	return s
}

// NotFound builds the error a store returns for an absent name.
func NotFound(name string) error {
	return errors.Newf(errors.ErrNotFound, "%s not found", name)
}

// FailingStore is a store.Store whose Open always returns Err.
type FailingStore struct {
	Err error
}

func (f FailingStore) Open() (store.Handle, error) {
	return nil, f.Err
}

// RecordingNotifier counts NotifyChanged calls. It is safe for concurrent
// use.
type RecordingNotifier struct {
	mu    sync.Mutex
	calls int
}

func (r *RecordingNotifier) NotifyChanged() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
}

// Calls returns the number of notifications so far.
func (r *RecordingNotifier) Calls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls
}

// Reset zeroes the counter.
func (r *RecordingNotifier) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = 0
}
