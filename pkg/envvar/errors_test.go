package envvar_test

import (
	"sync"
	"testing"

	"github.com/arthur-debert/userenv/pkg/envvar"
	"github.com/arthur-debert/userenv/pkg/errors"
	"github.com/arthur-debert/userenv/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newMockClient(h *testutil.MockHandle, n *testutil.RecordingNotifier) (*envvar.Client, *testutil.MockStore) {
	s := testutil.NewMockStore(h)
	return envvar.New(s, envvar.WithNotifier(n), envvar.WithGuard(&sync.RWMutex{})), s
}

func TestEmptyNameRejected(t *testing.T) {
	s := &testutil.MockStore{}
	n := &testutil.RecordingNotifier{}
	c := envvar.New(s, envvar.WithNotifier(n), envvar.WithGuard(&sync.RWMutex{}))

	ops := map[string]func() error{
		"set":     func() error { return c.Set("", "v") },
		"remove":  func() error { return c.Remove("") },
		"append":  func() error { return c.Append("", "v") },
		"prepend": func() error { return c.Prepend("", "v") },
		"get": func() error {
			_, _, err := c.Get("")
			return err
		},
		"remove_from_list": func() error {
			_, err := c.RemoveFromList("", "v")
			return err
		},
		"exists_in_list": func() error {
			_, err := c.ExistsInList("", "v")
			return err
		},
	}

	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			err := op()
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
		})
	}

	s.AssertNotCalled(t, "Open")
	assert.Zero(t, n.Calls())
}

func TestStoreUnavailablePropagates(t *testing.T) {
	storeErr := errors.New(errors.ErrStoreUnavailable, "store offline")
	n := &testutil.RecordingNotifier{}
	c := envvar.New(testutil.FailingStore{Err: storeErr},
		envvar.WithNotifier(n), envvar.WithGuard(&sync.RWMutex{}))

	err := c.Set(testVar, "v")
	assert.True(t, errors.IsErrorCode(err, errors.ErrStoreUnavailable))

	_, _, err = c.Get(testVar)
	assert.True(t, errors.IsErrorCode(err, errors.ErrStoreUnavailable))

	err = c.Append(testVar, "v")
	assert.True(t, errors.IsErrorCode(err, errors.ErrStoreUnavailable))

	removed, err := c.RemoveFromList(testVar, "v")
	assert.False(t, removed)
	assert.True(t, errors.IsErrorCode(err, errors.ErrStoreUnavailable))

	ok, err := c.ExistsInList(testVar, "v")
	assert.False(t, ok)
	assert.True(t, errors.IsErrorCode(err, errors.ErrStoreUnavailable))

	assert.Zero(t, n.Calls(), "failed operations must not notify")
}

func TestReadFailureAbortsListWrite(t *testing.T) {
	h := &testutil.MockHandle{}
	h.On("Get", testVar).Return("", errors.New(errors.ErrPermission, "access denied"))
	n := &testutil.RecordingNotifier{}
	c, _ := newMockClient(h, n)

	err := c.Append(testVar, "v")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrPermission))

	_, err = c.RemoveFromList(testVar, "v")
	assert.True(t, errors.IsErrorCode(err, errors.ErrPermission))

	h.AssertNotCalled(t, "Set", mock.Anything, mock.Anything)
	h.AssertNumberOfCalls(t, "Close", 2)
	assert.Zero(t, n.Calls())
}

func TestWriteFailureDoesNotNotify(t *testing.T) {
	h := &testutil.MockHandle{}
	h.On("Get", testVar).Return("a;b", nil)
	h.On("Set", testVar, "a;b;c").Return(errors.New(errors.ErrPermission, "access denied"))
	n := &testutil.RecordingNotifier{}
	c, _ := newMockClient(h, n)

	err := c.Append(testVar, "c")
	assert.True(t, errors.IsErrorCode(err, errors.ErrPermission))
	assert.Zero(t, n.Calls())
	h.AssertExpectations(t)
}

func TestRemove_SwallowsNotFound(t *testing.T) {
	h := &testutil.MockHandle{}
	h.On("Delete", testVar).Return(testutil.NotFound(testVar))
	n := &testutil.RecordingNotifier{}
	c, _ := newMockClient(h, n)

	require.NoError(t, c.Remove(testVar))
	assert.Equal(t, 1, n.Calls())
}

func TestRemove_PropagatesOtherErrors(t *testing.T) {
	h := &testutil.MockHandle{}
	h.On("Delete", testVar).Return(errors.New(errors.ErrPermission, "access denied"))
	n := &testutil.RecordingNotifier{}
	c, _ := newMockClient(h, n)

	err := c.Remove(testVar)
	assert.True(t, errors.IsErrorCode(err, errors.ErrPermission))
	assert.Zero(t, n.Calls())
}

func TestGet_NotFoundIsAbsence(t *testing.T) {
	h := &testutil.MockHandle{}
	h.On("Get", testVar).Return("", testutil.NotFound(testVar))
	c, s := newMockClient(h, &testutil.RecordingNotifier{})

	v, ok, err := c.Get(testVar)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, v)
	s.AssertNumberOfCalls(t, "Open", 1)
	h.AssertNumberOfCalls(t, "Close", 1)
}

func TestEncodingErrorPropagates(t *testing.T) {
	h := &testutil.MockHandle{}
	h.On("Get", testVar).Return("", errors.New(errors.ErrEncoding, "value is not a string"))
	c, _ := newMockClient(h, &testutil.RecordingNotifier{})

	_, _, err := c.Get(testVar)
	assert.True(t, errors.IsErrorCode(err, errors.ErrEncoding))

	_, err = c.ExistsInList(testVar, "x")
	assert.True(t, errors.IsErrorCode(err, errors.ErrEncoding))
}
