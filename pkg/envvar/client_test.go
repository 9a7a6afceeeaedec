package envvar_test

import (
	"sync"
	"testing"

	"github.com/arthur-debert/userenv/pkg/envvar"
	"github.com/arthur-debert/userenv/pkg/store"
	"github.com/arthur-debert/userenv/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testVar = "USERENV-TEST"

type fixture struct {
	store    *store.Memory
	notifier *testutil.RecordingNotifier
	client   *envvar.Client
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		store:    store.NewMemory(),
		notifier: &testutil.RecordingNotifier{},
	}
	f.client = envvar.New(f.store,
		envvar.WithNotifier(f.notifier),
		envvar.WithGuard(&sync.RWMutex{}),
	)
	return f
}

func (f *fixture) value(t *testing.T, name string) string {
	t.Helper()
	v, ok, err := f.client.Get(name)
	require.NoError(t, err)
	require.True(t, ok, "%s should exist", name)
	return v
}

func (f *fixture) absent(t *testing.T, name string) {
	t.Helper()
	_, ok, err := f.client.Get(name)
	require.NoError(t, err)
	assert.False(t, ok, "%s should not exist", name)
}

func TestSetGetRemove(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.client.Set(testVar, "test"))
	assert.Equal(t, "test", f.value(t, testVar))
	assert.Equal(t, 1, f.notifier.Calls())

	require.NoError(t, f.client.Remove(testVar))
	f.absent(t, testVar)
	assert.Equal(t, 2, f.notifier.Calls())
}

func TestSet_Overwrites(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.client.Set(testVar, "test"))
	require.NoError(t, f.client.Set(testVar, "new_test"))
	assert.Equal(t, "new_test", f.value(t, testVar))
}

func TestSet_EmptyValueExists(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.client.Set(testVar, ""))
	assert.Equal(t, "", f.value(t, testVar))
}

func TestGet_DoesNotNotify(t *testing.T) {
	f := newFixture(t)

	f.absent(t, testVar)
	_, err := f.client.ExistsInList(testVar, "x")
	require.NoError(t, err)
	assert.Zero(t, f.notifier.Calls())
}

func TestGet_ReturnsRawValue(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.client.Set(testVar, ";a;;b;"))
	assert.Equal(t, ";a;;b;", f.value(t, testVar), "Get must not decode lists")
}

func TestRemove_AbsentStillNotifies(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.client.Remove(testVar))
	f.absent(t, testVar)
	assert.Equal(t, 1, f.notifier.Calls())
	assert.Zero(t, f.store.Writes())
}

func TestAppend_AbsentIsSet(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.client.Append(testVar, "test"))
	assert.Equal(t, "test", f.value(t, testVar))
	assert.Equal(t, 1, f.notifier.Calls())
}

func TestPrepend_AbsentIsSet(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.client.Prepend(testVar, "test"))
	assert.Equal(t, "test", f.value(t, testVar))
}

func TestAppend_Idempotent(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.client.Append(testVar, "a"))
	require.NoError(t, f.client.Append(testVar, "b"))
	writes := f.store.Writes()

	require.NoError(t, f.client.Append(testVar, "b"))
	require.NoError(t, f.client.Prepend(testVar, "a"))

	assert.Equal(t, "a;b", f.value(t, testVar))
	assert.Equal(t, writes, f.store.Writes(), "no write for an existing entry")
	assert.Equal(t, 2, f.notifier.Calls(), "no notification for an existing entry")
}

func TestAppend_DedupIsExactMatch(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.client.Set(testVar, "test1;test2"))
	require.NoError(t, f.client.Append(testVar, "test"))
	require.NoError(t, f.client.Append(testVar, "TEST1"))

	assert.Equal(t, "test1;test2;test;TEST1", f.value(t, testVar))
}

func TestAppend_DropsEmptySegments(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.client.Set(testVar, ";a;;b;"))
	require.NoError(t, f.client.Append(testVar, "c"))
	assert.Equal(t, "a;b;c", f.value(t, testVar))

	require.NoError(t, f.client.Set(testVar, "a;;"))
	require.NoError(t, f.client.Prepend(testVar, "z"))
	assert.Equal(t, "z;a", f.value(t, testVar))
}

func TestPrependThenAppend(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.client.Prepend(testVar, "a"))
	require.NoError(t, f.client.Append(testVar, "b"))
	assert.Equal(t, "a;b", f.value(t, testVar))
}

func TestListOperations(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.client.Set(testVar, "test1;test2;te"))
	for _, v := range []string{"test1", "test2", "te"} {
		ok, err := f.client.ExistsInList(testVar, v)
		require.NoError(t, err)
		assert.True(t, ok, v)
	}

	require.NoError(t, f.client.Append(testVar, "st3"))
	assert.Equal(t, "test1;test2;te;st3", f.value(t, testVar))

	require.NoError(t, f.client.Prepend(testVar, "st4"))
	assert.Equal(t, "st4;test1;test2;te;st3", f.value(t, testVar))

	removed, err := f.client.RemoveFromList(testVar, "test1")
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Equal(t, "st4;test2;te;st3", f.value(t, testVar))

	ok, err := f.client.ExistsInList(testVar, "test1")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, f.client.Remove(testVar))
	f.absent(t, testVar)
}

func TestAppendPrependRemoveScenario(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.client.Append(testVar, "t1"))
	require.NoError(t, f.client.Prepend(testVar, "t2"))
	assert.Equal(t, "t2;t1", f.value(t, testVar))

	removed, err := f.client.RemoveFromList(testVar, "t2")
	require.NoError(t, err)
	assert.True(t, removed)

	ok, err := f.client.ExistsInList(testVar, "t1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = f.client.ExistsInList(testVar, "t2")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestOperateOnAbsentVariable(t *testing.T) {
	f := newFixture(t)
	const missing = "A_VAR_DOES_NOT_EXIST"

	require.NoError(t, f.client.Remove(missing))
	f.absent(t, missing)

	ok, err := f.client.ExistsInList(missing, "test")
	require.NoError(t, err)
	assert.False(t, ok)

	removed, err := f.client.RemoveFromList(missing, "test")
	require.NoError(t, err)
	assert.False(t, removed)
	assert.Zero(t, f.store.Writes())

	require.NoError(t, f.client.Append(missing, "test"))
	assert.Equal(t, "test", f.value(t, missing))
	require.NoError(t, f.client.Remove(missing))

	require.NoError(t, f.client.Prepend(missing, "test"))
	assert.Equal(t, "test", f.value(t, missing))
}

func TestRemoveFromList(t *testing.T) {
	tests := []struct {
		name        string
		initial     string
		value       string
		wantRemoved bool
		wantValue   string
	}{
		{"single_entry", "a;b;c", "b", true, "a;c"},
		{"every_occurrence", "a;b;a;c;a", "a", true, "b;c"},
		{"last_entry_leaves_empty", "only", "only", true, ""},
		{"missing_entry", "a;b", "z", false, "a;b"},
		{"substring_is_not_an_entry", "test1;test2", "test", false, "test1;test2"},
		{"keeps_other_empty_segments", "a;;b;x", "x", true, "a;;b"},
		{"removes_empty_segments", "a;;b;", "", true, "a;b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			require.NoError(t, f.client.Set(testVar, tt.initial))
			f.notifier.Reset()
			writes := f.store.Writes()

			removed, err := f.client.RemoveFromList(testVar, tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.wantRemoved, removed)
			assert.Equal(t, tt.wantValue, f.value(t, testVar))

			// A present variable is rewritten and announced either way.
			assert.Equal(t, writes+1, f.store.Writes())
			assert.Equal(t, 1, f.notifier.Calls())
		})
	}
}

func TestRemoveFromList_NoMatchRewritesMalformedList(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.client.Set(testVar, "a;;b"))
	f.notifier.Reset()
	writes := f.store.Writes()

	removed, err := f.client.RemoveFromList(testVar, "z")
	require.NoError(t, err)
	assert.False(t, removed)
	assert.Equal(t, "a;;b", f.value(t, testVar), "raw segments survive the rewrite")
	assert.Equal(t, writes+1, f.store.Writes())
	assert.Equal(t, 1, f.notifier.Calls())
}

func TestExistsInList_UsesRawSegments(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.client.Set(testVar, "a;;b"))
	ok, err := f.client.ExistsInList(testVar, "")
	require.NoError(t, err)
	assert.True(t, ok, "empty segments count as entries for membership")

	require.NoError(t, f.client.Set(testVar, ""))
	ok, err = f.client.ExistsInList(testVar, "")
	require.NoError(t, err)
	assert.True(t, ok, "an empty value is a single empty segment")

	require.NoError(t, f.client.Set(testVar, "test1;test2;te"))
	ok, err = f.client.ExistsInList(testVar, "test")
	require.NoError(t, err)
	assert.False(t, ok, "no substring matches")
}

func TestCaseInsensitiveNames(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.client.Set("Path", "C:\\bin"))
	require.NoError(t, f.client.Append("PATH", "D:\\tools"))

	assert.Equal(t, "C:\\bin;D:\\tools", f.value(t, "path"))
	assert.Equal(t, map[string]string{"Path": "C:\\bin;D:\\tools"}, f.store.Values())
}
