package xtree

import (
	"cmp"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew_NilComparator(t *testing.T) {
	require.Panics(t, func() {
		New[int](nil)
	})
}

func TestTree_InsertFind(t *testing.T) {
	tr := New[int](cmp.Compare)

	for _, v := range []int{5, 1, 3, 2, 4} {
		_, replaced := tr.Insert(v)
		require.False(t, replaced)
	}
	require.Equal(t, 5, tr.Len())

	got, ok := tr.Find(3)
	require.True(t, ok)
	require.Equal(t, 3, got)

	_, ok = tr.Find(42)
	require.False(t, ok)
}

func TestTree_InsertReplace(t *testing.T) {
	type entry struct {
		key int
		val string
	}
	tr := New[entry](func(a, b entry) int { return cmp.Compare(a.key, b.key) })

	tr.Insert(entry{key: 1, val: "old"})
	old, replaced := tr.Insert(entry{key: 1, val: "new"})
	require.True(t, replaced)
	require.Equal(t, "old", old.val)
	require.Equal(t, 1, tr.Len())

	got, ok := tr.Find(entry{key: 1})
	require.True(t, ok)
	require.Equal(t, "new", got.val)
}

func TestTree_Delete(t *testing.T) {
	tr := New[int](cmp.Compare)
	tr.Insert(1)
	tr.Insert(2)

	got, ok := tr.Delete(1)
	require.True(t, ok)
	require.Equal(t, 1, got)
	require.Equal(t, 1, tr.Len())

	_, ok = tr.Delete(1)
	require.False(t, ok)
	require.Equal(t, 1, tr.Len())
}

func TestTree_Teardown(t *testing.T) {
	tr := New[int](cmp.Compare)
	for _, v := range []int{3, 1, 2} {
		tr.Insert(v)
	}

	var seen []int
	tr.Teardown(func(v int) { seen = append(seen, v) })

	// 回调按升序触发，拆除后容器为空。
	require.Equal(t, []int{1, 2, 3}, seen)
	require.Equal(t, 0, tr.Len())
}

func TestTree_TeardownNilCallback(t *testing.T) {
	tr := New[int](cmp.Compare)
	tr.Insert(1)
	tr.Teardown(nil)
	require.Equal(t, 0, tr.Len())
}

func TestTree_TeardownEmpty(t *testing.T) {
	tr := New[int](cmp.Compare)
	called := false
	tr.Teardown(func(int) { called = true })
	require.False(t, called)
}
