package xtree

import "github.com/google/btree"

// degree B 树节点度数。
// 32 是 google/btree 推荐的内存型工作负载取值。
const degree = 32

// Tree 是按比较器排序的泛型有序容器。
// 必须通过 [New] 创建，零值不可用（方法调用会 panic）。
// 非并发安全，遵循单一属主线程模型。
type Tree[T any] struct {
	bt *btree.BTreeG[T]
}

// New 创建按 cmp 排序的空容器。
// cmp 返回负数表示 a < b，0 表示相等，正数表示 a > b。
// cmp 为 nil 时 panic。
func New[T any](cmp func(a, b T) int) *Tree[T] {
	if cmp == nil {
		panic("xtree: nil comparator")
	}
	less := func(a, b T) bool { return cmp(a, b) < 0 }
	return &Tree[T]{bt: btree.NewG(degree, less)}
}

// Find 按键查找与 key 相等（cmp 返回 0）的元素。
// 未找到时返回零值和 false。
func (t *Tree[T]) Find(key T) (T, bool) {
	return t.bt.Get(key)
}

// Insert 插入元素。
// 若已存在相等元素，则替换并返回 (旧元素, true)；否则返回 (零值, false)。
func (t *Tree[T]) Insert(item T) (T, bool) {
	return t.bt.ReplaceOrInsert(item)
}

// Delete 删除与 item 相等的元素。
// 返回 (被删除的元素, true)；不存在时返回 (零值, false)。
func (t *Tree[T]) Delete(item T) (T, bool) {
	return t.bt.Delete(item)
}

// Len 返回容器内元素数量。
func (t *Tree[T]) Len() int {
	return t.bt.Len()
}

// Teardown 拆除容器：按升序对每个元素调用 fn（可为 nil），
// 然后清空容器本身。元素不会被"销毁"，仅从容器中丢弃，
// 其生命周期由调用方管理。
//
// 回调约束（与 xlru 的淘汰回调一致）：
//   - 严禁在 fn 中调用本容器的任何方法
//   - Teardown 不得与 Insert/Delete 并发执行
func (t *Tree[T]) Teardown(fn func(T)) {
	if fn != nil {
		t.bt.Ascend(func(item T) bool {
			fn(item)
			return true
		})
	}
	t.bt.Clear(false)
}
