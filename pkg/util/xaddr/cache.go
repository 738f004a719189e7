package xaddr

import (
	"fmt"

	"github.com/omeyang/xaddr/pkg/util/xtree"
)

// Cache 按值驻留地址：同一缓存内，每个 (种类, 字节) 组合
// 至多存在一个活跃实例，重复请求共享同一实例。
// 适合大量探测反复引用同一小集合地址的测量负载，
// 把内存占用压到去重后的规模。
//
// Cache 对成员只建索引、不持有引用：成员的生命周期完全由
// 其引用计数决定，计数归零时通过回指针自行从缓存摘除。
// 必须通过 [NewCache] 创建，零值不可用（方法调用会 panic）。
// 非并发安全，遵循单一属主线程模型。
type Cache struct {
	// trees 按 Kind-1 索引，每个种类一棵按原始字节排序的有序容器。
	trees  [numKinds]*xtree.Tree[*Addr]
	closed bool
}

// NewCache 创建空的驻留缓存。
func NewCache() *Cache {
	c := &Cache{}
	for i := range c.trees {
		c.trees[i] = xtree.New((*Addr).Compare)
	}
	return c
}

// Get 按值查找或插入地址。
//
// 命中时增加共享实例的引用计数并返回它；未命中时以 raw 的
// 副本创建新地址（引用计数 1）、插入容器并设置缓存回指针。
// raw 长度必须等于 kind.Size()。缓存已关闭返回 [ErrCacheClosed]。
// kind 无效属调用方契约错误，触发 panic。
func (c *Cache) Get(kind Kind, raw []byte) (*Addr, error) {
	if c.closed {
		return nil, ErrCacheClosed
	}
	if !kind.IsValid() {
		panic(fmt.Sprintf("xaddr: invalid kind %d", kind))
	}
	if len(raw) != kind.Size() {
		return nil, fmt.Errorf("%w: %s expects %d bytes, got %d",
			ErrInvalidLength, kind, kind.Size(), len(raw))
	}

	// 栈上探针：借用 raw 做按值查找，不复制、不驻留。
	probe := Addr{kind: kind, raw: raw}
	if got, ok := c.trees[kind-1].Find(&probe); ok {
		got.refcnt++
		return got, nil
	}

	a, err := New(kind, raw)
	if err != nil {
		return nil, err
	}
	c.trees[kind-1].Insert(a)
	a.cache = c
	return a, nil
}

// Resolve 解析数值文本地址并驻留结果，等价于解析成功后的
// [Cache.Get]。语义与包级 [Resolve] 一致。
func (c *Cache) Resolve(family Family, s string) (*Addr, error) {
	if c.closed {
		return nil, ErrCacheClosed
	}
	kind, raw, err := resolveNumeric(family, s)
	if err != nil {
		return nil, err
	}
	return c.Get(kind, raw)
}

// Len 返回指定种类的驻留实例数量。
func (c *Cache) Len(kind Kind) int {
	if !kind.IsValid() {
		return 0
	}
	return c.trees[kind-1].Len()
}

// Size 返回全部种类的驻留实例总数。
func (c *Cache) Size() int {
	n := 0
	for i := range c.trees {
		n += c.trees[i].Len()
	}
	return n
}

// Close 关闭缓存：清除每个驻留成员的缓存回指针（只解除关联，
// 不销毁成员），然后丢弃各容器。仍被外部引用的地址继续有效，
// 其后续 [Addr.Release] 直接释放，不再触碰本缓存。
// 关闭后 Get/Resolve 返回 [ErrCacheClosed]；重复 Close 无害。
func (c *Cache) Close() {
	if c.closed {
		return
	}
	c.closed = true
	for i := numKinds - 1; i >= 0; i-- {
		c.trees[i].Teardown(func(a *Addr) {
			a.cache = nil
		})
	}
}

// remove 把引用计数归零的成员从容器中摘除。
// 由 [Addr.Release] 经回指针调用。
func (c *Cache) remove(a *Addr) {
	c.trees[a.kind-1].Delete(a)
}
