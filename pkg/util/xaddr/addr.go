package xaddr

import (
	"fmt"
	"net/netip"

	"github.com/cespare/xxhash/v2"
)

// Addr 是带引用计数的多态网络地址值。
//
// 地址字节在创建后不可变；可变的只有簿记字段（引用计数与
// 缓存回指针）。Addr 以指针身份共享：[Addr.Acquire] 增加引用，
// [Addr.Release] 减少引用并在归零时销毁。
//
// 并发模型：单一属主线程。引用计数是普通整数操作，
// 多线程共享同一 Addr 或同一 [Cache] 需调用方加锁
// （推荐每个 worker 一个缓存）。
type Addr struct {
	kind   Kind
	raw    []byte // 长度恒等于 kind.Size()
	refcnt int
	cache  *Cache // 非拥有的回指针，仅用于归零时自摘除
}

// handler 聚合一个地址种类的全部算法。
// 种类未定义的操作以 nil 表示，入口函数统一转换为 [ErrUnsupported]。
type handler struct {
	size        int
	cmp         func(a, b *Addr) int
	humanCmp    func(a, b *Addr) int
	appendText  func(a *Addr, dst []byte) []byte
	inPrefix    func(a *Addr, prefix []byte, bits int) (bool, error)
	prefixLen   func(a, b *Addr) int
	prefixHosts func(a, b *Addr) int
	linkLocal   func(a *Addr) bool
	netAddr     func(a *Addr, bits int) []byte
}

// handlers 按 Kind-1 索引的分发表。
var handlers = [numKinds]handler{
	KindIPv4 - 1: {
		size:        4,
		cmp:         ipv4Cmp,
		humanCmp:    ipv4HumanCmp,
		appendText:  ipAppendText,
		inPrefix:    ipv4InPrefix,
		prefixLen:   ipv4PrefixLen,
		prefixHosts: ipv4PrefixLenHosts,
		linkLocal:   ipv4LinkLocal,
		netAddr:     ipv4NetAddr,
	},
	KindIPv6 - 1: {
		size:       16,
		cmp:        ipv6Cmp,
		humanCmp:   ipv6HumanCmp,
		appendText: ipAppendText,
		inPrefix:   ipv6InPrefix,
		prefixLen:  ipv6PrefixLen,
		linkLocal:  ipv6LinkLocal,
		netAddr:    ipv6NetAddr,
	},
	KindEthernet - 1: {
		size:       6,
		cmp:        rawCmp,
		humanCmp:   rawCmp,
		appendText: hexAppendText,
	},
	KindFireWire - 1: {
		size:       8,
		cmp:        rawCmp,
		humanCmp:   rawCmp,
		appendText: hexAppendText,
	},
}

// New 以 raw 的副本创建独立（未驻留）地址，引用计数为 1。
// raw 长度必须等于 kind.Size()，否则返回 [ErrInvalidLength]。
// kind 无效属调用方契约错误，触发 panic。
func New(kind Kind, raw []byte) (*Addr, error) {
	if !kind.IsValid() {
		panic(fmt.Sprintf("xaddr: invalid kind %d", kind))
	}
	if len(raw) != kind.Size() {
		return nil, fmt.Errorf("%w: %s expects %d bytes, got %d",
			ErrInvalidLength, kind, kind.Size(), len(raw))
	}
	b := make([]byte, kind.Size())
	copy(b, raw)
	return &Addr{kind: kind, raw: b, refcnt: 1}, nil
}

// Acquire 增加引用计数并返回 a 本身（共享所有权）。
// a 为 nil 时返回 nil。
func (a *Addr) Acquire() *Addr {
	if a == nil {
		return nil
	}
	a.refcnt++
	return a
}

// Release 减少引用计数。计数归零时地址被销毁：
// 若存在缓存回指针，先从该缓存的容器中摘除自身，再释放字节。
// 缓存已被关闭（回指针已清除）的地址直接释放，不触碰任何容器。
//
// 对已销毁地址再次 Release 属调用方契约错误，触发 panic。
func (a *Addr) Release() {
	if a == nil {
		return
	}
	if a.refcnt <= 0 {
		panic("xaddr: Release of destroyed address")
	}
	a.refcnt--
	if a.refcnt > 0 {
		return
	}
	if a.cache != nil {
		a.cache.remove(a)
		a.cache = nil
	}
	a.raw = nil
}

// Kind 返回地址种类。
func (a *Addr) Kind() Kind {
	return a.kind
}

// Size 返回地址的固定字节宽度。
func (a *Addr) Size() int {
	return handlers[a.kind-1].size
}

// Bytes 返回地址字节的副本，长度恒为 Size()。
// 返回副本，修改不影响原值。
func (a *Addr) Bytes() []byte {
	b := make([]byte, len(a.raw))
	copy(b, a.raw)
	return b
}

// RefCount 返回当前引用计数。仅用于测试与诊断工具。
func (a *Addr) RefCount() int {
	return a.refcnt
}

// Family 返回地址所属的 IP 地址族。
// 链路层种类（Ethernet/FireWire）返回 [FamilyUnspec]。
func (a *Addr) Family() Family {
	switch a.kind {
	case KindIPv4:
		return FamilyIPv4
	case KindIPv6:
		return FamilyIPv6
	default:
		return FamilyUnspec
	}
}

// NetipAddr 返回地址的 [netip.Addr] 表示。
// 仅 IPv4/IPv6 有效；链路层种类返回 (netip.Addr{}, false)。
func (a *Addr) NetipAddr() (netip.Addr, bool) {
	switch a.kind {
	case KindIPv4:
		return netip.AddrFrom4([4]byte(a.raw)), true
	case KindIPv6:
		return netip.AddrFrom16([16]byte(a.raw)), true
	default:
		return netip.Addr{}, false
	}
}

// Sum64 返回 (种类, 字节) 的 xxhash 摘要。
// 用于把探测状态按地址分片到多个 worker（每 worker 一个缓存）。
func (a *Addr) Sum64() uint64 {
	var buf [17]byte
	buf[0] = byte(a.kind)
	n := copy(buf[1:], a.raw)
	return xxhash.Sum64(buf[:1+n])
}
