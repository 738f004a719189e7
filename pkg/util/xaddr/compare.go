package xaddr

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// Compare 按网络字节序比较两个地址，返回 -1/0/1。
// 这也是驻留缓存的排序键。
//
// 同一实例直接返回 0（身份快速路径，不读字节）。
// 种类不同时按判别值排序（小判别值在前），绝不跨种类比较字节。
func (a *Addr) Compare(b *Addr) int {
	if a == b {
		return 0
	}
	if a.kind != b.kind {
		if a.kind < b.kind {
			return -1
		}
		return 1
	}
	return handlers[a.kind-1].cmp(a, b)
}

// HumanCompare 按主机字节序的数值大小比较两个地址，返回 -1/0/1。
// 面向人类可读的排序（如报告输出）。
//
// 与 [Addr.Compare] 独立实现：本实现按大端解码后的数值逐字比较，
// 两者在当前编码下诱导相同的全序，但调用方不应依赖这一点。
// 身份快速路径与跨种类规则与 [Addr.Compare] 一致。
func (a *Addr) HumanCompare(b *Addr) int {
	if a == b {
		return 0
	}
	if a.kind != b.kind {
		if a.kind < b.kind {
			return -1
		}
		return 1
	}
	return handlers[a.kind-1].humanCmp(a, b)
}

// RawCompare 将地址与同种类固定宽度的原始字节缓冲逐字节比较。
// 用于不构造完整 Addr 的按值探测。
// raw 长度不等于种类宽度属调用方契约错误，触发 panic。
func (a *Addr) RawCompare(raw []byte) int {
	if len(raw) != a.Size() {
		panic(fmt.Sprintf("xaddr: RawCompare buffer length %d, %s expects %d",
			len(raw), a.kind, a.Size()))
	}
	return bytes.Compare(a.raw, raw)
}

// ipv4Cmp 按网络字节序比较 4 字节地址。
func ipv4Cmp(a, b *Addr) int {
	return bytes.Compare(a.raw, b.raw)
}

// ipv4HumanCmp 按主机序数值比较 IPv4 地址。
func ipv4HumanCmp(a, b *Addr) int {
	av := binary.BigEndian.Uint32(a.raw)
	bv := binary.BigEndian.Uint32(b.raw)
	switch {
	case av < bv:
		return -1
	case av > bv:
		return 1
	default:
		return 0
	}
}

// ipv6Cmp 按网络字节序逐 32 位字比较 IPv6 地址。
func ipv6Cmp(a, b *Addr) int {
	return bytes.Compare(a.raw, b.raw)
}

// ipv6HumanCmp 按主机序数值逐 32 位字比较 IPv6 地址。
func ipv6HumanCmp(a, b *Addr) int {
	for i := range 4 {
		av := binary.BigEndian.Uint32(a.raw[i*4:])
		bv := binary.BigEndian.Uint32(b.raw[i*4:])
		if av < bv {
			return -1
		}
		if av > bv {
			return 1
		}
	}
	return 0
}

// rawCmp 链路层地址的逐字节比较；网络序与主机序一致。
func rawCmp(a, b *Addr) int {
	return bytes.Compare(a.raw, b.raw)
}
