package xaddr

import (
	"encoding/binary"
	"fmt"
)

// InPrefix 报告地址的前 bits 位是否与 prefix 一致。
//
// bits 为 0 是通配前缀，恒为 true；bits 超过种类位宽返回
// [ErrPrefixLength]；prefix 长度必须等于种类宽度。
// 仅 IPv4/IPv6 支持，链路层种类返回 [ErrUnsupported]。
func (a *Addr) InPrefix(prefix []byte, bits int) (bool, error) {
	h := handlers[a.kind-1]
	if h.inPrefix == nil {
		return false, fmt.Errorf("%w: InPrefix on %s", ErrUnsupported, a.kind)
	}
	return h.inPrefix(a, prefix, bits)
}

// CommonPrefixLen 返回两个同种类地址相同的前导位数，
// 区间 [0, 种类位宽]。仅 IPv4/IPv6 支持。
func (a *Addr) CommonPrefixLen(b *Addr) (int, error) {
	if a.kind != b.kind {
		return 0, fmt.Errorf("%w: %s vs %s", ErrKindMismatch, a.kind, b.kind)
	}
	h := handlers[a.kind-1]
	if h.prefixLen == nil {
		return 0, fmt.Errorf("%w: CommonPrefixLen on %s", ErrUnsupported, a.kind)
	}
	return h.prefixLen(a, b), nil
}

// CommonPrefixLenHosts 在 [Addr.CommonPrefixLen] 的基础上应用
// 子网边界启发式，仅 IPv4 支持。
//
// 从被动观测的接口地址推断拓扑时，采样到子网的网络地址或
// 广播地址会让公共前缀长度看起来比真实子网更长。因此当公共
// 前缀长度小于 31 时，只要任一地址在候选长度下的主机部分为
// 全 0 或全 1，就继续缩短候选长度；长度不小于 31（点对点链路
// 规模）时不做二次猜测，原样返回。
func (a *Addr) CommonPrefixLenHosts(b *Addr) (int, error) {
	if a.kind != b.kind {
		return 0, fmt.Errorf("%w: %s vs %s", ErrKindMismatch, a.kind, b.kind)
	}
	h := handlers[a.kind-1]
	if h.prefixHosts == nil {
		return 0, fmt.Errorf("%w: CommonPrefixLenHosts on %s", ErrUnsupported, a.kind)
	}
	return h.prefixHosts(a, b), nil
}

// NetworkAddr 返回按 bits 位前缀掩码后的网络地址字节。
// bits 必须落在 (0, 种类位宽] 内，否则返回 [ErrPrefixLength]。
// 仅 IPv4/IPv6 支持。
func (a *Addr) NetworkAddr(bits int) ([]byte, error) {
	h := handlers[a.kind-1]
	if h.netAddr == nil {
		return nil, fmt.Errorf("%w: NetworkAddr on %s", ErrUnsupported, a.kind)
	}
	if bits <= 0 || bits > a.kind.Bits() {
		return nil, fmt.Errorf("%w: %d for %s", ErrPrefixLength, bits, a.kind)
	}
	return h.netAddr(a, bits), nil
}

func ipv4InPrefix(a *Addr, prefix []byte, bits int) (bool, error) {
	if bits == 0 {
		return true, nil
	}
	if bits > 32 {
		return false, fmt.Errorf("%w: %d for IPv4", ErrPrefixLength, bits)
	}
	if len(prefix) != 4 {
		return false, fmt.Errorf("%w: prefix buffer %d bytes", ErrInvalidLength, len(prefix))
	}
	av := binary.BigEndian.Uint32(a.raw)
	pv := binary.BigEndian.Uint32(prefix)
	return (av^pv)&netmask32[bits-1] == 0, nil
}

func ipv6InPrefix(a *Addr, prefix []byte, bits int) (bool, error) {
	if bits == 0 {
		return true, nil
	}
	if bits > 128 {
		return false, fmt.Errorf("%w: %d for IPv6", ErrPrefixLength, bits)
	}
	if len(prefix) != 16 {
		return false, fmt.Errorf("%w: prefix buffer %d bytes", ErrInvalidLength, len(prefix))
	}
	// 每次只能检查 32 位。
	for i := range 4 {
		mask := netmask32[31]
		if bits <= 32 {
			mask = netmask32[bits-1]
		}
		av := binary.BigEndian.Uint32(a.raw[i*4:])
		pv := binary.BigEndian.Uint32(prefix[i*4:])
		if (av^pv)&mask != 0 {
			return false, nil
		}
		if bits <= 32 {
			return true, nil
		}
		bits -= 32
	}
	// bits <= 128 保证循环内必然返回。
	panic("xaddr: unreachable")
}

func ipv4PrefixLen(a, b *Addr) int {
	av := binary.BigEndian.Uint32(a.raw)
	bv := binary.BigEndian.Uint32(b.raw)
	i := 32
	for ; i > 0; i-- {
		if (av^bv)&netmask32[i-1] == 0 {
			break
		}
	}
	return i
}

func ipv6PrefixLen(a, b *Addr) int {
	x := 0
	for i := range 4 {
		av := binary.BigEndian.Uint32(a.raw[i*4:])
		bv := binary.BigEndian.Uint32(b.raw[i*4:])
		if av == bv {
			x += 32
			continue
		}
		for j := range 32 {
			if (av^bv)&netmask32[j] != 0 {
				return x
			}
			x++
		}
	}
	return x
}

func ipv4PrefixLenHosts(a, b *Addr) int {
	av := binary.BigEndian.Uint32(a.raw)
	bv := binary.BigEndian.Uint32(b.raw)

	i := ipv4PrefixLen(a, b)
	if i >= 31 {
		return i
	}

	// 任一地址的主机部分是全 0（网络地址）或全 1（广播地址）时，
	// 观测到的可能是子网边界而非真实主机，继续缩短候选长度。
	for i > 0 {
		if c := av & hostmask32[i]; c == 0 || c == hostmask32[i] {
			i--
			continue
		}
		if c := bv & hostmask32[i]; c == 0 || c == hostmask32[i] {
			i--
			continue
		}
		break
	}
	return i
}

func ipv4NetAddr(a *Addr, bits int) []byte {
	v := binary.BigEndian.Uint32(a.raw) & netmask32[bits-1]
	out := make([]byte, 4)
	binary.BigEndian.PutUint32(out, v)
	return out
}

func ipv6NetAddr(a *Addr, bits int) []byte {
	out := make([]byte, 16)
	for i := range 4 {
		v := binary.BigEndian.Uint32(a.raw[i*4:])
		if bits < 32 {
			v &= netmask32[bits-1]
		}
		binary.BigEndian.PutUint32(out[i*4:], v)
		if bits <= 32 {
			break
		}
		bits -= 32
	}
	return out
}
