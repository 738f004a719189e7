package xaddr

import (
	"fmt"
	"net/netip"
	"strings"
)

// Resolve 把数值文本地址（不做 DNS 解析）解析为独立地址，
// 引用计数为 1。family 限制接受的地址族；[FamilyUnspec]
// 表示 IPv4/IPv6 均可。
//
// 解析委托 [netip.ParseAddr]：IPv4 映射的 IPv6 地址
// （::ffff:a.b.c.d）按 IPv4 处理，带 zone 的地址被拒绝。
// 未产生可用地址统一返回 [ErrNoAddress]。
func Resolve(family Family, s string) (*Addr, error) {
	kind, raw, err := resolveNumeric(family, s)
	if err != nil {
		return nil, err
	}
	return New(kind, raw)
}

// resolveNumeric 是解析胶水的核心：数值文本 → (种类, 字节)。
// 只消费首个匹配 family 的候选。
func resolveNumeric(family Family, s string) (Kind, []byte, error) {
	if family != FamilyUnspec && family != FamilyIPv4 && family != FamilyIPv6 {
		return 0, nil, fmt.Errorf("%w: %d", ErrBadFamily, family)
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil, ErrEmpty
	}
	ip, err := netip.ParseAddr(s)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %q", ErrNoAddress, s)
	}
	if ip.Zone() != "" {
		// zone 不参与缓存键，带 zone 的地址视为不可用。
		return 0, nil, fmt.Errorf("%w: zone in %q", ErrNoAddress, s)
	}
	ip = ip.Unmap()

	switch family {
	case FamilyIPv4:
		if !ip.Is4() {
			return 0, nil, fmt.Errorf("%w: %q is not IPv4", ErrNoAddress, s)
		}
	case FamilyIPv6:
		if ip.Is4() {
			return 0, nil, fmt.Errorf("%w: %q is not IPv6", ErrNoAddress, s)
		}
	}

	if ip.Is4() {
		b := ip.As4()
		return KindIPv4, b[:], nil
	}
	b := ip.As16()
	return KindIPv6, b[:], nil
}
