package xaddr

import (
	"net/netip"

	"go4.org/netipx"
)

// 链路本地前缀。
var (
	linkLocal4 = netip.MustParsePrefix("169.254.0.0/16")
	linkLocal6 = netip.MustParsePrefix("fe80::/10")
)

// rfc1918 是 RFC1918 私网范围的成员集合。
// 只读，初始化后不得修改。
var rfc1918 = mustIPSet(
	"10.0.0.0/8",
	"172.16.0.0/12",
	"192.168.0.0/16",
)

// mustIPSet 从 CIDR 文本构建 [netipx.IPSet]。
// 仅用于包级常量初始化，无效输入 panic。
func mustIPSet(prefixes ...string) *netipx.IPSet {
	var b netipx.IPSetBuilder
	for _, p := range prefixes {
		b.AddPrefix(netip.MustParsePrefix(p))
	}
	set, err := b.IPSet()
	if err != nil {
		panic("xaddr: building IP set: " + err.Error())
	}
	return set
}

// IsLinkLocal 报告地址是否为链路本地地址。
// IPv4 为 169.254.0.0/16，IPv6 为 fe80::/10；
// 链路层种类恒为 false。
func (a *Addr) IsLinkLocal() bool {
	h := handlers[a.kind-1]
	if h.linkLocal == nil {
		return false
	}
	return h.linkLocal(a)
}

// IsRFC1918 报告地址是否落在 RFC1918 私网范围
// （10.0.0.0/8、172.16.0.0/12、192.168.0.0/16）内。
// 非 IPv4 种类恒为 false。
func (a *Addr) IsRFC1918() bool {
	if a.kind != KindIPv4 {
		return false
	}
	ip, _ := a.NetipAddr()
	return rfc1918.Contains(ip)
}

func ipv4LinkLocal(a *Addr) bool {
	ip, _ := a.NetipAddr()
	return linkLocal4.Contains(ip)
}

func ipv6LinkLocal(a *Addr) bool {
	ip, _ := a.NetipAddr()
	return linkLocal6.Contains(ip)
}
