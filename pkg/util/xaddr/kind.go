package xaddr

// Kind 标识地址种类。
//
// 判别值 1..4 连续且稳定：既作为内部分发表的下标，
// 也作为持久化标签在测量数据中交换，严禁重新编号。
type Kind uint8

const (
	// KindIPv4 表示 IPv4 地址（4 字节）。
	KindIPv4 Kind = iota + 1
	// KindIPv6 表示 IPv6 地址（16 字节）。
	KindIPv6
	// KindEthernet 表示以太网 MAC 地址（EUI-48，6 字节）。
	KindEthernet
	// KindFireWire 表示 FireWire 链路层地址（EUI-64，8 字节）。
	KindFireWire
)

// numKinds 支持的地址种类数量。
const numKinds = 4

// IsValid 报告 k 是否为已定义的地址种类。
func (k Kind) IsValid() bool {
	return k >= KindIPv4 && k <= KindFireWire
}

// Size 返回该种类的固定字节宽度。
// 无效种类返回 0。
func (k Kind) Size() int {
	if !k.IsValid() {
		return 0
	}
	return handlers[k-1].size
}

// Bits 返回该种类的位宽（Size * 8）。
// 无效种类返回 0。
func (k Kind) Bits() int {
	return k.Size() * 8
}

// String 返回种类的字符串表示。
func (k Kind) String() string {
	switch k {
	case KindIPv4:
		return "IPv4"
	case KindIPv6:
		return "IPv6"
	case KindEthernet:
		return "Ethernet"
	case KindFireWire:
		return "FireWire"
	default:
		return "unknown"
	}
}

// Family 表示解析时的地址族选择器。
type Family uint8

const (
	// FamilyUnspec 不限制地址族（IPv4 与 IPv6 均可）。
	// 对链路层种类的 [Addr.Family] 也返回此值。
	FamilyUnspec Family = iota
	// FamilyIPv4 仅接受 IPv4。
	FamilyIPv4
	// FamilyIPv6 仅接受 IPv6。
	FamilyIPv6
)

// String 返回地址族的字符串表示。
func (f Family) String() string {
	switch f {
	case FamilyIPv4:
		return "IPv4"
	case FamilyIPv6:
		return "IPv6"
	case FamilyUnspec:
		return "unspec"
	default:
		return "unknown"
	}
}
