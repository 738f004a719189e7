package xaddr

// 十六进制字符表。
const hexLower = "0123456789abcdef"

// String 返回地址的规范文本形式。
//
//   - IPv4：点分十进制（委托 [net/netip] 渲染）
//   - IPv6：规范冒号十六进制（委托 [net/netip] 渲染）
//   - Ethernet：xx:xx:xx:xx:xx:xx（小写）
//   - FireWire：xx:xx:xx:xx:xx:xx:xx:xx（小写）
func (a *Addr) String() string {
	return string(a.AppendText(nil))
}

// AppendText 将地址的规范文本形式追加到 dst 并返回结果。
func (a *Addr) AppendText(dst []byte) []byte {
	return handlers[a.kind-1].appendText(a, dst)
}

// ipAppendText 渲染 IPv4/IPv6，委托标准库的规范化格式。
func ipAppendText(a *Addr, dst []byte) []byte {
	ip, _ := a.NetipAddr()
	return ip.AppendTo(dst)
}

// hexAppendText 渲染链路层地址：小写十六进制字节对，冒号分隔。
func hexAppendText(a *Addr, dst []byte) []byte {
	for i, b := range a.raw {
		if i > 0 {
			dst = append(dst, ':')
		}
		dst = append(dst, hexLower[b>>4], hexLower[b&0x0f])
	}
	return dst
}
