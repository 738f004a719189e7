package xaddr

import (
	"fmt"
	"strings"
)

// Parse 按指定种类解析文本地址，返回独立（未驻留）地址。
//
// IPv4/IPv6 委托 [Resolve] 的数值解析；Ethernet/FireWire
// 接受冒号分隔的十六进制字节对（大小写均可），
// 即 xx:xx:xx:xx:xx:xx 与 xx:xx:xx:xx:xx:xx:xx:xx。
func Parse(kind Kind, s string) (*Addr, error) {
	switch kind {
	case KindIPv4:
		return Resolve(FamilyIPv4, s)
	case KindIPv6:
		return Resolve(FamilyIPv6, s)
	case KindEthernet, KindFireWire:
		raw, err := parseHexColon(s, kind.Size())
		if err != nil {
			return nil, err
		}
		return New(kind, raw)
	default:
		panic(fmt.Sprintf("xaddr: invalid kind %d", kind))
	}
}

// MustParse 类似 [Parse]，但解析失败时 panic。
// 仅用于测试或包级初始化。
func MustParse(kind Kind, s string) *Addr {
	a, err := Parse(kind, s)
	if err != nil {
		panic(fmt.Sprintf("xaddr.MustParse(%s, %q): %v", kind, s, err))
	}
	return a
}

// parseHexColon 解析 n 个冒号分隔的十六进制字节对。
func parseHexColon(s string, n int) ([]byte, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, ErrEmpty
	}
	if len(s) != n*3-1 {
		return nil, fmt.Errorf("%w: expected %d hex byte pairs", ErrInvalidFormat, n)
	}
	raw := make([]byte, n)
	for i := range n {
		off := i * 3
		if i > 0 && s[off-1] != ':' {
			return nil, fmt.Errorf("%w: expected ':' at position %d", ErrInvalidFormat, off-1)
		}
		b, err := parseHexByte(s[off], s[off+1])
		if err != nil {
			return nil, fmt.Errorf("%w: invalid hex at position %d", ErrInvalidFormat, off)
		}
		raw[i] = b
	}
	return raw, nil
}

// parseHexByte 解析两个十六进制字符为一个字节。
func parseHexByte(hi, lo byte) (byte, error) {
	h, ok := hexVal(hi)
	if !ok {
		return 0, ErrInvalidFormat
	}
	l, ok := hexVal(lo)
	if !ok {
		return 0, ErrInvalidFormat
	}
	return h<<4 | l, nil
}

func hexVal(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}
