package xaddr

import "errors"

// 预定义错误变量，支持 errors.Is 判断。
var (
	// ErrEmpty 表示输入为空字符串。
	ErrEmpty = errors.New("xaddr: empty input")

	// ErrInvalidFormat 表示地址文本格式无效。
	ErrInvalidFormat = errors.New("xaddr: invalid format")

	// ErrInvalidLength 表示原始字节长度与地址种类的固定宽度不符。
	ErrInvalidLength = errors.New("xaddr: invalid length")

	// ErrKindMismatch 表示跨种类调用了要求同种类的操作。
	ErrKindMismatch = errors.New("xaddr: address kind mismatch")

	// ErrUnsupported 表示该种类未定义此操作（如链路层地址的前缀运算）。
	ErrUnsupported = errors.New("xaddr: operation unsupported for kind")

	// ErrPrefixLength 表示前缀长度超出种类的位宽或不在有效区间。
	ErrPrefixLength = errors.New("xaddr: invalid prefix length")

	// ErrBadFamily 表示地址族选择器无效。
	ErrBadFamily = errors.New("xaddr: invalid address family")

	// ErrNoAddress 表示解析未产生可用地址。
	// 解析失败不再细分原因，统一以此错误上报。
	ErrNoAddress = errors.New("xaddr: no address produced")

	// ErrCacheClosed 表示驻留缓存已关闭，不再接受查询或插入。
	ErrCacheClosed = errors.New("xaddr: cache closed")
)
