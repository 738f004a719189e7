// Package xaddr 提供带引用计数的多态网络地址值与驻留缓存。
//
// xaddr 面向大规模网络测量负载：大量探测反复引用同一小集合的
// IPv4/IPv6/链路层地址，按值驻留（interning）把重复地址折叠为
// 共享实例，使内存占用与去重后的地址集合成正比。
//
// 支持四种地址种类（[Kind]，判别值 1..4 稳定，用作持久化标签）：
//
//   - [KindIPv4]：4 字节
//   - [KindIPv6]：16 字节
//   - [KindEthernet]：EUI-48，6 字节
//   - [KindFireWire]：EUI-64，8 字节
//
// # 快速示例
//
// 独立地址（不驻留）：
//
//	a, err := xaddr.Resolve(xaddr.FamilyUnspec, "192.0.2.1")
//	fmt.Println(a.String())      // 192.0.2.1
//	fmt.Println(a.IsRFC1918())   // false
//	a.Release()
//
// 缓存驻留（重复请求共享同一实例）：
//
//	c := xaddr.NewCache()
//	defer c.Close()
//	a1, _ := c.Get(xaddr.KindIPv4, []byte{10, 0, 0, 1})
//	a2, _ := c.Get(xaddr.KindIPv4, []byte{10, 0, 0, 1})
//	// a1 == a2（同一实例），各自 Release 一次
//	a1.Release()
//	a2.Release()
//
// 前缀运算（仅 IPv4/IPv6）：
//
//	a := xaddr.MustParse(xaddr.KindIPv4, "192.168.1.7")
//	b := xaddr.MustParse(xaddr.KindIPv4, "192.168.1.9")
//	n, _ := a.CommonPrefixLen(b)  // 28
//	net, _ := a.NetworkAddr(24)   // [192 168 1 0]
//
// # 生命周期
//
// 地址有两种来源：独立分配（[New]、[Parse]、[Resolve]，无缓存
// 回指针）与缓存驻留（[Cache.Get]、[Cache.Resolve]，带回指针）。
// [Addr.Acquire] 共享所有权，[Addr.Release] 归还；引用计数归零时
// 驻留地址先从缓存摘除再销毁。[Cache.Close] 只解除成员与缓存的
// 关联（detach），绝不销毁仍被外部引用的成员。
//
// # 设计决策
//
//   - 按种类的分发表（handlers，下标 Kind-1）集中每种地址的算法，
//     链路层种类未定义的前缀操作统一返回 [ErrUnsupported]
//   - 缓存回指针是显式弱引用：仅用于归零自摘除，不参与生命周期
//   - 前缀运算使用预置的 1..32 位掩码表，IPv6 按 32 位字复用同表
//   - RFC1918 判断基于 go4.org/netipx 的 IPSet 成员集合
//   - 跨种类比较只按判别值排序，绝不比较字节
//
// # 并发模型
//
// 单一属主线程：引用计数为普通整数操作，无内部锁。多线程共享
// 同一 Addr 或 Cache 属未定义行为，需调用方以外部锁保护，或按
// [Addr.Sum64] 把地址分片到每 worker 一个的缓存。除解析外无阻塞
// 操作，无内部超时。
package xaddr
