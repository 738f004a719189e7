// Package util 提供通用工具相关的子包。
//
// 子包列表：
//   - xaddr: 多态网络地址值类型，引用计数、前缀运算、驻留缓存
//   - xtree: 比较器驱动的泛型有序容器，基于 google/btree
//
// 设计原则：
//   - 不可变值语义，构造后只读
//   - 显式生命周期，资源归还由调用方负责
//   - 单属主线程模型，不内置锁
package util
