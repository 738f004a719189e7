// Package xtree 提供按三路比较器组织的泛型有序容器。
//
// xtree 是 [github.com/google/btree] 的薄封装：调用方提供一个
// cmp(a, b) int 比较器（返回 -1/0/1），容器按该顺序维护元素，
// 支持按键查找、插入、删除和带回调的整体拆除。
//
// # 快速示例
//
// 以字节序维护地址集合：
//
//	t := xtree.New[[]byte](bytes.Compare)
//	t.Insert([]byte{10, 0, 0, 1})
//	got, ok := t.Find([]byte{10, 0, 0, 1}) // ok == true
//
// 拆除容器并在丢弃每个元素前执行回调：
//
//	t.Teardown(func(b []byte) {
//	    // 元素即将从容器中丢弃
//	})
//
// # 设计决策
//
//   - 必须通过 [New] 创建，零值不可用（方法调用会 panic）
//   - 比较器在容器生命周期内不可更换，元素参与排序的字段不可原地修改
//   - 非并发安全：与 xlru 不同，xtree 面向单一属主线程模型，
//     并发访问需调用方加锁
//   - [Tree.Teardown] 是唯一的遍历入口，不得与插入/删除并发执行
package xtree
