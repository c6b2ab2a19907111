/**
 *
 * 双端队列，保存最近的若干个时间步结果，供新连接的客户端回放
 *
 */

package deque

import "advdiff/model"

type Deque interface {
	// 队列的长度
	Size() int

	// 获取队列中对应下标的元素，0 为队头
	Get(i int) *model.Frame

	// 正向遍历
	Traverse(f func(i int, item *model.Frame))

	// 在队列结尾增加一个元素
	AddLast(item model.Frame)

	// 在队列结尾删除一个元素
	RemoveLast()

	// 在队列头部增加一个元素
	AddFirst(item model.Frame)

	// 在队列头部删除一个元素
	RemoveFirst()

	IsFull() bool

	IsEmpty() bool
}
