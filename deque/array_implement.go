package deque

import (
	"fmt"

	"advdiff/model"
)

// ArrDeque is a fixed capacity ring buffer. Adding to a full deque is a
// no-op; callers evict from the other end first.
type ArrDeque struct {
	arr []model.Frame

	// 队头下标
	start int
	// 元素个数
	size int
}

// 工厂方法
func NewArrDeque(capacity int) *ArrDeque {
	if capacity < 1 {
		capacity = 1
	}
	return &ArrDeque{
		arr: make([]model.Frame, capacity),
	}
}

func (ad *ArrDeque) index(i int) int {
	return (ad.start + i) % len(ad.arr)
}

func (ad *ArrDeque) Size() int {
	return ad.size
}

func (ad *ArrDeque) Capacity() int {
	return len(ad.arr)
}

func (ad *ArrDeque) Get(i int) *model.Frame {
	if i < 0 || i >= ad.size {
		panic(fmt.Sprintf("deque: index %d out of length %d", i, ad.size))
	}
	return &ad.arr[ad.index(i)]
}

func (ad *ArrDeque) Traverse(f func(i int, item *model.Frame)) {
	for i := 0; i < ad.size; i++ {
		f(i, &ad.arr[ad.index(i)])
	}
}

func (ad *ArrDeque) AddLast(item model.Frame) {
	if ad.IsFull() {
		return
	}
	ad.arr[ad.index(ad.size)] = item
	ad.size++
}

func (ad *ArrDeque) RemoveLast() {
	if ad.IsEmpty() {
		return
	}
	ad.size--
	ad.arr[ad.index(ad.size)] = model.Frame{}
}

func (ad *ArrDeque) AddFirst(item model.Frame) {
	if ad.IsFull() {
		return
	}
	ad.start = (ad.start - 1 + len(ad.arr)) % len(ad.arr)
	ad.arr[ad.start] = item
	ad.size++
}

func (ad *ArrDeque) RemoveFirst() {
	if ad.IsEmpty() {
		return
	}
	// 释放对温度切片的引用
	ad.arr[ad.start] = model.Frame{}
	ad.start = (ad.start + 1) % len(ad.arr)
	ad.size--
}

func (ad *ArrDeque) IsFull() bool {
	return ad.size == len(ad.arr)
}

func (ad *ArrDeque) IsEmpty() bool {
	return ad.size == 0
}
