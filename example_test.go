package dllist_test

import (
	"fmt"

	"github.com/sirkon/dllist"
)

func ExampleList() {
	l := dllist.NewOrdered[int]()
	for _, v := range []int{3, 1, 3, 2, 1} {
		l.PushBack(v)
	}

	l.Sort()
	fmt.Println(l.Values())

	l.Unique()
	fmt.Println(l.Values())

	other := dllist.NewOrdered[int]()
	other.PushBack(0)
	other.PushBack(4)
	l.Merge(other)
	fmt.Println(l.Values(), other.Len())

	if _, err := l.Front(); err != nil {
		panic(err)
	}
	l.Clear()
	if _, err := l.Front(); err != nil {
		fmt.Println(dllist.IsEmptyContainer(err))
	}

	// Output:
	// [1 1 2 3 3]
	// [1 2 3]
	// [0 1 2 3 4] 0
	// true
}

func ExampleList_Reverse() {
	l := dllist.NewOrdered[int]()
	for i := 1; i <= 4; i++ {
		l.PushBack(i)
	}

	// Итератор на второй узел.
	it := l.Begin()
	if err := it.Next(); err != nil {
		panic(err)
	}

	l.Reverse()
	v, err := it.Get()
	if err != nil {
		panic(err)
	}
	fmt.Println(l.Values(), v)

	// Output:
	// [4 3 2 1] 3
}

func ExampleIterator_Prev() {
	l := dllist.NewOrdered[string]()
	l.PushBack("a")
	l.PushBack("b")

	it := l.End()
	for it.Prev() == nil {
		v, _ := it.Get()
		fmt.Println(v)
	}

	empty := dllist.NewOrdered[string]()
	end := empty.End()
	fmt.Println(dllist.IsInvalidPosition(end.Prev()))

	// Output:
	// b
	// a
	// true
}
