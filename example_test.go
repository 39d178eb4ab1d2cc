package arraystack_test

import (
	"fmt"

	"github.com/fixedcap/arraystack"
)

func ExampleStack() {
	// All storage is allocated here; nothing below allocates.
	s := arraystack.New[int](3)

	s.Push(10)
	s.Push(20)
	s.Push(30)
	fmt.Println(s.Full(), s.Peek())

	fmt.Println(s.Pop())
	fmt.Println(s.Len(), s.Peek())
	// Output:
	// true 30
	// 30
	// 20 20
}

func ExampleStack_TryPush() {
	s := arraystack.Of("a", "b") // full
	if !s.TryPush("c") {
		fmt.Println("stack is full")
	}
	// Output:
	// stack is full
}

func ExampleCompare() {
	a := arraystack.Of(1, 2)
	b := arraystack.Of(1, 2, 3)
	fmt.Println(arraystack.Compare(a, b))
	// Output:
	// -1
}

func ExampleStack_Backward() {
	s := arraystack.Of("bottom", "middle", "top")
	for _, v := range s.Backward() {
		fmt.Println(v)
	}
	// Output:
	// top
	// middle
	// bottom
}
