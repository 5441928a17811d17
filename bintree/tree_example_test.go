package bintree_test

import (
	"fmt"
	"strings"

	"github.com/npat-efault/bst/bintree"
)

// Type for the tree elements (key + value)
type Element struct {
	k int
	v string
}

// Elements are ordered by key only; a zero-valued Element with just
// the key set can be used for searching.
func cmpElement(a, b Element) int {
	return a.k - b.k
}

func Example() {
	// keys of a naturally ordered type
	tree := bintree.New[int]()
	for _, k := range []int{50, 30, 20, 40, 70, 60, 80} {
		tree.Insert(k)
	}
	if n := tree.Search(60); n != nil {
		fmt.Println("found", n.Key())
	}
	tree.Delete(70)
	fmt.Println(tree.Keys(bintree.InOrder))
	// Output:
	// found 60
	// [20 30 40 50 60 80]
}

func ExampleNewFunc() {
	tree := bintree.NewFunc(cmpElement)
	els := []Element{
		{73, "foo"}, {32, "bar"}, {33, "baz"}, {10, "qux"},
		{42, "quux"}, {5, "corge"}, {8, "grault"}, {4, "garply"},
		{32, "dup"},
	}
	for _, e := range els {
		if !tree.Insert(e) {
			fmt.Printf("Elem %d already in tree!\n", e.k)
		}
	}

	// Remove node with key == 10
	tree.Delete(Element{k: 10})

	// Scan the tree for elements (e): e <= 70
	for e := range tree.Range(Element{k: 0}, Element{k: 70}) {
		fmt.Println(e)
	}
	// Output:
	// Elem 32 already in tree!
	// {4 garply}
	// {5 corge}
	// {8 grault}
	// {32 bar}
	// {33 baz}
	// {42 quux}
}

func ExampleTree_All() {
	tree := bintree.New[string]()
	for _, s := range strings.Fields("m f t b h p w") {
		tree.Insert(s)
	}
	for _, o := range []bintree.Order{bintree.PreOrder, bintree.InOrder,
		bintree.PostOrder, bintree.LevelOrder} {
		fmt.Printf("%-5s:", o)
		for k := range tree.All(o) {
			fmt.Print(" ", k)
		}
		fmt.Println()
	}
	// Output:
	// pre  : m f b h t p w
	// in   : b f h m p t w
	// post : b h f p w t m
	// level: m f t b h p w
}
