package huffman

import (
	"container/heap"
	"fmt"
	"math"
	"slices"

	"github.com/chronos-tachyon/assert"
)

type huffmanTree interface {
	getWeight() float64
	getId() int
}

type huffmanLeaf struct {
	weight float64
	id     int
	symbol Symbol
}

type huffmanNode struct {
	weight      float64
	id          int
	left, right huffmanTree
}

// huffmanHeap orders trees by weight, then by id. Leaves get ids in
// ascending symbol order and merged nodes get increasing ids, so equal
// weights always resolve the same way.
type huffmanHeap []huffmanTree

func (hub *huffmanHeap) Push(item any) {
	*hub = append(*hub, item.(huffmanTree))
}

func (hub *huffmanHeap) Pop() any {
	popped := (*hub)[len(*hub)-1]
	(*hub)[len(*hub)-1] = nil
	*hub = (*hub)[:len(*hub)-1]
	return popped
}

func (hub huffmanHeap) Len() int {
	return len(hub)
}

func (hub huffmanHeap) Less(i, j int) bool {
	if hub[i].getWeight() != hub[j].getWeight() {
		return hub[i].getWeight() < hub[j].getWeight()
	}
	return hub[i].getId() < hub[j].getId()
}

func (hub huffmanHeap) Swap(i, j int) {
	hub[i], hub[j] = hub[j], hub[i]
}

func (leaf huffmanLeaf) getId() int {
	return leaf.id
}

func (leaf huffmanLeaf) getWeight() float64 {
	return leaf.weight
}

func (node huffmanNode) getWeight() float64 {
	return node.weight
}

func (node huffmanNode) getId() int {
	return node.id
}

// Tree is a finished Huffman code tree.
type Tree struct {
	root     huffmanTree
	leaves   int
	internal int
}

// BuildTree merges the two lightest trees until one remains. The first tree
// popped becomes the 0 branch and the second the 1 branch.
func BuildTree(w Weights) (*Tree, error) {
	if len(w) == 0 {
		return nil, ErrEmptyAlphabet
	}
	keys := make([]Symbol, 0, len(w))
	for sym, weight := range w {
		if weight < 0 || math.IsNaN(weight) {
			return nil, fmt.Errorf("%w: symbol %q has weight %v", ErrNegativeWeight, sym, weight)
		}
		keys = append(keys, sym)
	}
	slices.Sort(keys)

	treehub := make(huffmanHeap, 0, len(keys))
	monoId := 0
	for _, key := range keys {
		treehub = append(treehub, huffmanLeaf{
			weight: w[key],
			symbol: key,
			id:     monoId,
		})
		monoId++
	}
	heap.Init(&treehub)
	internal := 0
	for treehub.Len() > 1 {
		x := heap.Pop(&treehub).(huffmanTree)
		y := heap.Pop(&treehub).(huffmanTree)
		heap.Push(&treehub, huffmanNode{
			weight: x.getWeight() + y.getWeight(),
			left:   x,
			right:  y,
			id:     monoId,
		})
		monoId++
		internal++
	}
	assert.Assertf(internal == len(keys)-1, "tree has %d internal nodes for %d leaves", internal, len(keys))

	t := &Tree{
		root:     heap.Pop(&treehub).(huffmanTree),
		leaves:   len(keys),
		internal: internal,
	}
	assert.Assertf(countLeaves(t.root) == t.leaves, "leaf count mismatch")
	return t, nil
}

func (t *Tree) Leaves() int {
	return t.leaves
}

func (t *Tree) Internal() int {
	return t.internal
}

func (t *Tree) Weight() float64 {
	return t.root.getWeight()
}

// Height is the number of edges on the longest root-to-leaf path.
func (t *Tree) Height() int {
	return height(t.root)
}

func height(tree huffmanTree) int {
	switch i := tree.(type) {
	case huffmanNode:
		return 1 + max(height(i.left), height(i.right))
	}
	return 0
}

func countLeaves(tree huffmanTree) int {
	switch i := tree.(type) {
	case huffmanLeaf:
		return 1
	case huffmanNode:
		return countLeaves(i.left) + countLeaves(i.right)
	}
	return 0
}
