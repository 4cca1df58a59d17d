// Package eventree 루트(1번)에서 잘라낼 수 있는 간선 수를 센다.
// 간선을 끊은 뒤 모든 연결 요소의 정점 수가 짝수여야 한다.
package eventree

import (
	"fmt"
	"io"

	"github.com/cockroachdb/errors"

	"github.com/rlaau/S_A_Exercises/internal/input"
)

var (
	// ErrNodeOutOfRange 1..N 밖의 정점 번호
	ErrNodeOutOfRange = errors.New("node out of range")
	// ErrNotATree 루트에 부모를 달거나, 자기 자신을 부모로 두거나, 부모가 둘인 간선
	ErrNotATree = errors.New("edge breaks tree shape")
)

// Tree 1번을 루트로 하는 트리. children[v]는 v의 자식 목록, parent[v]는 v의 부모 (없으면 0).
// 정점마다 부모가 최대 하나이고 루트에는 부모가 없으므로, 루트에서 닿는 부분에는 사이클이 없다.
type Tree struct {
	children [][]int
	parent   []int
}

// New 정점 n개짜리 빈 트리
func New(n int) *Tree {
	size := max(n, 0) + 1
	return &Tree{children: make([][]int, size), parent: make([]int, size)}
}

// Len 정점 수
func (t *Tree) Len() int { return len(t.children) - 1 }

// AddEdge child를 parent의 자식으로 연결
func (t *Tree) AddEdge(child, parent int) error {
	n := t.Len()
	if child < 1 || child > n || parent < 1 || parent > n {
		return errors.Wrapf(ErrNodeOutOfRange, "edge %d-%d, nodes=%d", child, parent, n)
	}
	switch {
	case child == 1:
		return errors.Wrapf(ErrNotATree, "edge %d-%d: root cannot have a parent", child, parent)
	case child == parent:
		return errors.Wrapf(ErrNotATree, "edge %d-%d: self loop", child, parent)
	case t.parent[child] != 0:
		return errors.Wrapf(ErrNotATree, "edge %d-%d: %d already has parent %d", child, parent, child, t.parent[child])
	}
	t.parent[child] = parent
	t.children[parent] = append(t.children[parent], child)
	return nil
}

// SubtreeSizes 루트에서 닿는 정점마다 서브트리 크기. 닿지 않는 정점은 0.
func (t *Tree) SubtreeSizes() []int {
	sizes := make([]int, len(t.children))
	if t.Len() < 1 {
		return sizes
	}

	// 후위 순회를 명시적 스택으로 (깊은 트리에서도 재귀 한계 없음)
	type frame struct {
		node     int
		expanded bool
	}
	stack := []frame{{node: 1}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if top.expanded {
			sizes[top.node] = 1
			for _, c := range t.children[top.node] {
				sizes[top.node] += sizes[c]
			}
			continue
		}
		stack = append(stack, frame{node: top.node, expanded: true})
		for _, c := range t.children[top.node] {
			stack = append(stack, frame{node: c})
		}
	}
	return sizes
}

// RemovableEdges 서브트리 크기가 0이 아닌 짝수인, 루트가 아닌 정점의 수
func (t *Tree) RemovableEdges() int {
	res := 0
	sizes := t.SubtreeSizes()
	for v := 2; v < len(sizes); v++ {
		if sizes[v] != 0 && sizes[v]%2 == 0 {
			res++
		}
	}
	return res
}

// Run "N M" 과 M개의 "u v" 간선을 읽어 잘라낼 수 있는 간선 수를 출력한다
func Run(r io.Reader, w io.Writer) error {
	sc := input.NewScanner(r)

	n, err := sc.Int()
	if err != nil {
		return errors.Wrap(err, "read node count")
	}
	m, err := sc.Int()
	if err != nil {
		return errors.Wrap(err, "read edge count")
	}

	tree := New(n)
	for i := range m {
		e, err := sc.Ints(2)
		if err != nil {
			return errors.Wrapf(err, "read edge %d of %d", i+1, m)
		}
		if err := tree.AddEdge(e[0], e[1]); err != nil {
			return err
		}
	}

	_, err = fmt.Fprintln(w, tree.RemovableEdges())
	return errors.Wrap(err, "write result")
}
