package bestfirst

import (
	"github.com/haya28/othello/board"
	"github.com/haya28/othello/move"
)

// searchNode is owned by the frontier. firstMove is the move made at the
// very first ply of the path leading here; it is what GetMove ultimately
// returns, however deep the search runs.
type searchNode struct {
	fscore    int
	depth     int
	b         *board.Board
	firstMove *move.Move
	seq       uint64
}

// frontier is a min-heap over fscore implementing heap.Interface. Nodes
// with equal fscores pop in push order, which makes the search fully
// deterministic given the row-major move enumeration.
type frontier struct {
	nodes   []*searchNode
	nextSeq uint64
}

func newFrontier() *frontier {
	return &frontier{}
}

func (f *frontier) Len() int {
	return len(f.nodes)
}

func (f *frontier) Less(i, j int) bool {
	if f.nodes[i].fscore != f.nodes[j].fscore {
		return f.nodes[i].fscore < f.nodes[j].fscore
	}
	return f.nodes[i].seq < f.nodes[j].seq
}

func (f *frontier) Swap(i, j int) {
	f.nodes[i], f.nodes[j] = f.nodes[j], f.nodes[i]
}

func (f *frontier) Push(x any) {
	node := x.(*searchNode)
	node.seq = f.nextSeq
	f.nextSeq++
	f.nodes = append(f.nodes, node)
}

func (f *frontier) Pop() any {
	old := f.nodes
	n := len(old)
	node := old[n-1]
	old[n-1] = nil
	f.nodes = old[:n-1]
	return node
}
