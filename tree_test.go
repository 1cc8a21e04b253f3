package huffman

import (
	"strings"
	"testing"
)

func makeTable(symbols []Symbol, counts []uint64) *FrequencyTable {
	ft := NewFrequencyTable()
	for index, symbol := range symbols {
		ft.Put(symbol, counts[index])
	}
	return ft
}

func codeStrings(ct *CodeTable) map[Symbol]string {
	out := make(map[Symbol]string, ct.Len())
	for _, symbol := range ct.Symbols() {
		hc, _ := ct.Lookup(symbol)
		out[symbol] = hc.bitString()
	}
	return out
}

func TestBuildTree_Classic(t *testing.T) {
	ft := makeTable([]Symbol{'a', 'b', 'c', 'd', 'e', 'f'}, []uint64{5, 9, 12, 13, 16, 45})
	tree := BuildTree(ft)
	defer tree.Release()

	expectDump := strings.Join([]string{
		"Tree{\n",
		"\tWeight() = 100\n",
		"\tLeaves() = 6\n",
		"\tLeaf('f') = {45, \"0\"}\n",
		"\tLeaf('c') = {12, \"100\"}\n",
		"\tLeaf('d') = {13, \"101\"}\n",
		"\tLeaf('a') = {5, \"1100\"}\n",
		"\tLeaf('b') = {9, \"1101\"}\n",
		"\tLeaf('e') = {16, \"111\"}\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = tree.Dump(&buf)
	actualDump := buf.String()
	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}
}

func TestBuildTree_WeightInvariant(t *testing.T) {
	tree := BuildTree(CountBytes([]byte("abracadabra, alakazam")))
	defer tree.Release()

	stack := []Node{tree.Root()}
	for len(stack) != 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		in, ok := node.(*Internal)
		if !ok {
			continue
		}
		if in.Weight() != in.Left.Weight()+in.Right.Weight() {
			t.Errorf("internal node weight %d != %d + %d", in.Weight(), in.Left.Weight(), in.Right.Weight())
		}
		stack = append(stack, in.Left, in.Right)
	}

	if expect := uint64(len("abracadabra, alakazam") + 1); tree.Weight() != expect {
		t.Errorf("expected root weight %d, got %d", expect, tree.Weight())
	}
}

func TestBuildTree_TieBreak(t *testing.T) {
	type testRow struct {
		name    string
		symbols []Symbol
		counts  []uint64
		expect  map[Symbol]string
	}

	testData := [...]testRow{
		{
			name:    "two-entries",
			symbols: []Symbol{'a', PseudoEOF},
			counts:  []uint64{4, 1},
			expect:  map[Symbol]string{PseudoEOF: "0", 'a': "1"},
		},
		{
			name:    "equal-leaves-by-symbol",
			symbols: []Symbol{'c', 'b', 'a', PseudoEOF},
			counts:  []uint64{1, 1, 1, 1},
			expect:  map[Symbol]string{'a': "00", 'b': "01", 'c': "10", PseudoEOF: "11"},
		},
		{
			name:    "equal-leaves-reversed-insertion",
			symbols: []Symbol{PseudoEOF, 'a', 'b', 'c'},
			counts:  []uint64{1, 1, 1, 1},
			expect:  map[Symbol]string{'a': "00", 'b': "01", 'c': "10", PseudoEOF: "11"},
		},
		{
			name:    "leaf-before-internal",
			symbols: []Symbol{'a', 'b', 'c'},
			counts:  []uint64{1, 1, 2},
			expect:  map[Symbol]string{'c': "0", 'a': "10", 'b': "11"},
		},
		{
			name:    "internal-by-creation",
			symbols: []Symbol{'a', 'b', 'c', 'd', 'e'},
			counts:  []uint64{1, 1, 1, 1, 4},
			expect:  map[Symbol]string{'e': "0", 'a': "100", 'b': "101", 'c': "110", 'd': "111"},
		},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			tree := BuildTree(makeTable(row.symbols, row.counts))
			defer tree.Release()

			actual := codeStrings(BuildCodeTable(tree))
			if len(actual) != len(row.expect) {
				t.Errorf("expected %d codes, got %d", len(row.expect), len(actual))
			}
			for symbol, expect := range row.expect {
				if actual[symbol] != expect {
					t.Errorf("code for %s: expected %q, got %q", symbol, expect, actual[symbol])
				}
			}
		})
	}
}

func TestBuildTree_SingleEntry(t *testing.T) {
	tree := BuildTree(makeTable([]Symbol{PseudoEOF}, []uint64{1}))
	defer tree.Release()

	leaf, ok := tree.Root().(*Leaf)
	if !ok {
		t.Fatalf("expected root to be *Leaf, got %T", tree.Root())
	}
	if leaf.Symbol != PseudoEOF {
		t.Errorf("expected root symbol EOF, got %s", leaf.Symbol)
	}

	ct := BuildCodeTable(tree)
	hc, found := ct.Lookup(PseudoEOF)
	if !found || hc.bitString() != "0" {
		t.Errorf("expected code \"0\", got %s (found=%v)", hc, found)
	}
}

// makeSkewedTree builds a chain in which every internal node has a leaf on
// its left, so the deepest leaves are NumSymbols-1 edges from the root.
func makeSkewedTree() *Tree {
	var node Node = &Leaf{Symbol: MaxSymbol, Count: 1}
	for symbol := int(MaxSymbol) - 1; symbol >= 0; symbol-- {
		left := &Leaf{Symbol: Symbol(symbol), Count: 1}
		node = &Internal{Left: left, Right: node, weight: left.Count + node.Weight()}
	}
	return &Tree{root: node, leaves: NumSymbols}
}

func TestTree_SkewedWalkAndRelease(t *testing.T) {
	tree := makeSkewedTree()
	root := tree.Root().(*Internal)

	ct := BuildCodeTable(tree)
	if ct.Len() != NumSymbols {
		t.Errorf("expected %d codes, got %d", NumSymbols, ct.Len())
	}
	if ct.MinSize() != 1 || int(ct.MaxSize()) != maxBitsPerCode {
		t.Errorf("expected sizes 1 .. %d, got %d .. %d", maxBitsPerCode, ct.MinSize(), ct.MaxSize())
	}
	last, _ := ct.Lookup(MaxSymbol)
	if expect := strings.Repeat("1", maxBitsPerCode); last.bitString() != expect {
		t.Errorf("wrong code for %s: %s", MaxSymbol, last)
	}

	tree.Release()
	if tree.Root() != nil || tree.Leaves() != 0 {
		t.Errorf("expected empty tree after Release")
	}
	if root.Left != nil || root.Right != nil {
		t.Errorf("expected root children to be detached")
	}
}

func TestTree_ReleaseLeafRoot(t *testing.T) {
	tree := BuildTree(CountBytes(nil))
	tree.Release()
	if tree.Root() != nil {
		t.Errorf("expected empty tree after Release")
	}
	tree.Release()
}
