package huffman

import (
	"math/rand"
	"strings"
	"testing"
)

func TestCode_ParseAndString(t *testing.T) {
	type testRow struct {
		input  string
		expect string
	}

	testData := [...]testRow{
		{input: "", expect: `""`},
		{input: "0", expect: `"0"`},
		{input: "1101", expect: `"1101"`},
		{input: strings.Repeat("10", 40), expect: `"` + strings.Repeat("10", 40) + `"`},
	}
	for _, row := range testData {
		t.Run(row.expect, func(t *testing.T) {
			hc, err := ParseCode(row.input)
			if err != nil {
				t.Fatalf("ParseCode failed: %v", err)
			}
			if int(hc.Size) != len(row.input) {
				t.Errorf("expected size %d, got %d", len(row.input), hc.Size)
			}
			if actual := hc.String(); actual != row.expect {
				t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", row.expect, actual)
			}
		})
	}

	if _, err := ParseCode("012"); err == nil {
		t.Errorf("expected error for invalid character")
	}
	if _, err := ParseCode(strings.Repeat("0", maxBitsPerCode+1)); err == nil {
		t.Errorf("expected error for overlong code")
	}
}

func TestCode_PushPop(t *testing.T) {
	var hc Code
	for i := 0; i < 70; i++ {
		hc.push(uint8(i % 3 & 1))
	}
	for i := 0; i < 5; i++ {
		hc.pop()
	}
	hc.push(1)

	expect, _ := ParseCode(strings.Repeat("010", 22)[:65] + "1")
	if hc != expect {
		t.Errorf("wrong code:\n\texpect: %s\n\tactual: %s", expect, hc)
	}
}

func TestCode_HasPrefix(t *testing.T) {
	long, _ := ParseCode(strings.Repeat("1", 64) + "0110")
	type testRow struct {
		prefix string
		expect bool
	}

	testData := [...]testRow{
		{prefix: "", expect: true},
		{prefix: "1", expect: true},
		{prefix: "0", expect: false},
		{prefix: strings.Repeat("1", 64), expect: true},
		{prefix: strings.Repeat("1", 64) + "01", expect: true},
		{prefix: strings.Repeat("1", 64) + "1", expect: false},
		{prefix: strings.Repeat("1", 64) + "0110", expect: true},
		{prefix: strings.Repeat("1", 64) + "01100", expect: false},
	}
	for _, row := range testData {
		prefix, _ := ParseCode(row.prefix)
		if actual := long.HasPrefix(prefix); actual != row.expect {
			t.Errorf("HasPrefix(%s): expected %v, got %v", prefix, row.expect, actual)
		}
	}
}

func TestCodeTable_Dump(t *testing.T) {
	ft := makeTable([]Symbol{'a', 'b', 'c', 'd', 'e', 'f'}, []uint64{5, 9, 12, 13, 16, 45})
	tree := BuildTree(ft)
	defer tree.Release()
	ct := BuildCodeTable(tree)

	expectDump := strings.Join([]string{
		"CodeTable{\n",
		"\tMinSize() = 1\n",
		"\tMaxSize() = 4\n",
		"\tLookup('a') = \"1100\"\n",
		"\tLookup('b') = \"1101\"\n",
		"\tLookup('c') = \"100\"\n",
		"\tLookup('d') = \"101\"\n",
		"\tLookup('e') = \"111\"\n",
		"\tLookup('f') = \"0\"\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = ct.Dump(&buf)
	actualDump := buf.String()
	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}

	if _, found := ct.Lookup('z'); found {
		t.Errorf("unexpected code for 'z'")
	}
}

func TestCodeTable_PrefixFree(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	inputs := [][]byte{
		[]byte("aaaa"),
		[]byte("abracadabra"),
		allBytes(),
		randomBytes(rng, 4096, 256),
		randomBytes(rng, 4096, 7),
	}
	for index, input := range inputs {
		tree := BuildTree(CountBytes(input))
		ct := BuildCodeTable(tree)
		symbols := ct.Symbols()
		for _, a := range symbols {
			ca, _ := ct.Lookup(a)
			if ca.Size == 0 {
				t.Errorf("input %d: empty code for %s", index, a)
			}
			for _, b := range symbols {
				if a == b {
					continue
				}
				cb, _ := ct.Lookup(b)
				if cb.HasPrefix(ca) {
					t.Errorf("input %d: code %s for %s is a prefix of %s for %s", index, ca, a, cb, b)
				}
			}
		}
		tree.Release()
	}
}

func allBytes() []byte {
	out := make([]byte, 256)
	for i := range out {
		out[i] = byte(i)
	}
	return out
}

func randomBytes(rng *rand.Rand, n int, alphabet int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = byte(rng.Intn(alphabet))
	}
	return out
}
