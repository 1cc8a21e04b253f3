// Package huffman implements static Huffman compression of byte streams.
//
// A compressed artifact is a header holding the frequency of every symbol
// that appears in the input, followed by the bit-packed payload.  The
// header is enough to rebuild the exact code tree at decode time, so no
// other knowledge of the original data is needed.  The logical end of the
// payload is marked by the code for PseudoEOF; any bits after it in the
// final byte are padding.
//
// Tree construction is deterministic.  When two nodes have equal weight,
// leaves are taken before internal nodes, leaves are ordered by symbol
// value, and internal nodes are ordered by the order in which they were
// created.  The resulting tree does not depend on the iteration order of
// the FrequencyTable, so independent encoders produce byte-identical
// artifacts.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffman
