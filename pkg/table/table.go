// Copyright (c) 2025 Stefano Scafiti
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.
package table

// TableSize is the fixed size of the internal hash table (2^16), chosen to
// map directly to the uint16 hash space.
const TableSize = 65536

// PrefixTable stores values under short byte-array keys and answers the
// question "which stored keys are a prefix of this input?" without probing
// the element map once per input byte. A 65536-entry marker array, indexed
// by a rolling 16-bit hash of the key bytes, records whether any stored key
// passes through a given hash position; only positions marked as holding a
// complete key fall back to a map lookup.
//
// Keys are expected to be short (magic-byte signatures are at most a few
// bytes long); longer keys degrade to hash collisions at the 16-bit
// boundary, which only costs spurious map probes, never missed matches.
type PrefixTable[T any] struct {
	table [TableSize]byte
	elems map[string]T
}

const (
	// none: no stored key hashes through this position.
	none = iota
	// presentMarker: some stored key passes through this position, but no
	// key ends exactly here.
	presentMarker
	// elemMarker: a complete key ends at this position.
	elemMarker
)

func New[T any]() *PrefixTable[T] {
	return &PrefixTable[T]{
		elems: make(map[string]T),
	}
}

// Insert stores v under key. Every proper prefix of the key is marked as
// present so that Walk can stop as soon as the input diverges from all
// stored keys.
func (t *PrefixTable[T]) Insert(key []byte, v T) {
	var h uint16 = 0
	for _, b := range key {
		h = (h << 2) + uint16(b)
		// Don't downgrade an elemMarker set by a shorter key.
		t.table[h] = max(t.table[h], presentMarker)
	}
	t.table[h] = elemMarker
	t.elems[string(key)] = v
}

// Get retrieves the value stored under the exact key.
func (t *PrefixTable[T]) Get(key []byte) (T, bool) {
	v, found := t.elems[string(key)]
	return v, found
}

// Walk invokes onMatch for every stored key that is a prefix of data, in
// order of increasing prefix length. Returning true from onMatch stops the
// traversal. The walk aborts as soon as the current prefix of data cannot
// extend to any stored key.
func (t *PrefixTable[T]) Walk(data []byte, onMatch func(T) bool) {
	var h uint16 = 0
	for i, b := range data {
		h = (h << 2) + uint16(b)

		marker := t.table[h]
		if marker == none {
			return
		}

		if marker == elemMarker {
			v, ok := t.elems[string(data[:i+1])]
			if ok && onMatch(v) {
				return
			}
		}
	}
}

// Size returns the number of keys stored in the table.
func (t *PrefixTable[T]) Size() int {
	return len(t.elems)
}
