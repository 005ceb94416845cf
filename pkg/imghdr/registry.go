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
package imghdr

import (
	"github.com/gosniff/imghdr/pkg/table"
)

type entry struct {
	format string
	rank   int
}

type entries []entry

// Registry indexes signature prefixes for matching against header bytes.
type Registry struct {
	table *table.PrefixTable[entries]
	size  int
}

func NewRegistry() *Registry {
	return &Registry{
		table: table.New[entries](),
	}
}

// Add registers every prefix of sig. Registration order defines match
// precedence: when several registered prefixes match the same header, the
// signature added first wins, regardless of prefix length.
func (r *Registry) Add(sig Signature) {
	for _, prefix := range sig.Prefixes {
		curr, _ := r.table.Get(prefix)

		r.table.Insert(
			prefix,
			append(curr, entry{format: sig.Format, rank: r.size}),
		)
	}
	r.size++
}

// Match searches the registry for signatures whose prefix matches the
// leading bytes of data, returning the format of the earliest-registered
// one.
func (r *Registry) Match(data []byte) (string, bool) {
	best := entry{rank: -1}

	r.table.Walk(data, func(es entries) bool {
		for _, e := range es {
			if best.rank < 0 || e.rank < best.rank {
				best = e
			}
		}
		return false
	})

	if best.rank < 0 {
		return "", false
	}
	return best.format, true
}
