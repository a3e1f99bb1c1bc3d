// Copyright 2025 Greenmask
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package random

import (
	"encoding/binary"
	"io"
)

// Reader exposes a Random as an io.Reader. Bytes are taken from Uint64 draws in little endian
// order; leftovers of a draw are kept for the next Read call.
type Reader struct {
	r   Random
	buf []byte
	pos int
}

var _ io.Reader = (*Reader)(nil)

func NewReader(r Random) *Reader {
	return &Reader{
		r:   r,
		buf: make([]byte, 8),
		pos: 8,
	}
}

func (rd *Reader) Read(p []byte) (int, error) {
	for idx := range p {
		if rd.pos == len(rd.buf) {
			binary.LittleEndian.PutUint64(rd.buf, rd.r.Uint64())
			rd.pos = 0
		}
		p[idx] = rd.buf[rd.pos]
		rd.pos++
	}
	return len(p), nil
}
