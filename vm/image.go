// This file is part of intcode - https://github.com/db47h/intcode
//
// Copyright 2019 Denis Bernard <db047h@gmail.com>
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

package vm

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Memory encapsulates a VM's memory. Code and data share the same cells.
type Memory []Cell

// Clone returns a copy of m that does not share its backing array.
func (m Memory) Clone() Memory {
	if m == nil {
		return nil
	}
	c := make(Memory, len(m))
	copy(c, m)
	return c
}

// Parse reads a program from r. The expected format is a comma separated list
// of signed decimal integers. White space around values is ignored.
func Parse(r io.Reader) (Memory, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "read failed")
	}
	return ParseString(string(b))
}

// ParseString parses a program from its text form. See Parse.
func ParseString(s string) (Memory, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, errors.New("empty program")
	}
	fields := strings.Split(s, ",")
	m := make(Memory, len(fields))
	for idx, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			return nil, errors.Errorf("missing value at index %d", idx)
		}
		v, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "bad value %q at index %d", f, idx)
		}
		m[idx] = Cell(v)
	}
	return m, nil
}

// Load loads a program from file fileName.
func Load(fileName string) (Memory, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "Load")
	}
	defer f.Close()
	m, err := Parse(bufio.NewReader(f))
	if err != nil {
		return nil, errors.Wrapf(err, "Load %v", fileName)
	}
	return m, nil
}

// errWriter records the first error returned by w. Later writes are dropped.
type errWriter struct {
	w   io.Writer
	err error
}

func (w *errWriter) Write(p []byte) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	n, err := w.w.Write(p)
	if err != nil {
		w.err = errors.Wrap(err, "write failed")
	}
	return n, w.err
}

// Dump writes m to w in the same format as accepted by Parse, followed by a
// new line.
func (m Memory) Dump(w io.Writer) error {
	ew := &errWriter{w: w}
	var b []byte
	for idx, v := range m {
		b = b[:0]
		if idx > 0 {
			b = append(b, ',')
		}
		ew.Write(strconv.AppendInt(b, int64(v), 10))
	}
	ew.Write([]byte{'\n'})
	return ew.err
}

// Save saves m to file fileName. The file is removed if writing fails.
func (m Memory) Save(fileName string) (err error) {
	f, err := os.Create(fileName)
	if err != nil {
		return errors.Wrap(err, "create failed")
	}
	w := bufio.NewWriter(f)
	defer func() {
		if ferr := w.Flush(); err == nil && ferr != nil {
			err = errors.Wrap(ferr, "flush failed")
		}
		if cerr := f.Close(); err == nil && cerr != nil {
			err = errors.Wrap(cerr, "close failed")
		}
		// delete file on error
		if err != nil {
			os.Remove(fileName)
		}
	}()
	return errors.Wrap(m.Dump(w), "save failed")
}
