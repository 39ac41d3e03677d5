// This file is part of fish - https://github.com/db47h/fish
//
// Copyright 2016 Denis Bernard <db047h@gmail.com>
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

package codebox_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/db47h/fish/codebox"
	"github.com/db47h/fish/vm"
)

func TestParse(t *testing.T) {
	g, err := codebox.Parse("test", strings.NewReader("ab\n c\r\n\nd"))
	if err != nil {
		t.Fatal(err)
	}
	if g.Height() != 4 || g.Width() != 2 {
		t.Fatalf("bad size %dx%d", g.Height(), g.Width())
	}
	cells := [][]vm.Value{
		{'a', 'b'},
		{0, 'c'},
		{0, 0},
		{'d', 0},
	}
	for row, r := range cells {
		for col, v := range r {
			if c := g.Get(row, col); c != v {
				t.Errorf("cell %d,%d: expected %v, got %v", row, col, v, c)
			}
		}
	}

	g, err = codebox.Parse("test", strings.NewReader("a\n"))
	if err != nil {
		t.Fatal(err)
	}
	if g.Height() != 1 || g.Width() != 1 {
		t.Errorf("trailing new line: bad size %dx%d", g.Height(), g.Width())
	}
}

func TestParse_errors(t *testing.T) {
	for _, code := range []string{"", "\n\n", "\r\n"} {
		if _, err := codebox.Parse("empty", strings.NewReader(code)); err == nil {
			t.Errorf("%q: expected an error", code)
		}
	}
	name := filepath.Join(t.TempDir(), "missing.fish")
	_, err := codebox.Load(name)
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), name) {
		t.Errorf("error %q does not reference %s", err, name)
	}
}

func TestLoad(t *testing.T) {
	name := filepath.Join(t.TempDir(), "prog.fish")
	if err := os.WriteFile(name, []byte("1n;\n"), 0644); err != nil {
		t.Fatal(err)
	}
	g, err := codebox.Load(name)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if g.Height() != 1 || g.Width() != 3 || g.Get(0, 1) != 'n' {
		t.Errorf("bad grid %dx%d", g.Height(), g.Width())
	}
}

func TestFormat(t *testing.T) {
	code := "ab\n c\n\nd\n"
	g, err := codebox.Parse("test", strings.NewReader(code))
	if err != nil {
		t.Fatal(err)
	}
	var b bytes.Buffer
	if err = codebox.Format(g, &b); err != nil {
		t.Fatal(err)
	}
	if b.String() != code {
		t.Errorf("expected %q, got %q", code, b.String())
	}
}

func TestDisassembleAll(t *testing.T) {
	g, err := codebox.Parse("test", strings.NewReader("1n;Z"))
	if err != nil {
		t.Fatal(err)
	}
	g.Set(5, 5, 0.5)
	g.Set(-1, 2, ';')
	var b bytes.Buffer
	if err = codebox.DisassembleAll(g, &b); err != nil {
		t.Fatal(err)
	}
	expected := "   0    0\t1\tlit 1\n" +
		"   0    1\tn\tputn\n" +
		"   0    2\t;\tend\n" +
		"   0    3\tZ\t??? 90\n" +
		"  -1    2\t;\tend\n" +
		"   5    5\t�\t??? 0.5\n"
	if b.String() != expected {
		t.Errorf("expected:\n%s\ngot:\n%s", expected, b.String())
	}
}

func TestEncodeString(t *testing.T) {
	v := codebox.EncodeString("hé")
	if len(v) != 2 || v[0] != 'h' || v[1] != 233 {
		t.Errorf("bad encoding %v", v)
	}
}

func TestParseNumbers(t *testing.T) {
	v, err := codebox.ParseNumbers(" 1 2.5,-3 ")
	if err != nil {
		t.Fatal(err)
	}
	if len(v) != 3 || v[0] != 1 || v[1] != 2.5 || v[2] != -3 {
		t.Errorf("bad values %v", v)
	}
	if _, err = codebox.ParseNumbers("1 x"); err == nil {
		t.Error("expected an error")
	}
}
