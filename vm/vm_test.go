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

package vm_test

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/db47h/fish/codebox"
	"github.com/db47h/fish/vm"
	"github.com/pkg/errors"
)

type V []vm.Value

func setup(code, input string, stack V, opts ...vm.Option) (*vm.Instance, *bytes.Buffer, error) {
	g, err := codebox.Parse("test", strings.NewReader(code))
	if err != nil {
		return nil, nil, err
	}
	out := bytes.NewBuffer(nil)
	opts = append([]vm.Option{
		vm.Input(strings.NewReader(input)),
		vm.Output(out),
		vm.Stack(stack...),
		vm.Seed(1),
		vm.MaxSteps(100000),
	}, opts...)
	i, err := vm.New(g, opts...)
	return i, out, err
}

func equalV(a, b V) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

var tests = [...]struct {
	name  string
	code  string
	input string
	init  V
	out   string
	stack V
	fault vm.Fault
}{
	{"end", ";", "", nil, "", nil, 0},
	{"nop", "   ;", "", nil, "", nil, 0},
	{"dup", "0:n;", "", nil, "0", V{0}, 0},
	{"hex", "09af;", "", nil, "", V{0, 9, 10, 15}, 0},
	{"+", "34+n;", "", nil, "7", nil, 0},
	{"-", "34-n;", "", nil, "-1", nil, 0},
	{"*", "34*n;", "", nil, "12", nil, 0},
	{",", "12,n;", "", nil, "0.5", nil, 0},
	{"%", "73%n;", "", nil, "1", nil, 0},
	{"% negative dividend", "07-3%n;", "", nil, "2", nil, 0},
	{"% negative divisor", "703-%n;", "", nil, "-2", nil, 0},
	{"=", "33=34=;", "", nil, "", V{1, 0}, 0},
	{")", "32)23);", "", nil, "", V{1, 0}, 0},
	{"(", "32(23(;", "", nil, "", V{0, 1}, 0},
	{"init stack", "+n;", "", V{40, 2}, "42", nil, 0},
	{"string", `"hi"oo;`, "", nil, "ih", nil, 0},
	{"string quotes", `'a"'oo;`, "", nil, `"a`, nil, 0},
	{"string blank", `" "n;`, "", nil, "32", nil, 0},
	{"string ops", `"1+;";`, "", nil, "", V{'1', '+', ';'}, 0},
	{"putc", "a5*o;", "", nil, "2", nil, 0},
	{"putc unicode", `"é"o;`, "", nil, "é", nil, 0},
	{"down", "v\n>1n;", "", nil, "1", nil, 0},
	{"up wrap", "^\n;\nn\n2", "", nil, "2", nil, 0},
	{"left wrap", "<;n3", "", nil, "3", nil, 0},
	{"mirror \\", "\\\n1\nn\n;", "", nil, "1", nil, 0},
	{"mirror /", "/\n;\nn\n2", "", nil, "2", nil, 0},
	{"mirror |", "1|n;", "", nil, "", V{1, 1}, 0},
	{"mirror | vertical", "v\n|\n1\nn\n;", "", nil, "1", nil, 0},
	{"mirror _", "\\;\n_\n2", "", nil, "", nil, 0},
	{"mirror _ horizontal", "1_n;", "", nil, "1", nil, 0},
	{"mirror #", "1#;2", "", nil, "", V{1, 1, 2}, 0},
	{"trampoline", "1!2n;", "", nil, "1", nil, 0},
	{"cond trampoline skip", "10?2n;", "", nil, "1", nil, 0},
	{"cond trampoline", "11?2n;", "", nil, "2", V{1}, 0},
	{"jump", "05.;  7n;", "", nil, "7", nil, 0},
	{"jump row", "10.;\n 8n;", "", nil, "8", nil, 0},
	{"jump wrap", "0e.;", "", nil, "", nil, 0},
	{"swap", "12$nn;", "", nil, "12", nil, 0},
	{"swap3", "123@;", "", nil, "", V{3, 1, 2}, 0},
	{"shift right", "123};", "", nil, "", V{3, 1, 2}, 0},
	{"shift left", "123{;", "", nil, "", V{2, 3, 1}, 0},
	{"shift empty", "{};", "", nil, "", nil, 0},
	{"reverse", "123r;", "", nil, "", V{3, 2, 1}, 0},
	{"length", "123l;", "", nil, "", V{1, 2, 3, 3}, 0},
	{"drop", "12~;", "", nil, "", V{1}, 0},
	{"register", "5&6&;", "", nil, "", V{6, 5}, 0},
	{"new stack", "1232[;", "", nil, "", V{3, 2}, 0},
	{"new stack length", "1232[l;", "", nil, "", V{3, 2, 2}, 0},
	{"remove stack", "1232[];", "", nil, "", V{1, 2, 3}, 0},
	{"new stack negative", "101-[l;", "", nil, "", V{0}, 0},
	{"get", "00gn;", "", nil, "48", nil, 0},
	{"get outside", "99gn;", "", nil, "0", nil, 0},
	{"put outside", "7a0pa0gn;", "", nil, "7", nil, 0},
	{"put negative", "701-0p01-0gn;", "", nil, "7", nil, 0},
	{"put self modifying", "\"n\"70p1 ;", "", nil, "1", nil, 0},
	{"put fraction executes truncated", "ab*12,+c0p5  ;", "", nil, "5", nil, 0},
	{"read", "inininin;", "a\n\nb", nil, "9798-1-1", nil, 0},
	{"underflow", "~", "", nil, "", nil, vm.ErrUnderflow},
	{"underflow dup", ":", "", nil, "", nil, vm.ErrUnderflow},
	{"underflow swap", "1$", "", nil, "", nil, vm.ErrUnderflow},
	{"underflow swap3", "12@", "", nil, "", nil, vm.ErrUnderflow},
	{"underflow add", "1+", "", nil, "", nil, vm.ErrUnderflow},
	{"underflow new stack", "13[", "", nil, "", nil, vm.ErrUnderflow},
	{"underflow register", "&", "", nil, "", nil, vm.ErrUnderflow},
	{"underflow put", "11p", "", nil, "", nil, vm.ErrUnderflow},
	{"underflow jump", "1.", "", nil, "", nil, vm.ErrUnderflow},
	{"underflow cond trampoline", "?", "", nil, "", nil, vm.ErrUnderflow},
	{"underflow get", "1g", "", nil, "", nil, vm.ErrUnderflow},
	{"underflow new stack inf", "[;", "", V{vm.Value(math.Inf(1))}, "", nil, vm.ErrUnderflow},
	{"underflow new stack -inf", "[;", "", V{vm.Value(math.Inf(-1))}, "", nil, vm.ErrUnderflow},
	{"underflow new stack nan", "[;", "", V{vm.Value(math.NaN())}, "", nil, vm.ErrUnderflow},
	{"underflow new stack huge", "[;", "", V{1e300}, "", nil, vm.ErrUnderflow},
	{"div zero", "10,;", "", nil, "", nil, vm.ErrDivisionByZero},
	{"mod zero", "10%;", "", nil, "", nil, vm.ErrDivisionByZero},
	{"invalid", "Z", "", nil, "", nil, vm.ErrInvalidOpcode},
	{"invalid unicode", "é", "", nil, "", nil, vm.ErrInvalidOpcode},
	{"remove last stack", "]", "", nil, "", nil, vm.ErrStackMachineEmpty},
	{"putc fraction", "12,o;", "", nil, "", nil, vm.ErrType},
	{"putc negative", "01-o;", "", nil, "", nil, vm.ErrType},
	{"fault stops", "1n~2n;", "", nil, "1", nil, vm.ErrUnderflow},
}

func TestRun(t *testing.T) {
	for _, test := range tests {
		i, out, err := setup(test.code, test.input, test.init)
		if err != nil {
			t.Errorf("%s: %+v", test.name, err)
			continue
		}
		err = i.Run(context.Background())
		if test.fault != 0 {
			if f, ok := errors.Cause(err).(vm.Fault); !ok || f != test.fault {
				t.Errorf("%s: expected fault %q, got %v", test.name, test.fault, err)
			}
			if i.State() != vm.Faulted {
				t.Errorf("%s: bad state %v", test.name, i.State())
			}
		} else {
			if err != nil {
				t.Errorf("%s: %+v", test.name, err)
				continue
			}
			if i.State() != vm.Halted {
				t.Errorf("%s: bad state %v", test.name, i.State())
			}
			if stk := V(i.Data()); !equalV(stk, test.stack) {
				t.Errorf("%v", fmt.Errorf("%s: Stack error: expected %v, got %v", test.name, test.stack, stk))
			}
		}
		if out.String() != test.out {
			t.Errorf("%s: Output error: expected %q, got %q", test.name, test.out, out.String())
		}
	}
}

func TestRun_register(t *testing.T) {
	i, _, err := setup("12&&&;", "", nil)
	if err != nil {
		t.Fatal(err)
	}
	if err = i.Run(context.Background()); err != nil {
		t.Fatalf("%+v", err)
	}
	if v, ok := i.Register(); !ok || v != 2 {
		t.Errorf("bad register value %v, %v", v, ok)
	}
	if stk := V(i.Data()); !equalV(stk, V{1}) {
		t.Errorf("bad stack %v", stk)
	}
}

func TestRun_stacks(t *testing.T) {
	i, _, err := setup("1232[5&01[;", "", nil)
	if err != nil {
		t.Fatal(err)
	}
	if err = i.Run(context.Background()); err != nil {
		t.Fatalf("%+v", err)
	}
	if n := i.StackCount(); n != 3 {
		t.Errorf("expected 3 stacks, got %d", n)
	}
	if stk := V(i.Data()); !equalV(stk, V{0}) {
		t.Errorf("bad stack %v", stk)
	}
	if _, ok := i.Register(); ok {
		t.Errorf("new stack has a register value")
	}
}

func TestRun_stringMode(t *testing.T) {
	i, _, err := setup(`"ab`, "", nil, vm.MaxSteps(7))
	if err != nil {
		t.Fatal(err)
	}
	err = i.Run(context.Background())
	if err != vm.ErrStepLimit {
		t.Fatalf("expected step limit, got %v", err)
	}
	if q, dq := i.StringMode(); q || !dq {
		t.Errorf("bad string mode %v, %v", q, dq)
	}
	// a and b are pushed as characters, then as hex digits on the second pass.
	if stk := V(i.Data()); !equalV(stk, V{'a', 'b', 10, 11}) {
		t.Errorf("bad stack %v", stk)
	}
}

func TestRun_stepLimit(t *testing.T) {
	i, _, err := setup(">", "", nil, vm.MaxSteps(1000))
	if err != nil {
		t.Fatal(err)
	}
	if err = i.Run(context.Background()); err != vm.ErrStepLimit {
		t.Fatalf("expected step limit, got %v", err)
	}
	if c := i.InstructionCount(); c != 1000 {
		t.Errorf("executed %d instructions", c)
	}
	if i.State() != vm.Running {
		t.Errorf("bad state %v", i.State())
	}
}

func TestRun_cancel(t *testing.T) {
	i, _, err := setup(">", "", nil, vm.MaxSteps(0))
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err = i.Run(ctx); err != context.Canceled {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if i.State() != vm.Running {
		t.Errorf("bad state %v", i.State())
	}
}

func TestRun_halted(t *testing.T) {
	i, _, err := setup(";", "", nil)
	if err != nil {
		t.Fatal(err)
	}
	if err = i.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if err = i.Run(context.Background()); err == nil {
		t.Error("expected an error when running a halted VM")
	}
}

func TestRun_random(t *testing.T) {
	code := "x1n;\n2\nn\n;"
	seen := make(map[string]bool)
	for seed := int64(0); seed < 32; seed++ {
		var outs [2]string
		for k := range outs {
			i, out, err := setup(code, "", nil, vm.Seed(seed))
			if err != nil {
				t.Fatal(err)
			}
			if err = i.Run(context.Background()); err != nil {
				t.Fatalf("seed %d: %+v", seed, err)
			}
			outs[k] = out.String()
		}
		if outs[0] != outs[1] {
			t.Errorf("seed %d: runs differ: %q, %q", seed, outs[0], outs[1])
		}
		seen[outs[0]] = true
	}
	for _, s := range []string{"", "1", "2"} {
		if !seen[s] {
			t.Errorf("output %q never seen", s)
		}
	}
}

func TestNew_errors(t *testing.T) {
	if _, err := vm.New(nil); err == nil {
		t.Error("expected error with nil grid")
	}
	if _, err := vm.New(vm.NewGrid(0, 0)); err == nil {
		t.Error("expected error with empty grid")
	}
	if _, err := vm.New(vm.NewGrid(1, 1), vm.MaxSteps(-1)); err == nil {
		t.Error("expected error with negative step limit")
	}
}

func TestIsFault(t *testing.T) {
	i, _, err := setup("1,", "", nil)
	if err != nil {
		t.Fatal(err)
	}
	err = i.Run(context.Background())
	if !vm.IsFault(err) {
		t.Errorf("expected a fault, got %v", err)
	}
	if vm.IsFault(vm.ErrStepLimit) {
		t.Error("step limit is not a fault")
	}
	if ip := i.IP(); ip != (vm.Point{Row: 0, Col: 1}) {
		t.Errorf("bad IP %v", ip)
	}
}

func BenchmarkRun(b *testing.B) {
	// count down from 1000
	code := "aa*a*>1-:?v;\n     ^    <"
	g, err := codebox.Parse("bench", strings.NewReader(code))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		i, err := vm.New(g, vm.Seed(1))
		if err != nil {
			b.Fatal(err)
		}
		if err = i.Run(context.Background()); err != nil {
			b.Fatalf("%+v", err)
		}
	}
}
