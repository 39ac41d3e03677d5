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

package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/db47h/fish/codebox"
	"github.com/db47h/fish/vm"
	"github.com/pkg/errors"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

// time given to the VM to stop by itself after an interrupt.
const interruptGrace = 100 * time.Millisecond

type fileList []string

func (f *fileList) String() string     { return "" }
func (f *fileList) Set(s string) error { *f = append(*f, s); return nil }
func (f *fileList) Get() interface{}   { return *f }

// numberList implements the -v flag.
type numberList struct{ v *[]vm.Value }

func (n numberList) String() string { return "" }
func (n numberList) Set(s string) error {
	v, err := codebox.ParseNumbers(s)
	if err != nil {
		return err
	}
	*n.v = append(*n.v, v...)
	return nil
}

// stringList implements the -s flag.
type stringList struct{ v *[]vm.Value }

func (l stringList) String() string { return "" }
func (l stringList) Set(s string) error {
	*l.v = append(*l.v, codebox.EncodeString(s)...)
	return nil
}

var (
	debug      bool
	dump       bool
	list       bool
	rawIO      bool
	seed       int64
	seedSet    bool
	maxSteps   int64
	verbose    int
	logFile    string
	configFile string
	inputFiles fileList
	initStack  []vm.Value
)

var log = commonlog.GetLogger("fish")

func setupIO() (tearDown func()) {
	if !rawIO {
		return nil
	}
	tearDown, err := setRawIO()
	if err != nil {
		log.Warningf("raw terminal input disabled: %v", err)
		return nil
	}
	return tearDown
}

func atExit(i *vm.Instance, err error) {
	if err == nil {
		return
	}
	switch {
	case vm.IsFault(err):
		fmt.Fprintln(os.Stderr, "something smells fishy")
	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	if debug {
		fmt.Fprintf(os.Stderr, "%+v\n", err)
		if i != nil {
			fmt.Fprintf(os.Stderr, "IP: %v, Direction: %v, Stack: %v, Stacks: %d\n", i.IP(), i.Direction(), i.Data(), i.StackCount())
		}
	}
	os.Exit(1)
}

// exit is os.Exit, replaced in tests.
var exit = os.Exit

// watchInterrupt terminates the process if the VM does not stop shortly after
// ctx is cancelled. This happens when the VM is blocked reading input or
// writing output. Buffered output is not flushed since the VM goroutine may
// still own the writer.
func watchInterrupt(ctx context.Context, finished <-chan struct{}, tearDown func()) {
	select {
	case <-finished:
		return
	case <-ctx.Done():
	}
	select {
	case <-finished:
	case <-time.After(interruptGrace):
		if tearDown != nil {
			tearDown()
		}
		exit(0)
	}
}

// inputFile is a buffered input file that is closed by the VM once read.
type inputFile struct {
	*bufio.Reader
	io.Closer
}

func openInput(name string) (io.Reader, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, errors.Wrap(err, "input")
	}
	return &inputFile{bufio.NewReader(f), f}, nil
}

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [options] <script>\n", os.Args[0])
	flag.PrintDefaults()
}

func main() {
	var err error
	var i *vm.Instance

	stdout := bufio.NewWriter(os.Stdout)

	// flush output, catch and log errors
	defer func() {
		stdout.Flush()
		if err == nil && dump && i != nil {
			err = dumpVM(i, os.Stdout)
		}
		atExit(i, err)
	}()

	flag.Var(numberList{&initStack}, "v", "push `numbers` on the initial stack")
	flag.Var(stringList{&initStack}, "s", "push the characters of `string` on the initial stack")
	flag.Var(&inputFiles, "input", "Add `filename` to the input list (can be specified multiple times)")
	flag.Int64Var(&seed, "seed", 0, "seed for the random direction instruction")
	flag.Int64Var(&maxSteps, "max-steps", 0, "stop after `n` instructions (0 means no limit)")
	flag.BoolVar(&rawIO, "raw", false, "switch the terminal to raw input mode")
	flag.BoolVar(&debug, "debug", false, "enable debug diagnostics")
	flag.BoolVar(&dump, "dump", false, "dump the stack, register and code box upon exit")
	flag.BoolVar(&list, "list", false, "print a listing of the code box and exit")
	flag.IntVar(&verbose, "verbose", 0, "log verbosity (2 traces every instruction)")
	flag.StringVar(&logFile, "log", "", "write log messages to `filename` instead of stderr")
	flag.StringVar(&configFile, "config", "", "load default options from TOML file `filename`")
	flag.Usage = usage
	flag.Parse()

	set := setFlags(flag.CommandLine)
	seedSet = set["seed"]
	if configFile != "" {
		if err = loadConfig(configFile, set); err != nil {
			return
		}
	}
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	if logFile != "" {
		commonlog.Configure(verbose, &logFile)
	} else {
		commonlog.Configure(verbose, nil)
	}

	name := flag.Arg(0)
	grid, err := codebox.Load(name)
	if err != nil {
		return
	}
	log.Infof("loaded %s: %d rows, %d columns", name, grid.Height(), grid.Width())
	if list {
		err = codebox.DisassembleAll(grid, stdout)
		return
	}

	var opts = []vm.Option{
		vm.Output(stdout),
		vm.Stack(initStack...),
		vm.MaxSteps(maxSteps),
	}
	if seedSet {
		opts = append(opts, vm.Seed(seed))
	}

	tearDown := setupIO()
	if tearDown != nil {
		defer tearDown()
	}
	opts = append(opts, vm.Input(bufio.NewReader(os.Stdin)))
	// append -input files to input stack in reverse order so that they are
	// read in order of appearance on the command line.
	for n := len(inputFiles) - 1; n >= 0; n-- {
		var r io.Reader
		r, err = openInput(inputFiles[n])
		if err != nil {
			return
		}
		opts = append(opts, vm.Input(r))
	}

	i, err = vm.New(grid, opts...)
	if err != nil {
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	finished := make(chan struct{})
	go watchInterrupt(ctx, finished, tearDown)

	err = i.Run(ctx)
	close(finished)
	switch err {
	case nil:
		log.Infof("halted after %d instructions", i.InstructionCount())
		stdout.WriteByte('\n')
	case context.Canceled:
		log.Infof("interrupted after %d instructions", i.InstructionCount())
		err = nil
	}
}
