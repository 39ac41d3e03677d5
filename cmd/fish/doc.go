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

// The fish command line tool runs ><> programs with the package
// github.com/db47h/fish/vm.
//
// See https://esolangs.org/wiki/Fish for more information on the ><> language.
//
// Usage:
//
//	fish [options] <script>
//
//	-config filename
//		  load default options from TOML file filename
//	-debug
//		  enable debug diagnostics
//	-dump
//		  dump the stack, register and code box upon exit
//	-input filename
//		  Add filename to the input list (can be specified multiple times)
//	-list
//		  print a listing of the code box and exit
//	-log filename
//		  write log messages to filename instead of stderr
//	-max-steps n
//		  stop after n instructions (default 0, no limit)
//	-raw
//		  switch the terminal to raw input mode
//	-s string
//		  push the characters of string on the initial stack
//	-seed n
//		  seed for the random direction instruction
//	-v numbers
//		  push numbers on the initial stack
//	-verbose n
//		  log verbosity (default 0, 2 traces every instruction)
//
// -v, -s: these flags can be specified multiple times and mixed. Values are
// pushed in order of appearance on the command line. -v accepts a list of
// numbers separated by spaces or commas:
//
//	fish -v "1 2 3" -s abc prog.fish
//
// -input: the program reads its input from the specified files, in order of
// appearance on the command line, then from stdin. New lines are skipped by the
// input instruction.
//
// -raw: by default, the terminal delivers input one line at a time. With -raw,
// the input instruction gets characters as soon as they are typed. Not
// supported on Windows.
//
// -debug: will print a full stacktrace along with the VM state should the
// program fail.
//
// -config: the configuration file may set the following keys. Flags given on
// the command line override them.
//
//	seed = 42
//	max-steps = 1000000
//	raw = false
//	debug = false
//	verbose = 1
//	log = "fish.log"
//
// Exit status is 0 when the program terminates normally or is interrupted, and
// 1 if the script cannot be loaded or the program fails. A failing program is
// reported with the message "something smells fishy".
package main
