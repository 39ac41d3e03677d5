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
	"flag"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// config holds the settings that can be loaded from a configuration file.
type config struct {
	Seed     int64  `toml:"seed"`
	MaxSteps int64  `toml:"max-steps"`
	Raw      bool   `toml:"raw"`
	Debug    bool   `toml:"debug"`
	Verbose  int    `toml:"verbose"`
	Log      string `toml:"log"`
}

// setFlags returns the names of the flags set on the command line.
func setFlags(fs *flag.FlagSet) map[string]bool {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set
}

// loadConfig loads settings from a TOML file. Settings already given on the
// command line are left untouched.
func loadConfig(fileName string, set map[string]bool) error {
	var c config
	md, err := toml.DecodeFile(fileName, &c)
	if err != nil {
		return errors.Wrapf(err, "failed to load config file %q", fileName)
	}
	if keys := md.Undecoded(); len(keys) > 0 {
		return errors.Errorf("%s: unknown configuration key %q", fileName, keys[0].String())
	}
	use := func(key string) bool {
		return md.IsDefined(key) && !set[key]
	}
	if use("seed") {
		seed, seedSet = c.Seed, true
	}
	if use("max-steps") {
		maxSteps = c.MaxSteps
	}
	if use("raw") {
		rawIO = c.Raw
	}
	if use("debug") {
		debug = c.Debug
	}
	if use("verbose") {
		verbose = c.Verbose
	}
	if use("log") {
		logFile = c.Log
	}
	return nil
}
