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

// The intcode command line tool loads an Intcode program and runs it.
//
// Usage:
//
//	-debug
//		  enable debug diagnostics
//	-dump
//		  dump memory to stdout upon exit
//	-find value
//		  search the noun and verb for which the program leaves value at address 0
//	-image filename
//		  Load program from file filename (default "input")
//	-input value
//		  Queue input value (can be specified multiple times)
//	-loglevel level
//		  log level (trace, debug, info, warn, error, critical, off) (default "info")
//	-o filename
//		  save memory to filename upon exit
//	-set addr=value
//		  Set memory cell before running, as addr=value (can be specified multiple times)
//	-stats
//		  print counters to stderr upon exit
//
// Values written by the program are printed to stdout, one per line. Values
// given with -input are fed to the program first, in order of appearance on
// the command line. Once they are exhausted, input values are read from
// stdin, one per line. If stdin is a terminal, a "? " prompt is printed to
// stderr whenever the program waits for input.
//
// -set patches memory after loading the program. For example, the following
// runs a program with cells 1 and 2 set to 12 and 2, then dumps the final
// memory:
//
//	intcode -image day2.txt -set 1=12 -set 2=2 -dump
//
// -find runs the program once for every noun and verb between 0 and 99,
// stored at addresses 1 and 2, and prints the pairs that leave the given value
// at address 0. Runs that fault are skipped:
//
//	intcode -image day2.txt -find 19690720
//
// The INTCODE_IMAGE and INTCODE_LOGLEVEL environment variables set the
// defaults of -image and -loglevel.
//
// The exit status is 1 if the program faults or any other error occurs.
package main
