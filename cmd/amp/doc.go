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

// The amp command searches the phase settings of an amplifier chain for the
// highest thrust signal.
//
// Usage:
//
//	-debug
//		  enable debug diagnostics
//	-feedback
//		  wire amplifiers in a feedback loop
//	-image filename
//		  Load program from file filename (default "input")
//	-loglevel level
//		  log level (trace, debug, info, warn, error, critical, off) (default "info")
//	-phases list
//		  comma separated list of phase settings (default 0,1,2,3,4, or 5,6,7,8,9 with -feedback)
//	-stats
//		  print counters to stderr upon exit
//
// Every ordering of the phase settings is tried, one amplifier per setting.
// The result is printed as:
//
//	max thrust 139629729 with phases 9,8,7,6,5
//
// Interrupting the command stops the search.
package main
