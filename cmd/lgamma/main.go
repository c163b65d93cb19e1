// Copyright 2025 go-highway Authors
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

// Command lgamma evaluates log|Gamma(x)| in double-double precision and
// checks the implementation against the recurrence and reflection
// identities.
package main

import (
	"flag"
	"os"

	log "github.com/golang/glog"

	"github.com/ajroetker/go-xprec/cmd/lgamma/command"
)

func main() {
	// glog complains about logging before flag.Parse; cobra parses the real
	// arguments.
	args := os.Args[:]
	os.Args = os.Args[:1]
	flag.Parse()
	os.Args = args

	if err := command.NewRoot().Execute(); err != nil {
		log.Error(err)
		log.Flush()
		os.Exit(1)
	}
	log.Flush()
}
