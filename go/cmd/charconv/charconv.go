/*
Copyright 2026 The Vitess Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package main

import (
	"flag"
	"os"

	"github.com/spf13/afero"

	"vitess.io/retrocharset/go/cmd/charconv/command"
	"vitess.io/retrocharset/go/vt/log"
)

func main() {
	// glog writes to files under the temp dir unless told otherwise.
	_ = flag.Set("logtostderr", "true")

	root := command.New(afero.NewOsFs())
	err := root.Execute()
	if err != nil {
		log.Error(err)
	}
	log.Flush()
	os.Exit(command.ExitCode(err))
}
