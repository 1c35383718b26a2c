// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command hetgen generates the tuple and variant arity families and
// shape specializations from YAML manifests.
//
//	hetgen family tuple --max-arity 6 -o tuple_gen.go
//	hetgen shapes shapes.yaml -o shapes_gen.go
//	hetgen plan shapes.yaml
package main

import (
	"os"

	"code.hybscloud.com/hetero/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
