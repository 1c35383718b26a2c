// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gen

import (
	"fmt"

	"golang.org/x/tools/imports"
)

// formatSource gofmts src and drops the imports it does not use.
// A syntax error in src is a generator bug and is returned with the
// offending source attached.
func formatSource(filename string, src []byte) ([]byte, error) {
	out, err := imports.Process(filename, src, &imports.Options{
		Comments:  true,
		TabIndent: true,
		TabWidth:  8,
	})
	if err != nil {
		return nil, fmt.Errorf("formatting %s: %w\n%s", filename, err, src)
	}
	return out, nil
}
