// SPDX-License-Identifier: MIT

package fusion_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/kfusion/fusion"
)

func ExampleReadBlockCSV() {
	in := "id,TP53,EGFR\npatient1,2.5,0.1\npatient2,1.0,3.2\n"
	b, err := fusion.ReadBlockCSV("mrna", strings.NewReader(in))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(b.Name(), b.N(), b.P())
	fmt.Println(b.Features())
	// Output:
	// mrna 2 2
	// [TP53 EGFR]
}

func ExampleReadConfig() {
	cfg, err := fusion.ReadConfig(strings.NewReader(`
method: statis
blocks:
  - {name: mrna, path: mrna.csv}
  - {name: protein, path: protein.csv, kernel: {kind: gaussian, sigma: 2}}
`))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(cfg.Method, cfg.Components, len(cfg.Blocks))
	// Output:
	// statis 2 2
}
