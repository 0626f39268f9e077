// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package main

import (
	"log"

	"finscale/axiscmd"
)

func main() {
	if err := axiscmd.NewRootCommand(nil).Execute(); err != nil {
		log.Fatalf("finscale: %v", err)
	}
}
