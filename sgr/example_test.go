// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package sgr_test

import (
	"fmt"

	"github.com/framegrace/sgrcat/sgr"
)

func ExampleScan() {
	for _, m := range sgr.Scan("Hello, \x1b[31;4mworld\x1b[0m!") {
		fmt.Println(m.Start, m.End)
	}
	// Output:
	// 7 14
	// 19 23
}

func ExampleCategorize() {
	for _, s := range sgr.Categorize("Hello, \x1b[1;31mworld\x1b[0m!") {
		fmt.Printf("%q %s\n", s.Text, s.Style)
	}
	// Output:
	// "Hello, " white/black
	// "world" red/black bold
	// "!" white/black
}

func ExampleStrip() {
	fmt.Println(sgr.Strip(sgr.Categorize("\x1b[30mH\x1b[31me\x1b[32ml\x1b[33ml\x1b[34mo")))
	// Output: Hello
}

func ExampleLines() {
	slices := sgr.Categorize("\x1b[32mhello, \x1b[31mworld\x1b[0m\nhow are you\r\ntoday")
	it := sgr.Lines(slices)
	for line, ok := it.Next(); ok; line, ok = it.Next() {
		for _, s := range line {
			fmt.Printf("[%s %q]", s.Fg, s.Text)
		}
		fmt.Println()
	}
	// Output:
	// [green "hello, "][red "world"]
	// [white "how are you"]
	// [white "today"]
}
