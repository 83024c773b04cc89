// wearsum — wearable health summary report generator.
//
// Evaluates health metrics against acceptable ranges, accumulates sleep
// debt, derives a composite health score, and renders console, HTML, or
// JSON reports.
package main

import "github.com/dotcommander/wearsum/cmd"

func main() {
	cmd.Execute()
}
