// ufwlog - UFW log query tool
//
// ufwlog parses UFW firewall log files into structured records and provides
// composable field filters for selecting subsets of them.
package main

import (
	"os"

	"ufwlog/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
