package main

import (
	"os"

	"github.com/scan-io-git/scanio-shellcheck/cmd"
)

func main() {
	code := cmd.Execute()
	os.Exit(code)
}
