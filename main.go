package main

import (
	"os"

	"github.com/ankurananda/syconf/cmd"
)

func main() {
	os.Exit(cmd.Main())
}
