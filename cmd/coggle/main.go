package main

import (
	"os"

	"github.com/hashicorp-forge/coggle/internal/cmd"
)

func main() {
	os.Exit(cmd.Main(os.Args))
}
