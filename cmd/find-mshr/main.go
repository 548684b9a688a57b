package main

import (
	"os"

	"github.com/schlerp/find-mshr/internal/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
