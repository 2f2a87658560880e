package main

import (
	"github.com/Kunalv272/StudentTracker/internal/interface/cli"
)

func main() {
	cli.Execute()
}
