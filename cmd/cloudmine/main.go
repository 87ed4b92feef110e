package main

import (
	"github.com/DAILY622/Cloud-wealth-mining/internal/cli"
)

func main() {
	cli.Execute()
}
