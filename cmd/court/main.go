package main

import (
	"github.com/pradeepsathyan/Court-Badminton/internal/cli"
)

func main() {
	cli.Execute()
}
