package main

import (
	"github.com/wordrush/wordrush/internal/cli"
)

func main() {
	cli.Execute()
}
