// Command benchplot plots benchmark results.
package main

import (
	"github.com/huangsam/benchplot/cmd"
	"github.com/huangsam/benchplot/internal/contract"
)

func main() {
	if err := cmd.Execute(); err != nil {
		contract.LogFatal("benchplot failed", err)
	}
}
