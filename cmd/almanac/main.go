// cmd/almanac/main.go
package main

import (
	"almanac/internal/appshell"
	"almanac/internal/cli"
)

func main() {
	appshell.Main(cli.Run)
}
