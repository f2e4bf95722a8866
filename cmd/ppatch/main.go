// cmd/ppatch/main.go
package main

import (
	"os"

	"github.com/erazor-de/ppatch/internal/app"
)

func main() {
	os.Exit(app.Run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
