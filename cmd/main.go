package main

import (
	"fmt"

	"github.com/gosniff/imghdr/cmd/cmd"
	"github.com/gosniff/imghdr/internal/env"
)

func main() {
	PrintHeader()

	_ = cmd.Execute()
}

func PrintHeader() {
	fmt.Println("Image format identification tool")
	fmt.Println()
	fmt.Printf("Version:    %s\n", env.Version)
	fmt.Printf("Commit:     %s\n", env.CommitHash)
	fmt.Printf("Build Time: %s\n", env.BuildTime)
	fmt.Println()
}
