package main

import (
	"fmt"
	"os"

	"github.com/61040-fa22/rec5/cmd"
)

func main() {
	if err := cmd.Start(); err != nil {
		fmt.Printf("server run into an error: %s", err)
		os.Exit(1)
	}
}
