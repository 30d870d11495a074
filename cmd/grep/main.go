package main

import (
	"os"

	"github.com/harrison/grep/internal/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
