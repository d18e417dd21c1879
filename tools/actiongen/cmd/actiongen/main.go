package main

import (
	"log"
	"os"

	"charability/tools/actiongen/internal/cli"
)

func main() {
	if err := cli.Execute(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}
