package main

import (
	"github.com/mglenn/gitstamp/internal/cli"
	"github.com/mglenn/gitstamp/internal/version"
)

func main() {
	c := cli.New(version.String())
	c.Run()
}
