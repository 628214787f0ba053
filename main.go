package main

import (
	"imgapi-client/cmd"
)

// version is overridden at build time
var version = "dev"

func main() {
	cmd.Execute(version)
}
