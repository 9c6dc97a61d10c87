// Package main is the entry point of the acronym-finder server.
// It sets up and starts the server by calling initialization functions from the internal package.
package main

import (
	"acronym-finder/internal"
)

func main() {
	internal.Init()
}
