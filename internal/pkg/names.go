package pkg

import (
	petname "github.com/dustinkirkland/golang-petname"
)

// GenerateComputerName returns a two word name such as "brave-otter".
func GenerateComputerName() string {
	return petname.Generate(2, "-")
}
