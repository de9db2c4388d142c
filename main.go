package main

import "github.com/ItsHariii/bump-cli/cmd/bump"

func main() {
	bump.Execute()
}
