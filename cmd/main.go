package main

import (
	cmd "github.com/kerbaras/appassets/cmd/appassets"
)

func main() {
	cmd.Execute()
}
