package main

import "github.com/luksgrin/pedersen-go/internal/cli"

func main() {
	cli.Execute()
}
