package main

import "github.com/nkuznetsov/wordduel/internal/cli"

func main() {
	cli.Execute()
}
