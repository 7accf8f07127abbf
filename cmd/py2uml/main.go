package main

import "github.com/lyubolp/py2uml/internal/cli"

func main() {
	cli.Execute()
}
