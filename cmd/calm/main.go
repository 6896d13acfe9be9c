package main

import "github.com/RACSolutions/calm-compass-autism-support/cmd/calm/root"

func main() {
	root.Execute()
}
