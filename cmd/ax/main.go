package main

import "github.com/Annoyingpheonix/Axiom/cmd/ax/root"

func main() {
	root.Execute()
}
