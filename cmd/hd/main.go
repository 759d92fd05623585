package main

import "habitdash/cmd/hd/root"

func main() {
	root.Execute()
}
