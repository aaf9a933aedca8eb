package main

import "github.com/nivaran/nivaran_backend/cmd"

func main() {
	cmd.Execute()
}
