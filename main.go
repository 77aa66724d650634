package main

import "github.com/winmirror/winmirror/cmd"

func main() {
	cmd.Execute()
}
