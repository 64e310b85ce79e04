package main

import "github.com/theirongolddev/bolan/cmd"

func main() {
	cmd.Execute()
}
