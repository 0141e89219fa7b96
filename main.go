package main

import "github.com/samirkut/mntrevert/cmd"

func main() {
	cmd.Execute()
}
