package main

import "github.com/Manu343726/mipsdis/cmd"

func main() {
	cmd.Execute()
}
