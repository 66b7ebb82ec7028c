/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/nakachan-ing/bibfmt/cmd"

func main() {
	cmd.Execute()
}
