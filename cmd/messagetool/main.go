/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/ssargent/pmdmessage/cmd/messagetool/cmd"

func main() {
	cmd.Execute()
}
