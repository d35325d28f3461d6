package main

import (
	"genalyze/internal/appshell"
	"genalyze/internal/askapp"
)

func main() { appshell.Main(askapp.RunContext) }
