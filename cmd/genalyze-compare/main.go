package main

import (
	"genalyze/internal/appshell"
	"genalyze/internal/cmpapp"
)

func main() { appshell.Main(cmpapp.RunContext) }
