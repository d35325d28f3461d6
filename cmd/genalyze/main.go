package main

import (
	"genalyze/internal/app"
	"genalyze/internal/appshell"
)

func main() { appshell.Main(app.RunContext) }
