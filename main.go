package main

import "github.com/sitecfg/sitecfg/cmd/sitecfg"

func main() { sitecfg.Execute() }
