// Package sitecfg provides the command-line interface for sitecfg. It wires
// the subcommands (emit, show, diff, check, url, browse, ...) to the layered
// configuration resolver and executes the selected command.
//
// Typical usage from a main package:
//
//	package main
//	import "github.com/sitecfg/sitecfg/cmd/sitecfg"
//	func main() { sitecfg.Execute() }
package sitecfg
