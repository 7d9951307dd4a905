// xtal — interactive editor for crystallographic site data.
//
// Usage:
//
//	xtal [site]            Edit a site in the TUI
//	xtal sites list        List stored sites
//	xtal sites show NAME   Print a site summary
//	xtal sites delete NAME Remove a site
//	xtal version           Print version information
package main

import "xtal/internal/cli"

func main() {
	cli.Execute()
}
