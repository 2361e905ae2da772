// Package main provides the entry point for the phoneosint CLI.
//
// phoneosint performs passive reconnaissance on a phone number: it parses
// the number with an offline numbering-plan database, optionally validates
// it against the NumVerify API, and prints a report with search links for
// manual follow-up.
//
// Usage:
//
//	phoneosint lookup 91 9876543210
//	phoneosint lookup            # prompts for the country code and number
//
// See --help for all available options.
package main

func main() {
	Execute()
}
