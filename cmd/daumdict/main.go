// Package main provides the entry point for the daumdict CLI.
//
// daumdict looks up Chinese words on the Daum dictionary and returns their
// pinyin and Korean meanings, either over an HTTP API or for a word-list file.
//
// Usage:
//
//	daumdict serve
//	daumdict batch --input words.txt --output result.txt
//
// See --help for all available options.
package main

func main() {
	Execute()
}
