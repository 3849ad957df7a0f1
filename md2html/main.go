// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Md2html converts a Markdown file to HTML.
//
// Usage:
//
//	md2html README.md README.html
//
// Md2html reads the first file as a Markdown document
// and writes the corresponding HTML to the second file.
// If the first file does not exist, md2html prints "Missing README.md"
// and exits with status 1 without writing anything.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	markdown "github.com/Yahsai/holbertonschool-Markdown2HTML"
)

const usageText = "usage: md2html README.md README.html"

// A usageError reports a command line with too few arguments.
type usageError struct{}

func (*usageError) Error() string { return usageText }

func usage() {
	fmt.Fprintln(os.Stderr, usageText)
	os.Exit(1)
}

func main() {
	log.SetPrefix("md2html: ")
	log.SetFlags(0)
	flag.Usage = usage
	flag.Parse()

	if err := run(flag.Args()); err != nil {
		var ue *usageError
		var me *markdown.MissingError
		if errors.As(err, &ue) || errors.As(err, &me) {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		log.Fatal(err)
	}
}

// run converts the file args[0] to args[1].
// Arguments after the first two are ignored.
func run(args []string) error {
	if len(args) < 2 {
		return &usageError{}
	}
	return markdown.ConvertFile(args[0], args[1])
}
