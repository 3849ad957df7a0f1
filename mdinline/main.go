// Copyright 2021 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Mdinline resolves inline Markdown markup line by line.
//
// Usage:
//
//	mdinline [file...]
//
// Mdinline reads the named files, or else standard input,
// and prints each line with its **bold**, __emphasis__,
// [[digest]] and ((strip)) spans replaced,
// leaving block structure alone.
// It is useful for checking what a line will look like
// before md2html decides what kind of block it starts.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	markdown "github.com/Yahsai/holbertonschool-Markdown2HTML"
)

var exit = 0

func usage() {
	fmt.Fprintf(os.Stderr, "usage: mdinline [file...]\n")
	flag.PrintDefaults()
	os.Exit(2)
}

func main() {
	log.SetPrefix("mdinline: ")
	log.SetFlags(0)
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() == 0 {
		if err := convert(os.Stdout, os.Stdin); err != nil {
			log.Fatal(err)
		}
	} else {
		for _, file := range flag.Args() {
			f, err := os.Open(file)
			if err != nil {
				log.Print(err)
				exit = 1
				continue
			}
			err = convert(os.Stdout, f)
			f.Close()
			if err != nil {
				log.Printf("%s: %v", file, err)
				exit = 1
			}
		}
	}
	os.Exit(exit)
}

// convert writes each line of r to w with inline markup resolved.
func convert(w io.Writer, r io.Reader) error {
	doc, err := markdown.ReadDocument(r)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	for _, line := range doc.Lines {
		bw.WriteString(markdown.Inline(line))
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
