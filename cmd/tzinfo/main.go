package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pganssle/zoneinfo/tzif"
)

var printTransitionsFlag = flag.Bool("t", false, "Print transitions in human readable format")

func main() {
	flag.Parse()
	args := flag.Args()
	if len(args) != 1 {
		fmt.Println("Usage: tzinfo <tzif file>")
		os.Exit(1)
	}
	b, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Println("reading file:", err)
		os.Exit(1)
	}

	data, err := tzif.DecodeData(bytes.NewReader(b))
	if err != nil {
		fmt.Println("decoding:", err)
		os.Exit(1)
	}

	printData(data)
}

func printData(d tzif.Data) {
	fmt.Println("version =", d.Version)
	fmt.Printf("Transitions (%d) = %v\n", len(d.Transitions), d.Transitions)
	fmt.Printf("TransitionTypes (%d) = %v\n", len(d.TransitionTypes), d.TransitionTypes)
	fmt.Printf("Types (%d) = %+v\n", len(d.Types), d.Types)
	fmt.Printf("Designations (%d) = %v\n", len(d.Designations), strings.Split(string(d.Designations), "\x00"))
	fmt.Println("TZString =", d.TZString)
	fmt.Println()

	if *printTransitionsFlag {
		printTransitions(d)
	}
}

func printTransitions(d tzif.Data) {
	fmt.Println("Transitions")
	for i, tt := range d.Transitions {
		fmt.Printf("  %s (%d) => %s\n", formatTransitionTime(tt), tt, formatTimeRecord(d, d.TransitionTypes[i]))
	}
	fmt.Println()
}

func formatTransitionTime(tt int64) string {
	return time.Unix(tt, 0).UTC().Format(time.RFC1123)
}

func formatTimeRecord(d tzif.Data, idx uint8) string {
	r := d.Types[idx]
	var dst string
	if r.Dst {
		dst = ", dst"
	}
	return fmt.Sprintf("%s: %s (%d)%s", d.Abbreviation(r.Idx), time.Duration(r.Utoff)*time.Second, r.Utoff, dst)
}
