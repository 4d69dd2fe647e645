package main

import (
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "generate":
		err = cmdGenerate(os.Args[2:])
	case "scan":
		err = cmdScan(os.Args[2:])
	case "graph":
		err = cmdGraph(os.Args[2:])
	case "inspect":
		err = cmdInspect(os.Args[2:])
	case "help", "-h", "--help":
		usage()
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", os.Args[1])
		usage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `fdwarf — module interface generator

Usage:
  fdwarf generate --bin <elf> --package <name>   Generate <name>.h and <name>.c
  fdwarf scan     --bin <elf>                    Print section ranges and signatures
  fdwarf graph    --bin <elf> --out <file.dot>   Emit function/type reference graph
  fdwarf inspect  --bin <elf> [--out <file>]     Disassemble the function section

Flags:
  --bin <path>        Path to the module ELF (compiled with -g)
  --package <name>    Package identifier used for file and tag names
  --templates <dir>   Directory holding template.h and template.c
  --out <path>        Output directory (generate) or file (graph, inspect)
  --config <path>     YAML config overriding sections and templates
  --log-level <lvl>   debug, info, warn, error (default info)
`)
}
