// Package input reads the almanac text format: a seeds line followed by
// blocks of mapping triples.
package input

import "fmt"

// SeedCategory is the category every almanac chain starts from.
const SeedCategory = "seed"

// Triple is one mapping line of a block, in file order: destination start,
// source start, length.
type Triple struct {
	Destination uint64
	Source      uint64
	Length      uint64

	// Line is the 1-based line number the triple was read from.
	Line int
}

// Block is a named group of triples, such as "seed-to-soil map:".
type Block struct {
	From    string
	To      string
	Line    int
	Triples []Triple
}

// Name returns the block name as written in its header.
func (b Block) Name() string {
	return fmt.Sprintf("%s-to-%s", b.From, b.To)
}

// Almanac is the parsed content of an almanac file.
type Almanac struct {
	Seeds  []uint64
	Blocks []Block
}
