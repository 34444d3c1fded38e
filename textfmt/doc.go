// Package textfmt parses and prints the textual pseudoalignment formats
// AHDA converts to and from: Themisto, Fulgor, Bifrost, Metagraph, and SAM.
package textfmt
