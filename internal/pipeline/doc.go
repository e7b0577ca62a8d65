// Package pipeline partitions each FASTA record across worker goroutines and
// drives records through a Transformer one at a time.
//
// The only contract to implement is Transformer (Record). Partitioner is the
// production implementation; tests can substitute fakes.
package pipeline
