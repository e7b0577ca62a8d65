//go:build !linux

package fasta

import "os"

func adviseSequential(*os.File, int64) {}
