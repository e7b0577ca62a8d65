// Package engine contains the reverse-complement core. It never imports app,
// writers, cli, or pipeline; keep it domain-only.
//
// A sequence body is a run of lines that all share one wrap width W (bytes per
// line including the '\n' terminator) except the last, which may be shorter.
// The engine rewrites the data bytes of a body in place so that they hold the
// reverse complement of the original sequence while every terminator stays at
// its original offset.
//
// Two cursors walk inward from both ends of the body. Seen from the front,
// every line holds W-1 data bytes; seen from the back, the first line holds
// only Offset-1. Each row-pair step therefore walks Offset-1 bytes, steps the
// back cursor over its terminator, walks the remaining W-Offset bytes and
// steps the front cursor over its terminator. After one step both cursors sit
// at the same phase they started in, so the inner loops never branch on line
// boundaries.
//
// SwapRows runs whole row-pairs without crossing checks and is only valid for
// row-pairs below Layout.Pairs. SwapTail checks the cursors before every swap
// and is used for the one segment that contains the middle of the body.
package engine
