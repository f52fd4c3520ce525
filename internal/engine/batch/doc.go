// Package batch evaluates calculator scenarios in fixed-size batches.
//
// A scenario file can hold thousands of tool invocations. The processor
// splits them into batches, runs batches sequentially or with bounded
// concurrency, reports progress after each batch and stops early when the
// context is cancelled. Map keeps results in input order regardless of
// which batch finishes first.
package batch
