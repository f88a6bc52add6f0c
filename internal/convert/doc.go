// Package convert implements the batch conversion driver.
//
// The driver expands a glob pattern, keeps the candidates carrying the
// accepted source extension, and runs the transcoder once per (target format,
// candidate) pair: target formats in caller order, candidates in lexical glob
// order. Existing destinations are skipped unless force is set, and the first
// transcoder failure aborts the whole batch.
package convert
