// Package suballoc implements pluggable sub-allocation strategies over a
// single fixed-size byte range: a dedicated strategy for blocks that exist
// solely to back one allocation, and a free-list strategy for blocks pooled
// across many allocations of varying size and lifetime.
package suballoc
