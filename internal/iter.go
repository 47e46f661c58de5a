// Package internal holds iterator helpers shared by the bfvm packages.
package internal

import (
	"cmp"
	"iter"
	"maps"
	"slices"
)

// Seq2Concat chains key/value iterators, stopping early if the consumer
// does.
func Seq2Concat[K any, V any](seqs ...iter.Seq2[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, seq := range seqs {
			for key, value := range seq {
				if !yield(key, value) {
					return
				}
			}
		}
	}
}

// Seq2Sorted collects a key/value iterator and yields it in key order. A
// later duplicate key replaces an earlier one.
func Seq2Sorted[K cmp.Ordered, V any](seq iter.Seq2[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		all := maps.Collect(seq)
		for _, key := range slices.Sorted(maps.Keys(all)) {
			if !yield(key, all[key]) {
				return
			}
		}
	}
}
