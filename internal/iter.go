package internal

import (
	"iter"
)

// IterSeqConcat concatenates multiple iterators into a single iterator sequence.
func IterSeqConcat[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, seq := range seqs {
			for val := range seq {
				if !yield(val) {
					return
				}
			}
		}
	}
}

// IterSeqOf yields each of the values in order.
func IterSeqOf[T any](values ...T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, val := range values {
			if !yield(val) {
				return
			}
		}
	}
}

// IterSeq2Values maps the values of a dual-return iterator, dropping the keys.
func IterSeq2Values[K any, V any, T any](seq iter.Seq2[K, V], fn func(V) T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, val := range seq {
			if !yield(fn(val)) {
				return
			}
		}
	}
}
