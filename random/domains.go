package random

import "iter"

const letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Letters returns the 52 ASCII letters, lowercase first.
func Letters() []rune {
	return []rune(letters)
}

// DigitValues returns the integers 0 to 9.
func DigitValues() []int {
	return []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
}

// Alphabets returns a stream of random ASCII letters.
func Alphabets(opts ...Option[rune]) iter.Seq[rune] {
	return mustStream(Letters(), opts)
}

// Digits returns a stream of random integers from 0 to 9.
func Digits(opts ...Option[int]) iter.Seq[int] {
	return mustStream(DigitValues(), opts)
}

// Bits returns a stream of random 1s and 0s.
func Bits(opts ...Option[int]) iter.Seq[int] {
	return mustStream([]int{1, 0}, opts)
}

// mustStream is for the fixed, non-empty domains above.
func mustStream[T comparable](domain []T, opts []Option[T]) iter.Seq[T] {
	stream, err := Stream(domain, opts...)
	if err != nil {
		panic(err)
	}
	return stream
}
