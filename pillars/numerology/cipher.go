// Package numerology hosts the gematria calculator and number notes.
package numerology

import (
	"strings"
	"unicode"
)

// Cipher maps letters to values. Non-letters score zero.
type Cipher struct {
	Name   string
	values [26]int
}

// Value returns the score of a single rune.
func (c Cipher) Value(r rune) int {
	r = unicode.ToLower(r)
	if r < 'a' || r > 'z' {
		return 0
	}
	return c.values[r-'a']
}

// Sum scores a whole phrase.
func (c Cipher) Sum(phrase string) int {
	total := 0
	for _, r := range strings.ToLower(phrase) {
		total += c.Value(r)
	}
	return total
}

// Ordinal is the plain a=1 .. z=26 cipher.
func Ordinal() Cipher {
	var c Cipher
	c.Name = "Ordinal"
	for i := range c.values {
		c.values[i] = i + 1
	}
	return c
}

// ReverseOrdinal runs z=1 .. a=26.
func ReverseOrdinal() Cipher {
	var c Cipher
	c.Name = "Reverse Ordinal"
	for i := range c.values {
		c.values[i] = 26 - i
	}
	return c
}

// Reduction reduces each ordinal value to a single digit (a=1 .. i=9,
// j=1, ...).
func Reduction() Cipher {
	var c Cipher
	c.Name = "Reduction"
	for i := range c.values {
		v := i + 1
		for v > 9 {
			v = digitSum(v)
		}
		c.values[i] = v
	}
	return c
}

// Ciphers returns the calculator's cipher set in display order.
func Ciphers() []Cipher {
	return []Cipher{Ordinal(), Reduction(), ReverseOrdinal()}
}

// ReduceNumber collapses n to a single digit, preserving the master
// numbers 11, 22 and 33.
func ReduceNumber(n int) int {
	if n < 0 {
		n = -n
	}
	for n > 9 {
		if n == 11 || n == 22 || n == 33 {
			return n
		}
		n = digitSum(n)
	}
	return n
}

func digitSum(n int) int {
	s := 0
	for n > 0 {
		s += n % 10
		n /= 10
	}
	return s
}
