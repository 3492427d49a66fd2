// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package version

import (
	"math/big"
	"strings"
)

const (
	backSeparator  = "-"
	frontSeparator = "."
)

// Tag returns the version tag of the given file name by stripping the base
// prefix and the suffix.
//
// The caller must make sure name starts with base and ends with suffix, e.g.
// by filtering with [Filter]. If it does not, the name is returned with only
// the parts stripped that actually match.
func Tag(base, suffix, name string) string {
	tag := strings.TrimPrefix(name, base)
	return strings.TrimSuffix(tag, suffix)
}

// Compare compares the version tags a and b.
//
// The tags are split at their first hyphen. If the fronts are equal, the backs
// decide. Otherwise the fronts are compared component-wise as dot separated
// sequences. If all shared components are equal, the longer sequence is the
// greater one, so "1.2.1" is greater than "1.2".
func Compare(a, b string) Order {
	if a == b {
		return Equal
	}

	frontA, backA, _ := strings.Cut(a, backSeparator)
	frontB, backB, _ := strings.Cut(b, backSeparator)

	if frontA == frontB {
		return compareMaybeNumeric(backA, backB)
	}

	return compareDotted(frontA, frontB)
}

func compareDotted(a, b string) Order {
	partsA := strings.Split(a, frontSeparator)
	partsB := strings.Split(b, frontSeparator)

	for idx := range min(len(partsA), len(partsB)) {
		if partsA[idx] != partsB[idx] {
			return compareMaybeNumeric(partsA[idx], partsB[idx])
		}
	}

	return compareOrdered(int64(len(partsA)), int64(len(partsB)))
}

// compareMaybeNumeric compares a and b as integers if any of them is one. A
// non-numeric value is always less than a numeric one. If neither is numeric,
// they are compared lexically. Integers are not limited in size.
func compareMaybeNumeric(a, b string) Order {
	numA, okA := new(big.Int).SetString(a, 10)
	numB, okB := new(big.Int).SetString(b, 10)

	switch {
	case okA && okB:
		return compareOrdered(int64(numA.Cmp(numB)), 0)
	case okA:
		return Greater
	case okB:
		return Less
	default:
		return compareOrdered(a, b)
	}
}
