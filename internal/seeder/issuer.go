package seeder

import (
	"fmt"
	"strings"
)

// UniqueCodeIssuer hands out codes of the form prefix + digits that were
// never issued before, including codes already present in the store.
type UniqueCodeIssuer struct {
	prefix string
	digits int
	gen    *DataGenerator
	issued map[string]struct{}
}

func NewUniqueCodeIssuer(gen *DataGenerator, prefix string, digits int, existing []string) *UniqueCodeIssuer {
	u := &UniqueCodeIssuer{
		prefix: prefix,
		digits: digits,
		gen:    gen,
		issued: make(map[string]struct{}, len(existing)),
	}
	for _, code := range existing {
		if u.owns(code) {
			u.issued[code] = struct{}{}
		}
	}
	return u
}

func (u *UniqueCodeIssuer) owns(code string) bool {
	rest, ok := strings.CutPrefix(code, u.prefix)
	if !ok || len(rest) != u.digits {
		return false
	}
	for _, r := range rest {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func (u *UniqueCodeIssuer) Remaining() int {
	return pow10(u.digits) - len(u.issued)
}

// Issue returns n fresh codes. It fails before generating anything when the
// namespace cannot hold n more codes.
func (u *UniqueCodeIssuer) Issue(n int) ([]string, error) {
	if n > u.Remaining() {
		return nil, fmt.Errorf("%w: %d %s codes requested, %d left", ErrNamespaceExhausted, n, u.prefix, u.Remaining())
	}

	codes := make([]string, 0, n)
	for len(codes) < n {
		code := u.prefix + u.gen.Digits(u.digits)
		if _, taken := u.issued[code]; taken {
			continue
		}
		u.issued[code] = struct{}{}
		codes = append(codes, code)
	}
	return codes, nil
}
