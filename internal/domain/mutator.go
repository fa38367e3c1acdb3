package domain

import (
	m "gooze.dev/pkg/pwmutate/internal/model"
)

// Mutate returns every prepend+word+append combination. Prepends form the
// outer loop and appends the inner one, so for [P1,P2] and [A1,A2] the order is
// P1wA1, P1wA2, P2wA1, P2wA2.
func Mutate(word string, prepends, appends m.TokenList) []string {
	mutations := make([]string, 0, len(prepends)*len(appends))

	_ = MutateEach(word, prepends, appends, func(mutation string) error {
		mutations = append(mutations, mutation)
		return nil
	})

	return mutations
}

// MutateEach streams the same sequence as Mutate to yield, stopping at the
// first error yield returns.
func MutateEach(word string, prepends, appends m.TokenList, yield func(mutation string) error) error {
	for _, prepend := range prepends {
		for _, suffix := range appends {
			if err := yield(prepend + word + suffix); err != nil {
				return err
			}
		}
	}

	return nil
}
