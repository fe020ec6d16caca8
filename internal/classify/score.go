package classify

// Score computes the (primary, secondary) score of one candidate token set
// against a source token set.
//
// The primary score is the number of tokens present in both sets. The
// secondary score is the fraction of the candidate's tokens that were matched,
// so among candidates sharing the same number of tokens with the source, a
// short specific name whose every word matched outranks a long name matched
// only in part.
//
// An empty candidate set scores (0, 0); there is no division by zero.
func Score(source, candidate TokenSet) (primary int, secondary float64) {
	if len(candidate) == 0 {
		return 0, 0
	}

	shared := 0
	for tok := range candidate {
		if source.Has(tok) {
			shared++
		}
	}
	if shared == 0 {
		return 0, 0
	}
	return shared, float64(shared) / float64(len(candidate))
}
