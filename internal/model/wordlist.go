package model

// Path represents a file system path.
type Path string

// TokenList is an ordered set of prepend or append fragments.
type TokenList []string

// NoTokens is the degenerate list used when a side has no mode: a single
// empty token keeps the cartesian product intact.
func NoTokens() TokenList {
	return TokenList{""}
}

// RangeSpec is a closed integer interval [Start, End].
type RangeSpec struct {
	Start uint64
	End   uint64
}

// Len returns the number of values in the interval; zero when End < Start.
func (r RangeSpec) Len() uint64 {
	if r.End < r.Start {
		return 0
	}

	return r.End - r.Start + 1
}

// Stats summarises a completed mutation run.
type Stats struct {
	Words     uint64
	Mutations uint64
}

// Estimate predicts the size of a mutation run without writing output.
type Estimate struct {
	Input         Path   `yaml:"input"`
	Words         uint64 `yaml:"words"`
	PrependTokens uint64 `yaml:"prepend_tokens"`
	AppendTokens  uint64 `yaml:"append_tokens"`
	Lines         uint64 `yaml:"lines"`
}
