package domain

import "strings"

// StreaksOptions is a set of dimensions to compute. Build it with
// NewStreaksOptions or ParseStreaksOptions; the zero value is the empty set.
type StreaksOptions map[Dimension]struct{}

func NewStreaksOptions(dims ...Dimension) StreaksOptions {
	opts := make(StreaksOptions, len(dims))
	for _, d := range dims {
		opts[d] = struct{}{}
	}
	return opts
}

func AllStreaksOptions() StreaksOptions {
	return NewStreaksOptions(AllDimensions...)
}

// ParseStreaksOptions reads a comma separated list such as "exercise,move".
// An empty string selects every dimension.
func ParseStreaksOptions(raw string) (StreaksOptions, error) {
	if strings.TrimSpace(raw) == "" {
		return AllStreaksOptions(), nil
	}

	opts := NewStreaksOptions()
	for _, part := range strings.Split(raw, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		d, err := ParseDimension(part)
		if err != nil {
			return nil, err
		}
		opts[d] = struct{}{}
	}

	if opts.IsEmpty() {
		return AllStreaksOptions(), nil
	}
	return opts, nil
}

func (o StreaksOptions) Contains(d Dimension) bool {
	_, ok := o[d]
	return ok
}

func (o StreaksOptions) Union(other StreaksOptions) StreaksOptions {
	out := make(StreaksOptions, len(o)+len(other))
	for d := range o {
		out[d] = struct{}{}
	}
	for d := range other {
		out[d] = struct{}{}
	}
	return out
}

func (o StreaksOptions) IsEmpty() bool {
	return len(o) == 0
}

// Dimensions lists the members in canonical order.
func (o StreaksOptions) Dimensions() []Dimension {
	dims := make([]Dimension, 0, len(o))
	for _, d := range AllDimensions {
		if o.Contains(d) {
			dims = append(dims, d)
		}
	}
	return dims
}
