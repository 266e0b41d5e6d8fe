package pws

import "strings"

// Params is an insertion-ordered set of upload query parameters.
type Params struct {
	keys   []string
	values map[string]string
}

// NewParams creates an empty Params.
func NewParams() *Params {
	return &Params{values: make(map[string]string)}
}

// SeedParams creates Params carrying the constants every upload starts with.
func SeedParams() *Params {
	p := NewParams()
	p.Set("action", "updateraw")
	p.Set("dateutc", "now")
	return p
}

// Set stores key=value. A key that is already present keeps its original
// position and only its value is replaced.
func (p *Params) Set(key, value string) {
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[key] = value
}

// Get returns the value for key and whether it is present.
func (p *Params) Get(key string) (string, bool) {
	v, ok := p.values[key]
	return v, ok
}

// Len returns the number of parameters.
func (p *Params) Len() int {
	return len(p.keys)
}

// Encode joins the pairs as key=value with & separators, in insertion order.
// Keys and values are not percent-encoded; the upload endpoint takes the
// query string raw.
func (p *Params) Encode() string {
	pairs := make([]string, 0, len(p.keys))
	for _, k := range p.keys {
		pairs = append(pairs, k+"="+p.values[k])
	}
	return strings.Join(pairs, "&")
}
