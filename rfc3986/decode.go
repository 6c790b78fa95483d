package rfc3986

import (
	"github.com/terorie/uriparse/charset"
	"github.com/terorie/uriparse/grammar"
	"github.com/terorie/uriparse/pct"
)

// decodeWithRecycler percent-decodes raw against permitted, borrowing its
// scratch buffer from the grammar package's process-wide Recycler instead
// of allocating one per call, amortizing decode cost across the many small
// component decodes (segment, query key/value, fragment, userinfo, host) a
// single URL parse performs (spec §9, original: detail/recycler.hpp).
func decodeWithRecycler(raw string, permitted charset.Set, opts pct.DecodeOpts) (string, error) {
	n, err := pct.DecodedSize(raw, permitted, opts)
	if err != nil {
		return "", err
	}
	buf := grammar.Default().TryAcquire(n)
	if cap(buf) < n {
		buf = make([]byte, 0, n)
	}
	buf = buf[:n]
	pct.DecodeUnchecked(buf, raw, opts)
	out := string(buf)
	grammar.Default().Release(buf)
	return out, nil
}
