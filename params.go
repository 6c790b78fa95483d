package uriparse

import (
	"strings"

	"github.com/terorie/uriparse/charset"
	"github.com/terorie/uriparse/pct"
	"github.com/terorie/uriparse/rfc3986"
)

// Param is one "key=value" or bare "key" query parameter (spec §3.3,
// §4.8). HasValue distinguishes "key" (no '=') from "key=" (empty value),
// matching the teacher's url.Values ambiguity concern called out in spec
// §9.
type Param struct {
	Key      string
	Value    string
	HasValue bool
}

// Params splits the raw query on "&" then each pair on the first "=",
// percent-decoding both key and value (spec §4.8).
func (u *URL) Params() ([]Param, error) {
	raw := u.EncodedQuery()
	if raw == "" {
		return nil, nil
	}
	pairs := strings.Split(raw, "&")
	out := make([]Param, 0, len(pairs))
	for _, pair := range pairs {
		if pair == "" {
			continue
		}
		k, v, hasValue := strings.Cut(pair, "=")
		dk, err := rfc3986.DecodeQueryComponent(k)
		if err != nil {
			return nil, err
		}
		var dv string
		if hasValue {
			dv, err = rfc3986.DecodeQueryComponent(v)
			if err != nil {
				return nil, err
			}
		}
		out = append(out, Param{Key: dk, Value: dv, HasValue: hasValue})
	}
	return out, nil
}

// ParamValue returns the first value associated with key, comparing key
// against each raw parameter key without decoding the whole query first
// (spec §4.2.5's percent-encoded key equality).
func (u *URL) ParamValue(key string) (value string, ok bool) {
	raw := u.EncodedQuery()
	if raw == "" {
		return "", false
	}
	for _, pair := range strings.Split(raw, "&") {
		k, v, hasValue := strings.Cut(pair, "=")
		if pct.KeyEqual(k, key) {
			if !hasValue {
				return "", true
			}
			dv, err := rfc3986.DecodeQueryComponent(v)
			if err != nil {
				return "", false
			}
			return dv, true
		}
	}
	return "", false
}

// SetParams replaces the entire query with the given parameters, percent-
// encoding each key and value.
func (u *URL) SetParams(params []Param) {
	var b strings.Builder
	for i, p := range params {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(pct.EncodeString(p.Key, queryComponentChar, pct.EncodeOpts{SpaceToPlus: true}))
		if p.HasValue {
			b.WriteByte('=')
			b.WriteString(pct.EncodeString(p.Value, queryComponentChar, pct.EncodeOpts{SpaceToPlus: true}))
		}
	}
	u.edit(idQuery, idQuery, []byte(b.String()))
	u.hasQuery = true
	u.nParams = len(params)
}

// queryComponentChar is QueryOrFragmentChar minus the pair/separator
// delimiters "&" and "=", so an encoded key or value never introduces a
// spurious split point (mirrors rfc3986.EncodeQueryComponent's set).
var queryComponentChar = charset.QueryOrFragmentChar.Minus(charset.New("&="))

func encodeParam(p Param) string {
	var b strings.Builder
	b.WriteString(pct.EncodeString(p.Key, queryComponentChar, pct.EncodeOpts{SpaceToPlus: true}))
	if p.HasValue {
		b.WriteByte('=')
		b.WriteString(pct.EncodeString(p.Value, queryComponentChar, pct.EncodeOpts{SpaceToPlus: true}))
	}
	return b.String()
}

func encodedParamPairs(u *URL) []string {
	raw := u.EncodedQuery()
	if raw == "" {
		return nil
	}
	return strings.Split(raw, "&")
}

// ParamsRef is a mutable view over a URL's query parameters, offering
// granular element-at-a-time edits (spec §4.5's params_ref) rather than
// SetParams' whole-query replacement. Every method reads the current
// "&"-split parameter list, edits it in place, and writes the whole query
// back through SetEncodedQuery, so it shares SetEncodedQuery's nParams
// bookkeeping rather than duplicating it.
type ParamsRef struct{ u *URL }

// ParamsRef returns a ParamsRef over u.
func (u *URL) ParamsRef() ParamsRef { return ParamsRef{u: u} }

func (p ParamsRef) write(pairs []string) {
	p.u.SetEncodedQuery(strings.Join(pairs, "&"))
}

// Insert adds param at index among the existing parameters, shifting every
// following parameter back by one. index may equal the current parameter
// count to insert at the end.
func (p ParamsRef) Insert(index int, param Param) error {
	pairs := encodedParamPairs(p.u)
	if index < 0 || index > len(pairs) {
		return ErrOutOfRange
	}
	pairs = append(pairs, "")
	copy(pairs[index+1:], pairs[index:])
	pairs[index] = encodeParam(param)
	p.write(pairs)
	return nil
}

// Erase removes the parameter at index, shifting every following parameter
// forward by one.
func (p ParamsRef) Erase(index int) error {
	pairs := encodedParamPairs(p.u)
	if index < 0 || index >= len(pairs) {
		return ErrOutOfRange
	}
	pairs = append(pairs[:index], pairs[index+1:]...)
	p.write(pairs)
	return nil
}

// Replace overwrites the parameter at index with param.
func (p ParamsRef) Replace(index int, param Param) error {
	pairs := encodedParamPairs(p.u)
	if index < 0 || index >= len(pairs) {
		return ErrOutOfRange
	}
	pairs[index] = encodeParam(param)
	p.write(pairs)
	return nil
}

// PushBack appends param after the last existing parameter.
func (p ParamsRef) PushBack(param Param) {
	pairs := append(encodedParamPairs(p.u), encodeParam(param))
	p.write(pairs)
}

// PopBack removes the last parameter. It returns ErrOutOfRange if the query
// has no parameters.
func (p ParamsRef) PopBack() error {
	pairs := encodedParamPairs(p.u)
	if len(pairs) == 0 {
		return ErrOutOfRange
	}
	p.write(pairs[:len(pairs)-1])
	return nil
}

// Append adds one or more params after the last existing parameter in a
// single query rewrite, the params_ref-only mutator spec §4.5 adds beyond
// the segments_ref set (a query can grow by a whole parsed param list at
// once, e.g. from a form submission, in a way a path rarely does).
func (p ParamsRef) Append(params ...Param) {
	pairs := encodedParamPairs(p.u)
	for _, param := range params {
		pairs = append(pairs, encodeParam(param))
	}
	p.write(pairs)
}
