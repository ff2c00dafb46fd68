package encode

// Option configures Encode.
type Option func(*encState)

// IgnoreCharset suppresses @charset nodes in the output.
func IgnoreCharset(v bool) Option {
	return func(es *encState) { es.ignoreCharset = v }
}

// IgnoreComments suppresses comment nodes in the output.
func IgnoreComments(v bool) Option {
	return func(es *encState) { es.ignoreComments = v }
}

// IgnoreEmptyRules suppresses rules with zero declarations.
func IgnoreEmptyRules(v bool) Option {
	return func(es *encState) { es.ignoreEmptyRules = v }
}
