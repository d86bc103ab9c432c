package typedtable

// Signature is the positional list of value types a table is built from.
// It only exists at compile time: [Nil] is the empty list and [Snoc] appends
// one type to the right of an existing list. Column sequences, rows and
// tables that share a Signature are guaranteed to line up position by
// position.
//
// Signature is sealed; only Nil and Snoc implement it.
type Signature interface {
	arity() int
	zeroCells(dst []erased) []erased
}

// Nil is the empty signature.
type Nil struct{}

func (Nil) arity() int { return 0 }

func (Nil) zeroCells(dst []erased) []erased { return dst }

// Snoc is the signature S followed by the value type T.
type Snoc[S Signature, T any] struct{}

func (Snoc[S, T]) arity() int {
	var s S
	return s.arity() + 1
}

func (Snoc[S, T]) zeroCells(dst []erased) []erased {
	var s S
	var zero T
	return append(s.zeroCells(dst), NewCell(zero).erase())
}

// Arity returns the number of positions in S.
func Arity[S Signature]() int {
	var s S
	return s.arity()
}

// Shorthands for signatures of up to eight columns.
type (
	Sig1[A any]                      = Snoc[Nil, A]
	Sig2[A, B any]                   = Snoc[Snoc[Nil, A], B]
	Sig3[A, B, C any]                = Snoc[Snoc[Snoc[Nil, A], B], C]
	Sig4[A, B, C, D any]             = Snoc[Snoc[Snoc[Snoc[Nil, A], B], C], D]
	Sig5[A, B, C, D, E any]          = Snoc[Snoc[Snoc[Snoc[Snoc[Nil, A], B], C], D], E]
	Sig6[A, B, C, D, E, F any]       = Snoc[Snoc[Snoc[Snoc[Snoc[Snoc[Nil, A], B], C], D], E], F]
	Sig7[A, B, C, D, E, F, G any]    = Snoc[Snoc[Snoc[Snoc[Snoc[Snoc[Snoc[Nil, A], B], C], D], E], F], G]
	Sig8[A, B, C, D, E, F, G, H any] = Snoc[Snoc[Snoc[Snoc[Snoc[Snoc[Snoc[Snoc[Nil, A], B], C], D], E], F], G], H]
)
