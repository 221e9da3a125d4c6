// Package caml translates generic query filters into CAML, the XML query
// dialect of the document-list store.
//
// The pipeline is one-directional: a filter's where-clause tree is
// compiled into an intermediate, strictly binary CAML node tree, which a
// deterministic serializer renders into the final fragment. Projection,
// ordering and row limiting are emitted independently and concatenated
// into the View document by Translate.
//
// The interesting part is the logical folding. The filter grammar allows
// and/or connectives with arbitrarily many children, while CAML's And and
// Or elements take exactly two expressions. The compiler folds n sibling
// conditions into n-1 nested binary nodes, right-leaning and in original
// order, so three ANDed conditions render as And(a, And(b, c)).
//
// Everything here is a pure, synchronous computation over immutable
// inputs. There is no I/O and no shared state; a Metadata value and any
// number of filters may be translated concurrently without locking.
package caml
