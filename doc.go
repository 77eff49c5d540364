// Package tylang is a static type checker for a small expression language of
// integers, booleans, conditionals and explicitly annotated functions, with
// single and mutually recursive function bindings.
//
//	let rec fun even (n: int): bool is if n == 0 then true else odd (n - 1)
//	and fun odd (n: int): bool is if n == 0 then false else even (n - 1)
//	in even 10
//
// Checking is against the annotations only, there is no inference. A program
// either checks to a single type or is rejected with the first error found.
// The checker itself lives in src/check and never reads source text; this
// package glues it to the parser in src/parse.
package tylang
