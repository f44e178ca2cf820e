// Package cache holds offscreen surfaces between frames.
//
// A [Pool] recycles surfaces so that isolated compositing does not allocate
// a fresh pixel buffer per node. A [Store] memoizes rendered bitmaps under
// keys produced by [DeriveKey]. Both report surface pressure through a
// shared [Budget], a signed counter measured in pixel area.
//
// The budget is advisory. Nothing in this package evicts entries or refuses
// work because the budget is exhausted, and the counter may go negative.
//
// The pool has no capacity limit. Every released surface is shrunk to 1×1
// before it is pushed, which bounds the memory held per idle surface but not
// the number of idle surfaces.
package cache
