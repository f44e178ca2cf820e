// Package filter provides filters for isolated nodes: Gaussian blur, color
// matrix and drop shadow. Each type implements compose.Filter.
//
// Filter parameters are given in stage units. Apply scales them by the
// environment's stage scale and pixel ratio before touching pixels.
//
// Filters that grow the content (blur, drop shadow) return a new, larger
// surface from the environment's pool, carrying a display offset moved by
// the added margin, and release their input.
package filter
