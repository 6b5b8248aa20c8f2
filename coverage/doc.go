// Package coverage implements the O(1)-reset coverage mask (spec.md §3
// "Coverage mask", component C3, and §9 Design Notes "Coverage mask as
// O(1)-reset set"): a dense per-example mark paired with a monotonically
// increasing target, so that "nobody is currently covered" can be
// established in O(1) by advancing the target instead of zeroing an
// array of length N.
package coverage
