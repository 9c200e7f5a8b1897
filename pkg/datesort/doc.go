// Package datesort regroups an outline so that every entry whose label
// carries a calendar date (YYYY-MM-DD) is listed chronologically under a
// single "sorted" holder, while the untouched original outline is moved
// under a second holder.
//
// A run works in three steps:
//
//   - search: collect date-bearing nodes in pre-order and order them by date
//     with a stable sort
//   - build: recreate each date node under the sorted holder together with
//     the non-date structure beneath it, pointing every recreated node back
//     at the original through an action reference
//   - annotate: color the holders, demoted originals and entries with
//     hierarchy, then collapse everything
//
// Precondition failures (empty outline, already sorted, holder label
// collision) and malformed dates are detected before the tree is touched.
package datesort
