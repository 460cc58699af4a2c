// Package diagnostic provides structured errors and warnings produced while
// checking almanac mapping tables before they are solved.
//
// Key capabilities:
//   - Overlapping rule reports naming both offending rules by index
//   - Overlapping destination and no-op (zero length) rule warnings
//   - Category continuity warnings between consecutive stages
//   - Identity (rule-less) stage notes
package diagnostic
