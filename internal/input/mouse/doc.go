// Package mouse provides the bit-packed mouse state used by the input
// pipeline.
//
// A mouse event carries coordinates and a Flags value. Flags combine
// per-button transitions (pressed, released, clicked, double and triple
// clicked), wheel movement, motion reporting and the keyboard modifiers
// held at the time.
//
// Drivers report only presses, releases and motion. The Synthesizer
// derives click, double-click and triple-click flags from consecutive
// press/release pairs, and Drag tracks a press-move-release gesture.
package mouse
