// Package anime orchestrates the ordered emission of caption and dragon
// frames to a terminal.
//
// A [Plan] runs in three phases: pre-captions, side dishes, after-captions.
// With an interval configured the sequencer clears the screen once up
// front, then separates consecutive frames (including across phase
// boundaries) with a sleep-then-clear transition. The final frame is never
// followed by a clear, so it stays on screen. Without an interval all
// frames print back to back with no sleeps or clears.
//
// The sequencer owns its [Target] for the duration of a run. Any write or
// clear failure aborts the run immediately; a half-written frame may
// remain on screen.
package anime
