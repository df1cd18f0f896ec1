// Package render produces dragon frames from side dish text.
//
// A frame is the fixed 15-line dragon template with the side dish split
// across two 20-column slots in the speech box, every line padded out to
// the terminal width:
//
//	frame := render.Frame("おいしいごはん", width, render.SplitChars)
//	for _, line := range frame {
//		target.WriteLine(line)
//	}
//
// Two split policies exist. [SplitChars] divides the side dish into two
// 8-character runs and silently drops anything past the 16th character.
// [SplitLines] maps the first two lines of a multi-line side dish onto
// the slots directly, falling back to [SplitChars] for single-line input.
// SplitChars is the default everywhere.
//
// Padding is column-aware (wide glyphs count as two columns), which keeps
// the speech box borders aligned for Japanese side dishes.
package render
