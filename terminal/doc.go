// Package terminal presents rendered frames on a console.
//
// Two sinks are provided:
//   - PlainSink writes "ESC c" followed by the composed text to any io.Writer
//   - ScreenSink draws coloured glyphs into a tcell screen and watches for quit keys
//
// Detect picks a sink mode from whether stdout is a terminal.
package terminal
