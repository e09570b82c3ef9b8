// Package config holds keymark's user settings.
//
// Settings are read from a TOML or YAML file, chosen by extension, and
// layered over the built-in defaults:
//
//	[log]
//	level = "debug"
//
//	[gutter]
//	show_line_numbers = true
//	sign_column_width = 2
//
//	[kinds.breakpoint]
//	z_order = 20
//	glyph = "B"
//
//	[styles.current-statement]
//	background = "olive"
//	foreground = "black"
//
// A few settings can also be overridden from the environment with the
// KEYMARK_ prefix (see ApplyEnv). Watcher reloads the file when it changes.
package config
