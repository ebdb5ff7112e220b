// Package config provides configuration structures and utilities for xwpuz.
// It defines where puzzles are fetched from, how the request is made, where
// files are written and whether download history is kept.
package config
