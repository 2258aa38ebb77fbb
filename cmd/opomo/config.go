package main

// Flag names for Viper binding
const (
	// Global flags
	FlagVerbose = "verbose"
	FlagConfig  = "config"

	// Timer flags
	FlagWork   = "work"
	FlagBreak  = "break"
	FlagCycles = "cycles"
	FlagLate   = "late"

	// UI flags
	FlagBigDigits = "big-digits"
)
