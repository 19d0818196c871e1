package consts

import "github.com/fatih/color"

// Tag colours.
var (
	ColorRed    = color.New(color.FgHiRed)
	ColorGreen  = color.New(color.FgHiGreen)
	ColorYellow = color.New(color.FgHiYellow)
	ColorBlue   = color.New(color.FgBlue)
	ColorCyan   = color.New(color.FgHiCyan)
	ColorPurple = color.New(color.FgMagenta)
)

// RedError returns the error tag. Tags are built on each call so they follow color.NoColor.
func RedError() string { return ColorRed.Sprint("[ERROR] ") }

// PurpleWarning returns the warning tag.
func PurpleWarning() string { return ColorPurple.Sprint("[Warning] ") }

// GreenSuccess returns the success tag.
func GreenSuccess() string { return ColorGreen.Sprint("[Success] ") }

// YellowDebug returns the debug tag.
func YellowDebug() string { return ColorYellow.Sprint("[Debug] ") }

// BlueInfo returns the info tag.
func BlueInfo() string { return ColorCyan.Sprint("[Info] ") }
