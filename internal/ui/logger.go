package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
)

var (
	clrDim    = color.New(color.FgHiBlack)
	clrSubtle = color.New(color.FgWhite)
	clrAccent = color.New(color.FgCyan, color.Bold)

	clrSuccess = color.New(color.FgGreen)
	clrError   = color.New(color.FgRed)
	clrWarning = color.New(color.FgYellow)
	clrInfo    = color.New(color.FgBlue)
)

const (
	boxTopLeft     = "╭"
	boxTopRight    = "╮"
	boxBottomLeft  = "╰"
	boxBottomRight = "╯"
	boxHorizontal  = "─"
	boxVertical    = "│"
)

// LogStatus displays a timestamped status message with an icon matching the
// category (success, error, warning, info).
func LogStatus(category, message string) {
	ts := clrDim.Sprint(time.Now().Format("15:04:05"))

	var icon string
	var styledMsg string

	switch category {
	case "success":
		icon = clrSuccess.Sprint("✔")
		styledMsg = clrSuccess.Sprint(message)
	case "error":
		icon = clrError.Sprint("✖")
		styledMsg = clrError.Sprint(message)
	case "warning":
		icon = clrWarning.Sprint("⚠")
		styledMsg = clrWarning.Sprint(message)
	case "info":
		icon = clrInfo.Sprint("ℹ")
		styledMsg = clrSubtle.Sprint(message)
	default:
		icon = clrDim.Sprint("●")
		styledMsg = clrSubtle.Sprint(message)
	}

	fmt.Printf("%s  %s  %s\n", ts, icon, styledMsg)
}

// LogGroup starts a boxed block of related lines.
func LogGroup(title string) {
	fmt.Println()
	width := 50 - len(title)
	if width < 2 {
		width = 2
	}
	fmt.Println(clrDim.Sprintf("%s%s %s %s%s",
		boxTopLeft,
		strings.Repeat(boxHorizontal, 2),
		clrAccent.Sprint(title),
		clrDim.Sprint(strings.Repeat(boxHorizontal, width)),
		boxTopRight))
}

// LogGroupItem logs a labeled value inside a group.
func LogGroupItem(label, value string) {
	fmt.Printf("%s  %s %s\n",
		clrDim.Sprint(boxVertical),
		clrDim.Sprint(label+":"),
		clrAccent.Sprint(value))
}

// LogGroupEnd closes a boxed block.
func LogGroupEnd() {
	fmt.Println(clrDim.Sprint(boxBottomLeft + strings.Repeat(boxHorizontal, 56) + boxBottomRight))
	fmt.Println()
}
