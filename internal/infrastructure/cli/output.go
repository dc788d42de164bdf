package cli

import "github.com/fatih/color"

var (
	successColor = color.New(color.FgGreen, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	infoColor    = color.New(color.FgCyan)
)

func printSuccess(format string, args ...interface{}) {
	successColor.Printf(format+"\n", args...)
}

func printError(format string, args ...interface{}) {
	errorColor.Printf(format+"\n", args...)
}

func printInfo(format string, args ...interface{}) {
	infoColor.Printf(format+"\n", args...)
}
