package term

import "fmt"

// Status lines share a common prefix so operation output is easy to scan.

func Info(format string, args ...any) {
	fmt.Printf("%s %s\n", Cyan.Render("[phantomctl]"), fmt.Sprintf(format, args...))
}

func Success(format string, args ...any) {
	fmt.Printf("%s %s\n", Green.Render("[phantomctl]"), fmt.Sprintf(format, args...))
}

func Warn(format string, args ...any) {
	fmt.Printf("%s %s\n", Yellow.Render("[phantomctl]"), fmt.Sprintf(format, args...))
}

func Error(format string, args ...any) {
	fmt.Printf("%s %s\n", Red.Render("[phantomctl]"), fmt.Sprintf(format, args...))
}
