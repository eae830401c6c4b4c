package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	successStyle = color.New(color.FgGreen)
	failureStyle = color.New(color.FgRed)
	infoStyle    = color.New(color.Faint)
)

// ToastNotifier renders transient success/failure messages, the terminal
// counterpart of toast notifications.
type ToastNotifier struct {
	out io.Writer
}

// NewToastNotifier creates a notifier writing to out.
func NewToastNotifier(out io.Writer) *ToastNotifier {
	return &ToastNotifier{out: out}
}

func (n *ToastNotifier) Success(message string) {
	fmt.Fprintln(n.out, successStyle.Sprint("✓ ")+message)
}

func (n *ToastNotifier) Failure(message string) {
	fmt.Fprintln(n.out, failureStyle.Sprint("✗ ")+message)
}

func (n *ToastNotifier) Info(message string) {
	fmt.Fprintln(n.out, infoStyle.Sprint(message))
}
