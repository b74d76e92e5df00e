package lifecycle

import (
	"fmt"
	"io"

	"github.com/felixgeelhaar/bolt/v3"

	"github.com/ukaji3/exanalytics-go/pkg/exanalytics/logging"
)

// Notifier shows short user-facing messages.
type Notifier interface {
	Success(msg string)
	Info(msg string)
	Error(msg string)
}

// Confirmer asks the user a yes/no question.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(prompt string) bool

// Confirm calls f.
func (f ConfirmFunc) Confirm(prompt string) bool { return f(prompt) }

// AlwaysConfirm answers every question with yes.
var AlwaysConfirm Confirmer = ConfirmFunc(func(string) bool { return true })

// WriterNotifier prints messages to a writer, one per line.
type WriterNotifier struct {
	W io.Writer
}

func (n WriterNotifier) Success(msg string) { fmt.Fprintln(n.W, msg) }
func (n WriterNotifier) Info(msg string)    { fmt.Fprintln(n.W, msg) }
func (n WriterNotifier) Error(msg string)   { fmt.Fprintln(n.W, "error: "+msg) }

// LogNotifier sends messages to a logger.
type LogNotifier struct {
	Logger *bolt.Logger
}

func (n LogNotifier) Success(msg string) {
	logging.NewEvent(n.Logger.Info()).Add(logging.Component("lifecycle")).Msg(msg)
}

func (n LogNotifier) Info(msg string) {
	logging.NewEvent(n.Logger.Info()).Add(logging.Component("lifecycle")).Msg(msg)
}

func (n LogNotifier) Error(msg string) {
	logging.NewEvent(n.Logger.Error()).Add(logging.Component("lifecycle")).Msg(msg)
}
