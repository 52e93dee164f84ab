package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"regret-journal/internal/service"
)

// consoleNotifier prints reminders to the terminal.
type consoleNotifier struct {
	w   io.Writer
	log *logrus.Logger
}

func (n consoleNotifier) Notify(_ context.Context, note service.Notification) error {
	n.log.WithField("id", note.ID).Info("delivering reminder")
	_, err := fmt.Fprintf(n.w, "%s\n%s\n", note.Title, note.Body)
	return err
}
