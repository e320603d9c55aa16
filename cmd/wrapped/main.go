package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"card-wrapped/internal/domain"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", userMessage(err))
		os.Exit(1)
	}
}

// userMessage turns the parser's sentinel errors into something a card holder can act on.
func userMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrFormatNotRecognized):
		return "the file is not a supported card statement export"
	case errors.Is(err, domain.ErrNoTransactions):
		return "the statement does not contain any readable transactions"
	case errors.Is(err, os.ErrNotExist):
		return fmt.Sprintf("statement file not found (%v)", err)
	}
	return err.Error()
}
