package domain

import "errors"

var (
	// ErrFormatNotRecognized is returned when the header row matches no known dialect.
	ErrFormatNotRecognized = errors.New("statement format not recognized")
	// ErrNoTransactions is returned when the dialect was recognised but no row survived parsing.
	ErrNoTransactions = errors.New("statement contains no transactions")
)
