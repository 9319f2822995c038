package repository

import "errors"

// ErrDuplicateKey reports that an insert hit a unique constraint. Durable
// backends translate their driver errors into this so usecases can map a
// lost insert race to the right business error.
var ErrDuplicateKey = errors.New("duplicate key")
