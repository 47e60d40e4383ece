package walker

import "errors"

var (
	// ErrInvalidVocabulary indicates markers that collide with each other or
	// with the letter range 'A'-'Z'.
	ErrInvalidVocabulary = errors.New("walker: invalid vocabulary")
)
