package domain

import "errors"

var (
	ErrSegmentation     = errors.New("sentence segmentation failed")
	ErrInvalidParameter = errors.New("invalid parameter")
	ErrNoDocuments      = errors.New("no .txt documents found")
)
