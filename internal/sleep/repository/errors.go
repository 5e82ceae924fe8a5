package repository

import "errors"

var (
	ErrFailedToLoad    = errors.New("failed to load model artifact")
	ErrFailedToPredict = errors.New("failed to run prediction")
)
