package recommender

import "errors"

// ErrNotFound means the requested user/movie is absent from the matrix
// or table being queried. It is deliberately distinct from a low or
// zero-confidence prediction: fallback predictions carry a flag
// instead (see Prediction.Fallback).
var ErrNotFound = errors.New("not found")
