package patient

import "errors"

// Domain errors for patient profiling

var (
	ErrInvalidAge            = errors.New("age must not be negative")
	ErrInvalidWeight         = errors.New("weight must be greater than 0")
	ErrInvalidHeight         = errors.New("height must be greater than 0")
	ErrInvalidBloodSugar     = errors.New("blood sugar must not be negative")
	ErrInvalidDiabetesStatus = errors.New("diabetes status must be one of none, type1, type2, prediabetes")
)
