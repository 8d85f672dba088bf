package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	ErrAmountNegative          = errors.New("transaction amounts must be zero or positive")
	ErrTransactionTypeInvalid  = errors.New("transaction type must be income or expense")
	ErrBudgetAmountNotPositive = errors.New("budget amounts must be larger than zero")
	ErrBudgetMonthNotUnique    = errors.New("you can not set more than one budget for the same month")
	ErrLimitAmountNotPositive  = errors.New("daily limit amounts must be larger than zero")
	ErrScoreOutOfRange         = errors.New("financial scores must be between 0 and 100")
)
