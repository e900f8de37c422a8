package model

import "errors"

var (
	ErrCartItemNotFound  = errors.New("cart item not found")
	ErrDuplicateCartItem = errors.New("book already in cart")
)
