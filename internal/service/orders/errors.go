package orders

import "errors"

var (
	ErrEmptyRiderID      = errors.New("rider id is empty")
	ErrEmptyOrderID      = errors.New("order id is empty")
	ErrUnsupportedStatus = errors.New("unsupported order status")
)
