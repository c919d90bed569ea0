package message

const (
	InvalidInput    = "Invalid input."
	ProductNotFound = "Product not found."
	DBUnavailable   = "Database is unavailable."
	Internal        = "Something went wrong."
)
