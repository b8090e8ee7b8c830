package request

// CreateUserRequest represents a back-office account creation request
type CreateUserRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"required,oneof=Admin Cashier"`
}

// BatchStatusRequest represents an admin batch status correction
type BatchStatusRequest struct {
	Status          string  `json:"status" binding:"required"`
	GivenAmount     float64 `json:"givenAmount" binding:"min=0"`
	PaymentMethod   string  `json:"paymentMethod"`
	DiscountAmount  float64 `json:"discountAmount" binding:"min=0"`
	DiscountPercent float64 `json:"discountPercent" binding:"min=0"`
	ReturnedAmount  float64 `json:"returnedAmount" binding:"min=0"`
}
