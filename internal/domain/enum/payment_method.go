package enum

// PaymentMethod is how the customer settles a batch.
type PaymentMethod string

const (
	PaymentMethodCash   PaymentMethod = "Cash"
	PaymentMethodCard   PaymentMethod = "Card"
	PaymentMethodMobile PaymentMethod = "Mobile"
	PaymentMethodNone   PaymentMethod = "None"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodMobile, PaymentMethodNone:
		return true
	}
	return false
}

func (m PaymentMethod) String() string {
	return string(m)
}
