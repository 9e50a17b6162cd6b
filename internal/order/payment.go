package order

type PaymentStatus int

const (
	PaymentStatusPending  PaymentStatus = 1
	PaymentStatusPaid     PaymentStatus = 2
	PaymentStatusFailed   PaymentStatus = 3
	PaymentStatusRefunded PaymentStatus = 4
)

func (s PaymentStatus) String() string {
	switch s {
	case PaymentStatusPending:
		return "pending"
	case PaymentStatusPaid:
		return "paid"
	case PaymentStatusFailed:
		return "failed"
	case PaymentStatusRefunded:
		return "refunded"
	default:
		return "unknown"
	}
}

type PaymentMethod int

const (
	PaymentMethodCreditCard     PaymentMethod = 1
	PaymentMethodDebitCard      PaymentMethod = 2
	PaymentMethodPayPal         PaymentMethod = 3
	PaymentMethodBankTransfer   PaymentMethod = 4
	PaymentMethodCashOnDelivery PaymentMethod = 5
)

func (m PaymentMethod) String() string {
	switch m {
	case PaymentMethodCreditCard:
		return "credit_card"
	case PaymentMethodDebitCard:
		return "debit_card"
	case PaymentMethodPayPal:
		return "paypal"
	case PaymentMethodBankTransfer:
		return "bank_transfer"
	case PaymentMethodCashOnDelivery:
		return "cash_on_delivery"
	default:
		return "unknown"
	}
}

func (m PaymentMethod) Valid() bool {
	return m >= PaymentMethodCreditCard && m <= PaymentMethodCashOnDelivery
}
