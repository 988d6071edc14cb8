package valueobjects

type PaymentMethod string

const (
	PaymentMethodCard         PaymentMethod = "card"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	PaymentMethodMobileWallet PaymentMethod = "mobile_wallet"
)

func (m PaymentMethod) IsValid() bool {
	return m == PaymentMethodCard || m.IsManual()
}

// IsManual reports whether payment happens out of band and needs an admin
// to confirm it.
func (m PaymentMethod) IsManual() bool {
	return m == PaymentMethodBankTransfer || m == PaymentMethodMobileWallet
}

func (m PaymentMethod) String() string {
	return string(m)
}
