package ports

// Notifier surfaces one-shot user-visible messages, used for eligibility
// rejections that never reach the Ledger.
type Notifier interface {
	Show(message string)
}
