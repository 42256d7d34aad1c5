package ledger

import "errors"

// ErrCreditExhausted is the disapproval outcome: the player cannot cover
// the amount and has no loan headroom left. It ends the player's game,
// not just the round, so callers must check it rather than retry.
var ErrCreditExhausted = errors.New("insufficient funds and loan limit reached")

// default credit terms
const (
	DefaultLoanAmount       = 50
	DefaultLoanLimit        = 5
	DefaultPaybackThreshold = 100
)

// Terms configures the house-credit economy
type Terms struct {
	// LoanAmount is the fixed amount granted per loan
	LoanAmount int `json:"loanAmount"`
	// LoanLimit is the maximum number of outstanding loans
	LoanLimit int `json:"loanLimit"`
	// PaybackThreshold is the balance above which loans are repaid
	PaybackThreshold int `json:"paybackThreshold"`
}

// DefaultTerms returns the conventional credit terms
func DefaultTerms() Terms {
	return Terms{
		LoanAmount:       DefaultLoanAmount,
		LoanLimit:        DefaultLoanLimit,
		PaybackThreshold: DefaultPaybackThreshold,
	}
}

// Account is a player's bankroll with bounded house credit
type Account struct {
	name    string
	balance int
	loans   int
	terms   Terms
}

// NewAccount returns an account with the given starting balance
func NewAccount(name string, balance int, terms Terms) *Account {
	if terms.LoanAmount <= 0 {
		terms = DefaultTerms()
	}

	return &Account{
		name:    name,
		balance: balance,
		terms:   terms,
	}
}

// Name returns the account holder's name
func (a *Account) Name() string {
	return a.name
}

// Balance returns the current balance
func (a *Account) Balance() int {
	return a.balance
}

// Loans returns the number of outstanding loans
func (a *Account) Loans() int {
	return a.loans
}

// InDebt returns true if the account has an outstanding loan
func (a *Account) InDebt() bool {
	return a.loans > 0
}

// CheckFunds ensures the balance can cover the amount, granting loans up
// to the loan limit to make up the difference. The number of loans
// granted is returned; ErrCreditExhausted means the account holder is
// out of the game. The balance is not debited.
func (a *Account) CheckFunds(amount int) (int, error) {
	granted := 0
	for a.balance-amount < 0 {
		if a.loans >= a.terms.LoanLimit {
			return granted, ErrCreditExhausted
		}

		a.balance += a.terms.LoanAmount
		a.loans++
		granted++
	}

	return granted, nil
}

// Debit removes the amount from the balance
func (a *Account) Debit(amount int) {
	a.balance -= amount
}

// Credit adds the amount to the balance
func (a *Account) Credit(amount int) {
	a.balance += amount
}

// SettlePaybacks repays loans while the balance stays above the payback
// threshold, returning how many were repaid. Runs opportunistically
// before funds checks and again after pot settlement.
func (a *Account) SettlePaybacks() int {
	repaid := 0
	for a.loans > 0 && a.balance > a.terms.PaybackThreshold {
		a.balance -= a.terms.LoanAmount
		a.loans--
		repaid++
	}

	return repaid
}
