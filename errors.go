package shopbook

import "errors"

// Validation rejections. Every mutator leaves the ledger untouched and
// returns one of these (possibly wrapped with context); none is fatal.
var (
	ErrInvalidQuantity          = errors.New("quantity must be a positive number")
	ErrInsufficientStock        = errors.New("not enough stock")
	ErrNoSellerSelected         = errors.New("no seller selected")
	ErrInvalidAmount            = errors.New("amount must be a positive number")
	ErrGuestWithdrawalForbidden = errors.New("guests cannot withdraw money")
	ErrDuplicatePartner         = errors.New("partner already exists")
	ErrLastPartnerRemoval       = errors.New("must keep at least one partner")
	ErrInvalidResetCode         = errors.New("invalid reset confirmation code")
	ErrUnknownPartner           = errors.New("unknown partner")
	ErrEmptyPartnerName         = errors.New("partner name is required")
	ErrUnknownRecord            = errors.New("unknown record")
	ErrNoPartner                = errors.New("at least one non-guest partner is required")
)

// ErrNoData is returned by the persistence collaborator when no prior
// snapshot exists, routing the caller to first-run setup.
var ErrNoData = errors.New("no prior data")
