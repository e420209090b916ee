package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind indicates whether a transaction adds to revenue or to burn.
type TransactionKind string

const (
	KindIncome  TransactionKind = "income"
	KindExpense TransactionKind = "expense"
)

// TransactionStatus marks whether a transaction has settled.
// New transactions are always created as completed.
type TransactionStatus string

const (
	StatusCompleted TransactionStatus = "completed"
	StatusPending   TransactionStatus = "pending"
)

// AccountContext partitions transactions for filtering and display.
// It does not create separate ledgers.
type AccountContext string

const (
	ContextPersonal AccountContext = "personal"
	ContextBusiness AccountContext = "business"
)

// Category is the fixed set of transaction categories.
// Income and expense transactions share the same set; which subset fits
// which kind is a convention, not enforced.
type Category string

const (
	CategoryHousing        Category = "Housing"
	CategoryFood           Category = "Food"
	CategoryTransportation Category = "Transportation"
	CategoryUtilities      Category = "Utilities"
	CategoryEntertainment  Category = "Entertainment"
	CategoryHealth         Category = "Health"
	CategoryBusinessOps    Category = "Business Operations"
	CategoryMarketing      Category = "Marketing"
	CategorySalary         Category = "Salary"
	CategoryEquipment      Category = "Equipment"
	CategorySoftware       Category = "Software"
	CategoryIncome         Category = "Income"
	CategoryTransfer       Category = "Transfer"
)

// Categories lists every valid category.
var Categories = []Category{
	CategoryHousing,
	CategoryFood,
	CategoryTransportation,
	CategoryUtilities,
	CategoryEntertainment,
	CategoryHealth,
	CategoryBusinessOps,
	CategoryMarketing,
	CategorySalary,
	CategoryEquipment,
	CategorySoftware,
	CategoryIncome,
	CategoryTransfer,
}

// IsValidCategory reports whether c is a member of the fixed category set.
func IsValidCategory(c Category) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Transaction represents a single financial event owned by one user.
type Transaction struct {
	TransactionID  string            `json:"transactionID"` // Primary Key (UUID), assigned by the store on creation
	UserID         string            `json:"userID"`        // FK -> User.userID (Not Null)
	Amount         decimal.Decimal   `json:"amount"`        // Positive value; precise decimal type
	Kind           TransactionKind   `json:"kind"`
	Category       Category          `json:"category"`
	Description    string            `json:"description"` // Required, non-empty
	OccurredAt     time.Time         `json:"occurredAt"`  // Calendar date; time component carries no meaning
	AccountContext AccountContext    `json:"accountContext"`
	IsRecurring    bool              `json:"isRecurring"` // Informational only, does not drive repetition
	Status         TransactionStatus `json:"status"`
	AuditFields
}
