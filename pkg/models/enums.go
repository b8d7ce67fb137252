package models

// Role enum
type Role string

const (
	RoleAdmin    Role = "Admin"
	RoleManager  Role = "manager"
	RoleCustomer Role = "user"
)

// StockStatus enum - derived three-state label from current quantity
type StockStatus string

const (
	StockAvailable StockStatus = "Available"
	StockLow       StockStatus = "Low Stock"
	StockOut       StockStatus = "Out Of Stock"
)

// BreadSize enum - fixed size strings used by the bakery
type BreadSize string

const (
	BreadSizeBal10 BreadSize = "bal 10"
	BreadSizeBal15 BreadSize = "bal 15"
	BreadSizeBal20 BreadSize = "bal 20"
	BreadSizeBal25 BreadSize = "bal 25"
)

// PaymentMethod enum
type PaymentMethod string

const (
	PaymentMethodCash     PaymentMethod = "cash"
	PaymentMethodTransfer PaymentMethod = "transfer"
	PaymentMethodCredit   PaymentMethod = "credit"
)

// ExpenseCategory enum
type ExpenseCategory string

const (
	ExpenseCategoryFlour     ExpenseCategory = "flour"
	ExpenseCategoryLabor     ExpenseCategory = "labor"
	ExpenseCategoryUtilities ExpenseCategory = "utilities"
	ExpenseCategoryRent      ExpenseCategory = "rent"
	ExpenseCategoryOther     ExpenseCategory = "other"
)

// FlourPaymentType enum
type FlourPaymentType string

const (
	FlourPaymentCash   FlourPaymentType = "cash"
	FlourPaymentCredit FlourPaymentType = "credit"
)

// FlourPurchaseStatus enum
type FlourPurchaseStatus string

const (
	FlourPurchasePending FlourPurchaseStatus = "pending"
	FlourPurchasePaid    FlourPurchaseStatus = "paid"
)

// OrderStatus enum
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusConfirmed OrderStatus = "Confirmed"
	OrderStatusRejected  OrderStatus = "Rejected"
)

// PendingOrderState enum - lifecycle of the gateway-held payment saga record
type PendingOrderState string

const (
	PendingOrderInitiated PendingOrderState = "INITIATED"
	PendingOrderFinalized PendingOrderState = "FINALIZED"
	PendingOrderFailed    PendingOrderState = "FAILED"
)
