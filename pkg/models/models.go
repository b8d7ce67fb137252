package models

import "time"

// All entities except PendingOrder are backend-owned records; the gateway holds
// transient copies decoded from upstream responses and never persists them.

// User represents a system user (admin, branch manager or customer)
type User struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Role     Role   `json:"role"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Password string `json:"password,omitempty"` // write-only, never echoed back
}

// Branch represents a bakery branch
type Branch struct {
	ID         int    `json:"id"`
	BranchName string `json:"branchName"`
	Location   string `json:"location"`
	Manager    *User  `json:"manager,omitempty"`
	ManagerID  int    `json:"managerId,omitempty"`
}

// Category represents a product category
type Category struct {
	ID           int    `json:"id"`
	Code         string `json:"code"`
	Description  string `json:"description"`
	CategoryName string `json:"categoryName"`
}

// Product represents a sellable product with derived stock status
type Product struct {
	ID            int         `json:"id"`
	Name          string      `json:"name"`
	CategoryID    int         `json:"categoryId,omitempty"`
	Category      *Category   `json:"category,omitempty"`
	Quantity      int         `json:"quantity"`
	PurchasePrice float64     `json:"purchaseprice"`
	SalePrice     float64     `json:"saleprice"`
	Status        StockStatus `json:"status"`
	Image         string      `json:"image,omitempty"`
	ManagerID     int         `json:"managerId,omitempty"`
}

// Bread represents a bread type sold by the bakery
type Bread struct {
	ID    int       `json:"id"`
	Name  string    `json:"name"`
	Size  BreadSize `json:"size"`
	Price float64   `json:"price"`
}

// BakingRecord represents a batch of bread baked on a date
type BakingRecord struct {
	ID            int    `json:"id"`
	BreadID       int    `json:"breadId"`
	Bread         *Bread `json:"bread,omitempty"`
	QuantityBaked int    `json:"quantityBaked"`
	Date          string `json:"date"`
}

// SaleRecord represents a bread sale; TotalAmount is computed server-side
type SaleRecord struct {
	ID            int           `json:"id"`
	BreadID       int           `json:"breadId"`
	Bread         *Bread        `json:"bread,omitempty"`
	QuantitySold  int           `json:"quantitySold"`
	SellingPrice  float64       `json:"sellingPrice"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	Date          string        `json:"date"`
	TotalAmount   float64       `json:"totalAmount"`
}

// ExpenseRecord represents an operating expense
type ExpenseRecord struct {
	ID       int             `json:"id"`
	Title    string          `json:"title"`
	Amount   float64         `json:"amount"`
	Category ExpenseCategory `json:"category"`
	Note     string          `json:"note,omitempty"`
	Date     string          `json:"date"`
}

// FlourPurchase represents a flour stock purchase, possibly bought on credit
type FlourPurchase struct {
	ID           int                 `json:"id"`
	Date         string              `json:"date"`
	QuantityKg   float64             `json:"quantityKg"`
	TotalPrice   float64             `json:"totalPrice"`
	PaymentType  FlourPaymentType    `json:"paymentType"`
	SupplierName string              `json:"supplierName"`
	Status       FlourPurchaseStatus `json:"status"`
	PaidDate     string              `json:"paidDate,omitempty"`
}

// Order represents a customer order for a product
type Order struct {
	ID          int         `json:"id"`
	ProductID   int         `json:"productId"`
	Product     *Product    `json:"product,omitempty"`
	UserID      int         `json:"userId"`
	User        *User       `json:"user,omitempty"`
	Quantity    int         `json:"quantity"`
	TotalPrice  float64     `json:"totalPrice"`
	Status      OrderStatus `json:"status"`
	DateOrdered string      `json:"dateOrdered"`
}

// Report represents a server-generated sales/profit summary over a date range
type Report struct {
	ID           int                      `json:"id"`
	StartDate    string                   `json:"startDate"`
	EndDate      string                   `json:"endDate"`
	TotalSales   float64                  `json:"totalSales"`
	ProfitOrLoss float64                  `json:"profitOrLoss"`
	ReportData   []map[string]interface{} `json:"reportData,omitempty"`
	SentToAdmin  bool                     `json:"sentToAdmin"`
}

// PendingOrder is the only gateway-owned persisted record. It pins the price
// and quantity of a checkout before the customer is sent to the payment
// provider, so the finalize step never trusts anything coming back through the
// browser except the tx_ref itself.
type PendingOrder struct {
	ID        uint              `json:"id" gorm:"primaryKey"`
	TxRef     string            `json:"txRef" gorm:"uniqueIndex;size:64;not null"`
	UserID    int               `json:"userId" gorm:"not null"`
	ProductID int               `json:"productId" gorm:"not null"`
	Quantity  int               `json:"quantity" gorm:"not null"`
	UnitPrice float64           `json:"unitPrice" gorm:"not null"`
	Total     float64           `json:"total" gorm:"not null"`
	State     PendingOrderState `json:"state" gorm:"size:16;not null;default:INITIATED"`
	OrderID   int               `json:"orderId,omitempty"` // upstream order id once finalized
	FailNote  string            `json:"failNote,omitempty"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}
