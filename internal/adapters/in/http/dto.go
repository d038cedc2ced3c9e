package http

import (
	"time"

	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/ports"
)

type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type ServiceForm struct {
	StaffID  int64   `json:"staffId"`
	WeightKg float64 `json:"weightKg"`
	Quantity int     `json:"quantity"`
	FastDry  bool    `json:"fastDry"`
	IronOnly bool    `json:"ironOnly"`
	Fold     bool    `json:"fold"`
}

type NewOrder struct {
	ServiceForm
	CustomerID int64 `json:"customerId"`
}

type StaffAction struct {
	StaffID int64 `json:"staffId"`
}

type Payment struct {
	StaffID       int64  `json:"staffId"`
	PaymentMethod string `json:"paymentMethod,omitempty"`
}

type OrderRef struct {
	ID   int64  `json:"id"`
	Code string `json:"code"`
}

type OrderSummary struct {
	ID           int64      `json:"id"`
	Code         string     `json:"code"`
	CustomerName string     `json:"customerName"`
	Status       string     `json:"status"`
	Total        string     `json:"total"`
	CreatedAt    time.Time  `json:"createdAt"`
	DeliveredAt  *time.Time `json:"deliveredAt,omitempty"`
}

type ServiceLine struct {
	Name          string `json:"name"`
	WeightKg      string `json:"weightKg"`
	Quantity      int    `json:"quantity"`
	FastDry       bool   `json:"fastDry"`
	IronOnly      bool   `json:"ironOnly"`
	Fold          bool   `json:"fold"`
	WashPrice     string `json:"washPrice"`
	FastDryPrice  string `json:"fastDryPrice"`
	IronOnlyPrice string `json:"ironOnlyPrice"`
	FoldPrice     string `json:"foldPrice"`
	Total         string `json:"total"`
}

type Transaction struct {
	ID            string    `json:"id"`
	Amount        string    `json:"amount"`
	PaymentMethod string    `json:"paymentMethod"`
	StaffID       int64     `json:"staffId"`
	PaidAt        time.Time `json:"paidAt"`
}

type OrderDetails struct {
	ID           int64         `json:"id"`
	Code         string        `json:"code"`
	CustomerID   int64         `json:"customerId"`
	CustomerName string        `json:"customerName"`
	StaffID      int64         `json:"staffId"`
	StaffName    string        `json:"staffName"`
	Status       string        `json:"status"`
	CreatedAt    time.Time     `json:"createdAt"`
	PickedUpAt   *time.Time    `json:"pickedUpAt,omitempty"`
	DeliveredAt  *time.Time    `json:"deliveredAt,omitempty"`
	Service      ServiceLine   `json:"service"`
	Total        string        `json:"total"`
	Transactions []Transaction `json:"transactions"`
}

type Statistics struct {
	GeneratedAt       time.Time `json:"generatedAt"`
	CompletedToday    int       `json:"completedToday"`
	PendingIssues     int       `json:"pendingIssues"`
	PendingDelivery   int       `json:"pendingDelivery"`
	PendingPickup     int       `json:"pendingPickup"`
	TotalOrders       int       `json:"totalOrders"`
	CompletedOrders   int       `json:"completedOrders"`
	CancelledOrders   int       `json:"cancelledOrders"`
	Revenue           string    `json:"revenue"`
	AverageOrderValue string    `json:"averageOrderValue"`
}

// AnnualReport is the yearly summary. BusiestStaff is "N/A" for a year
// without orders.
type AnnualReport struct {
	Year               int     `json:"year"`
	TotalOrders        int     `json:"totalOrders"`
	Completed          int     `json:"completed"`
	Pending            int     `json:"pending"`
	Processing         int     `json:"processing"`
	Cancelled          int     `json:"cancelled"`
	CompletionRate     float64 `json:"completionRate"`
	Revenue            string  `json:"revenue"`
	AverageOrderValue  string  `json:"averageOrderValue"`
	WeightProcessedKg  float64 `json:"weightProcessedKg"`
	BusiestStaff       string  `json:"busiestStaff"`
	BusiestStaffID     *int64  `json:"busiestStaffId,omitempty"`
	BusiestStaffOrders int     `json:"busiestStaffOrders"`
	NewCustomers       int     `json:"newCustomers"`
}

type Activity struct {
	ID          string    `json:"id"`
	StaffID     int64     `json:"staffId"`
	StaffName   string    `json:"staffName"`
	Type        string    `json:"type"`
	OrderID     *int64    `json:"orderId,omitempty"`
	OrderCode   string    `json:"orderCode,omitempty"`
	CustomerID  *int64    `json:"customerId,omitempty"`
	Description string    `json:"description"`
	At          time.Time `json:"at"`
}

func toOrderSummary(s queries.OrderSummary) OrderSummary {
	return OrderSummary{
		ID:           int64(s.ID),
		Code:         s.Code,
		CustomerName: s.CustomerName,
		Status:       s.Status.String(),
		Total:        s.Total.String(),
		CreatedAt:    s.CreatedAt,
		DeliveredAt:  s.DeliveredAt,
	}
}

func toOrderDetails(r *queries.GetOrderQueryResponse) OrderDetails {
	txs := make([]Transaction, 0, len(r.Transactions))
	for _, tx := range r.Transactions {
		txs = append(txs, Transaction{
			ID:            tx.ID.String(),
			Amount:        tx.Amount.String(),
			PaymentMethod: tx.Method.String(),
			StaffID:       int64(tx.StaffID),
			PaidAt:        tx.PaidAt,
		})
	}

	b := r.Service.Breakdown
	return OrderDetails{
		ID:           int64(r.ID),
		Code:         r.Code,
		CustomerID:   int64(r.CustomerID),
		CustomerName: r.CustomerName,
		StaffID:      int64(r.StaffID),
		StaffName:    r.StaffName,
		Status:       r.Status.String(),
		CreatedAt:    r.CreatedAt,
		PickedUpAt:   r.PickedUpAt,
		DeliveredAt:  r.DeliveredAt,
		Service: ServiceLine{
			Name:          r.Service.Name,
			WeightKg:      r.Service.Weight.String(),
			Quantity:      r.Service.Quantity,
			FastDry:       r.Service.AddOns.FastDry,
			IronOnly:      r.Service.AddOns.IronOnly,
			Fold:          r.Service.AddOns.Fold,
			WashPrice:     b.Wash.String(),
			FastDryPrice:  b.FastDry.String(),
			IronOnlyPrice: b.IronOnly.String(),
			FoldPrice:     b.Fold.String(),
			Total:         r.Service.Total.String(),
		},
		Total:        r.Total.String(),
		Transactions: txs,
	}
}

func toStatistics(s ports.OrderStatistics) Statistics {
	return Statistics{
		GeneratedAt:       s.GeneratedAt,
		CompletedToday:    s.CompletedToday,
		PendingIssues:     s.PendingIssues,
		PendingDelivery:   s.PendingDelivery,
		PendingPickup:     s.PendingPickup,
		TotalOrders:       s.TotalOrders,
		CompletedOrders:   s.CompletedOrders,
		CancelledOrders:   s.CancelledOrders,
		Revenue:           s.Revenue.String(),
		AverageOrderValue: s.AverageOrderValue.String(),
	}
}

func toAnnualReport(s queries.AnnualStatistics) AnnualReport {
	resp := AnnualReport{
		Year:              s.Year,
		TotalOrders:       s.TotalOrders,
		Completed:         s.Completed,
		Pending:           s.Pending,
		Processing:        s.Processing,
		Cancelled:         s.Cancelled,
		CompletionRate:    s.CompletionRate,
		Revenue:           s.Revenue.String(),
		AverageOrderValue: s.AverageOrderValue.String(),
		WeightProcessedKg: float64(s.WeightProcessedHundredths) / 100,
		BusiestStaff:      "N/A",
		NewCustomers:      s.NewCustomers,
	}
	if s.BusiestStaff != nil {
		id := int64(s.BusiestStaff.StaffID)
		resp.BusiestStaff = s.BusiestStaff.Name
		resp.BusiestStaffID = &id
		resp.BusiestStaffOrders = s.BusiestStaff.Orders
	}
	return resp
}

func toActivity(a queries.ActivityResponse) Activity {
	resp := Activity{
		ID:          a.ID.String(),
		StaffID:     int64(a.StaffID),
		StaffName:   a.StaffName,
		Type:        string(a.Type),
		Description: a.Description,
		At:          a.At,
	}
	if a.OrderID != nil {
		id := int64(*a.OrderID)
		resp.OrderID = &id
		resp.OrderCode = a.OrderID.Code()
	}
	if a.CustomerID != nil {
		id := int64(*a.CustomerID)
		resp.CustomerID = &id
	}
	return resp
}
