// Package invoice exposes the invoice listing, detail, and generation
// endpoints.
package invoice

import (
	"github.com/jainarula-tz/rideledger/internal/invoice"
)

const dateLayout = "2006-01-02"

// InvoiceSummary is the API response model for one invoice list row.
type InvoiceSummary struct {
	InvoiceNumber      string `json:"invoiceNumber" doc:"Invoice number"`
	AccountName        string `json:"accountName" doc:"Billed account name"`
	GeneratedAt        string `json:"generatedAt" doc:"Generation date, YYYY-MM-DD"`
	Subtotal           string `json:"subtotal" doc:"Decimal subtotal of line items"`
	OutstandingBalance string `json:"outstandingBalance" doc:"Decimal subtotal minus payments applied"`
	Status             string `json:"status" doc:"Draft, Sent, Paid, or Overdue"`
}

// InvoiceLineItem is the API response model for one billed ride.
type InvoiceLineItem struct {
	RideID      string `json:"rideId" doc:"Ride reference"`
	ServiceDate string `json:"serviceDate" doc:"Date of service, YYYY-MM-DD"`
	FareAmount  string `json:"fareAmount" doc:"Decimal fare"`
	Description string `json:"description" doc:"Line description"`
}

// InvoiceDetail is the API response model for a full invoice.
type InvoiceDetail struct {
	InvoiceNumber        string            `json:"invoiceNumber" doc:"Invoice number"`
	AccountID            string            `json:"accountId" doc:"Billed account identifier"`
	AccountName          string            `json:"accountName" doc:"Billed account name"`
	BillingPeriodStart   string            `json:"billingPeriodStart" doc:"Period start, YYYY-MM-DD"`
	BillingPeriodEnd     string            `json:"billingPeriodEnd" doc:"Period end, YYYY-MM-DD"`
	LineItems            []InvoiceLineItem `json:"lineItems" doc:"Billed rides in the period"`
	Subtotal             string            `json:"subtotal" doc:"Decimal subtotal of line items"`
	TotalPaymentsApplied string            `json:"totalPaymentsApplied" doc:"Decimal payments applied to the period"`
	OutstandingBalance   string            `json:"outstandingBalance" doc:"Decimal subtotal minus payments applied"`
	GeneratedAt          string            `json:"generatedAt" doc:"Generation date, YYYY-MM-DD"`
	Status               string            `json:"status" doc:"Draft, Sent, Paid, or Overdue"`
}

func toAPISummary(src invoice.ListItem) InvoiceSummary {
	return InvoiceSummary{
		InvoiceNumber:      src.InvoiceNumber,
		AccountName:        src.AccountName,
		GeneratedAt:        src.GeneratedAt.Format(dateLayout),
		Subtotal:           src.Subtotal.String(),
		OutstandingBalance: src.OutstandingBalance.String(),
		Status:             string(src.Status),
	}
}

func toAPIDetail(src *invoice.Invoice) InvoiceDetail {
	detail := InvoiceDetail{
		InvoiceNumber:        src.InvoiceNumber,
		AccountID:            src.AccountID,
		AccountName:          src.AccountName,
		BillingPeriodStart:   src.BillingPeriodStart.Format(dateLayout),
		BillingPeriodEnd:     src.BillingPeriodEnd.Format(dateLayout),
		LineItems:            make([]InvoiceLineItem, len(src.LineItems)),
		Subtotal:             src.Subtotal.String(),
		TotalPaymentsApplied: src.TotalPaymentsApplied.String(),
		OutstandingBalance:   src.OutstandingBalance().String(),
		GeneratedAt:          src.GeneratedAt.Format(dateLayout),
		Status:               string(src.Status),
	}
	for i, item := range src.LineItems {
		detail.LineItems[i] = InvoiceLineItem{
			RideID:      item.RideID,
			ServiceDate: item.ServiceDate.Format(dateLayout),
			FareAmount:  item.FareAmount.String(),
			Description: item.Description,
		}
	}
	return detail
}
