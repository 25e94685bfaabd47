package commands

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/globobank/frauddesk/internal/models"
)

func table(header []string, rows [][]string) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(header, "\t"))
	for _, row := range rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	w.Flush()
}

func pageFooter(page *models.Pagination) {
	if page == nil {
		return
	}
	fmt.Printf("\npage %d/%d (%d total)\n", page.Page, page.TotalPages, page.Total)
}

func money(amount float64, currency string) string {
	return fmt.Sprintf("%.2f %s", amount, currency)
}

func when(t time.Time) string {
	return t.Local().Format("2006-01-02 15:04")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func printCase(fc *models.FraudCase) {
	fmt.Printf("Case     %s (%s)\n", fc.CaseNumber, fc.ID)
	fmt.Printf("Status   %s  priority %s  risk %s\n", fc.Status, fc.Priority, fc.RiskLevel)
	fmt.Printf("Amount   %s\n", money(fc.TotalAmount, fc.Currency))
	fmt.Printf("Customer %s\n", fc.CustomerID)
	fmt.Printf("Assigned %s\n", orDash(fc.AssignedTo))
	fmt.Printf("Reported %s by %s\n", when(fc.ReportedAt), fc.ReportedBy)
	if len(fc.Tags) > 0 {
		fmt.Printf("Tags     %s\n", strings.Join(fc.Tags, ", "))
	}
	fmt.Printf("\n%s\n", fc.Description)
	if fc.Resolution != nil {
		fmt.Printf("\nResolved %s as %s by %s\n", when(fc.Resolution.ResolvedAt), fc.Resolution.Outcome, fc.Resolution.ResolvedBy)
		fmt.Printf("Reason   %s\n", fc.Resolution.Reason)
	}
}

func caseRows(cases []models.FraudCase) [][]string {
	rows := make([][]string, 0, len(cases))
	for _, fc := range cases {
		rows = append(rows, []string{
			fc.ID, fc.CaseNumber, string(fc.Status), string(fc.Priority),
			money(fc.TotalAmount, fc.Currency), orDash(fc.AssignedTo),
		})
	}
	return rows
}

func printCustomer(c *models.Customer) {
	fmt.Printf("Customer %s (%s)\n", c.CustomerID, c.ID)
	fmt.Printf("Name     %s %s\n", c.FirstName, c.LastName)
	fmt.Printf("Email    %s\n", c.Email)
	fmt.Printf("Phone    %s\n", orDash(c.Phone))
	fmt.Printf("Accounts %s\n", strings.Join(c.AccountNumbers, ", "))
	fmt.Printf("Risk     %d (high risk: %t)  KYC %s\n", c.RiskScore, c.IsHighRisk, c.KYCStatus)
}

func customerRows(customers []models.Customer) [][]string {
	rows := make([][]string, 0, len(customers))
	for _, c := range customers {
		rows = append(rows, []string{
			c.ID, c.CustomerID, c.FirstName + " " + c.LastName, c.Email,
			fmt.Sprintf("%d", c.RiskScore), string(c.KYCStatus),
		})
	}
	return rows
}

func printTransaction(tx *models.Transaction) {
	fmt.Printf("Transaction %s (%s)\n", tx.TransactionID, tx.ID)
	fmt.Printf("Customer    %s  account %s\n", tx.CustomerID, tx.AccountNumber)
	fmt.Printf("Amount      %s  type %s\n", money(tx.Amount, tx.Currency), tx.Type)
	fmt.Printf("Status      %s  risk %d (%s)\n", tx.Status, tx.RiskScore, tx.RiskLevel)
	fmt.Printf("When        %s\n", when(tx.Timestamp))
	if tx.MerchantName != "" {
		fmt.Printf("Merchant    %s\n", tx.MerchantName)
	}
	if len(tx.FlaggedReasons) > 0 {
		fmt.Printf("Flags       %s\n", strings.Join(tx.FlaggedReasons, "; "))
	}
	fmt.Printf("\n%s\n", tx.Description)
}

func transactionRows(txns []models.Transaction) [][]string {
	rows := make([][]string, 0, len(txns))
	for _, tx := range txns {
		rows = append(rows, []string{
			tx.ID, tx.TransactionID, tx.CustomerID,
			money(tx.Amount, tx.Currency), string(tx.Status),
			fmt.Sprintf("%d", tx.RiskScore),
		})
	}
	return rows
}
