package membership

import (
	"bufio"
	"io"
	"strconv"
	"strings"
	"time"

	"gymdesk/internal/domain/client"
)

// CSVHeader is the column order of client exports.
var CSVHeader = []string{
	"Name", "Email", "Phone", "Age", "Gender", "Plan Type", "Amount", "Start Date", "End Date", "Status",
}

const csvDateLayout = "2006-01-02"

// WriteClientsCSV writes one row per client. Text and date columns are always
// double-quoted; age and amount are bare numbers. Status is resolved at now.
func WriteClientsCSV(w io.Writer, clients []*client.Client, now time.Time) error {
	bw := bufio.NewWriter(w)
	writeHeader(bw)
	for _, s := range Annotate(clients, now) {
		writeClientRow(bw, s, "")
	}
	return bw.Flush()
}

// ReportOptions tunes WriteReportCSV.
type ReportOptions struct {
	GeneratedAt    time.Time
	CurrencySymbol string
}

// WriteReportCSV writes the management report: a summary block followed by
// the client rows. stats should have been computed for the same snapshot.
func WriteReportCSV(w io.Writer, stats DashboardStats, clients []*client.Client, now time.Time, opts ReportOptions) error {
	bw := bufio.NewWriter(w)

	bw.WriteString("Gym Management Report\n")
	bw.WriteString("Generated on: " + opts.GeneratedAt.Format(time.DateTime) + "\n\n")

	bw.WriteString("SUMMARY STATISTICS\n")
	bw.WriteString("Total Clients," + strconv.Itoa(stats.TotalClients) + "\n")
	bw.WriteString("Active Clients," + strconv.Itoa(stats.ActiveClients) + "\n")
	bw.WriteString("Expired Clients," + strconv.Itoa(stats.ExpiredClients) + "\n")
	bw.WriteString("Monthly Revenue," + opts.CurrencySymbol + stats.MonthlyRevenue.String() + "\n\n")

	bw.WriteString("CLIENT DETAILS\n")
	writeHeader(bw)
	for _, s := range Annotate(clients, now) {
		writeClientRow(bw, s, opts.CurrencySymbol)
	}
	return bw.Flush()
}

func writeHeader(bw *bufio.Writer) {
	bw.WriteString(strings.Join(CSVHeader, ",") + "\n")
}

func writeClientRow(bw *bufio.Writer, s Snapshot, currency string) {
	c := s.Client
	fields := []string{
		quote(c.FullName()),
		quote(c.Email()),
		quote(c.Phone()),
		strconv.Itoa(c.Age()),
		quote(c.Gender().String()),
		quote(c.PlanType().String()),
		currency + c.PlanAmount().String(),
		quote(c.StartDate().Format(csvDateLayout)),
		quote(c.EndDate().Format(csvDateLayout)),
		quote(s.Status.String()),
	}
	bw.WriteString(strings.Join(fields, ",") + "\n")
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
