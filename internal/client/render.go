package client

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/court-fund/models"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	helpStyle   = lipgloss.NewStyle().Faint(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}

func renderFund(fund models.Fund) string {
	t := newTable("ID", "Admin", "Balance", "Updated").
		Row(
			strconv.FormatInt(fund.ID, 10),
			strconv.FormatInt(fund.AdminID, 10),
			fund.Balance.StringFixed(2),
			formatTime(fund.UpdatedAt),
		)

	return titleStyle.Render("Fund") + "\n" + t.String()
}

func renderFees(fees []models.ServiceFee) string {
	if len(fees) == 0 {
		return helpStyle.Render("no service fees found")
	}

	t := newTable("ID", "Court", "Month", "Amount", "Status", "Due", "Paid")
	for _, fee := range fees {
		paid := "-"
		if fee.PaidDate != nil {
			paid = fee.PaidDate.Format(time.DateOnly)
		}

		t.Row(
			strconv.FormatInt(fee.ID, 10),
			strconv.FormatInt(fee.CourtID, 10),
			valueOrDash(fee.Month),
			fee.Amount.StringFixed(2),
			string(fee.Status),
			fee.DueDate.Format(time.DateOnly),
			paid,
		)
	}

	return titleStyle.Render(fmt.Sprintf("Service fees (%d)", len(fees))) + "\n" + t.String()
}

func renderBuildInfo(info models.AppBuildInfo) string {
	t := newTable("Field", "Value").
		Row("Version", valueOrNA(info.BuildVersion())).
		Row("Date", valueOrNA(info.BuildDate())).
		Row("Commit", valueOrNA(info.BuildCommit()))

	return titleStyle.Render("court-fund admin client") + "\n" + t.String()
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format(time.DateTime)
}

func valueOrDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
