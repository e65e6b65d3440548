package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/court-fund/internal/adapter"
	"github.com/MKhiriev/court-fund/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
)

// statusFilters is the cycle walked by the filter key. The empty status
// lists every fee.
var statusFilters = []models.FeeStatus{"", models.FeeStatusPending, models.FeeStatusOverdue, models.FeeStatusCompleted}

var feeColumns = []table.Column{
	{Title: "ID", Width: 6},
	{Title: "Court", Width: 7},
	{Title: "Month", Width: 8},
	{Title: "Amount", Width: 14},
	{Title: "Status", Width: 10},
	{Title: "Due", Width: 10},
	{Title: "Paid", Width: 10},
}

// feesModel shows the caller's fund balance above a table of service fees.
type feesModel struct {
	ctx     context.Context
	adapter adapter.ServerAdapter
	copy    func(string) error

	table   table.Model
	spinner spinner.Model
	loading bool

	fund   models.Fund
	fees   []models.ServiceFee
	filter int

	status string
	errMsg string
}

func newFeesModel(ctx context.Context, serverAdapter adapter.ServerAdapter) *feesModel {
	t := table.New(
		table.WithColumns(feeColumns),
		table.WithFocused(true),
		table.WithHeight(12),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true)
	t.SetStyles(styles)

	s := spinner.New()
	s.Spinner = spinner.Dot

	return &feesModel{
		ctx:     ctx,
		adapter: serverAdapter,
		copy:    clipboard.WriteAll,
		table:   t,
		spinner: s,
	}
}

func (m *feesModel) Init() tea.Cmd {
	return m.reload()
}

func (m *feesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case dataLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.fund = msg.fund
		m.fees = msg.fees
		m.table.SetRows(feeRows(msg.fees))
		return m, nil

	case feePaidMsg:
		if msg.err != nil {
			m.loading = false
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.status = fmt.Sprintf("fee %d marked completed", msg.fee.ID)
		return m, m.reload()

	case copiedMsg:
		if msg.err != nil {
			m.errMsg = "copy token: " + msg.err.Error()
			return m, nil
		}
		m.status = "token copied to clipboard"
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.refresh):
			m.status = ""
			return m, m.reload()
		case key.Matches(msg, keys.filter):
			m.filter = (m.filter + 1) % len(statusFilters)
			m.status = ""
			return m, m.reload()
		case key.Matches(msg, keys.pay):
			return m, m.payCurrent()
		case key.Matches(msg, keys.copy):
			return m, m.cmdCopyToken()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *feesModel) View() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Fund balance: %s   (admin %d)\n", m.fund.Balance.StringFixed(2), m.fund.AdminID)
	fmt.Fprintf(&b, "Status filter: %s\n\n", m.filterLabel())

	switch {
	case m.loading:
		b.WriteString(m.spinner.View())
		b.WriteString(" loading...\n")
	case len(m.fees) == 0:
		b.WriteString(helpStyle.Render("no service fees found"))
		b.WriteString("\n")
	default:
		b.WriteString(m.table.View())
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage(
		"SERVICE FEES",
		strings.TrimRight(b.String(), "\n"),
		"↑/↓: move │ p: pay │ s: status filter │ r: refresh │ c: copy token │ q: quit",
	)
}

func (m *feesModel) filterLabel() string {
	if status := statusFilters[m.filter]; status != "" {
		return string(status)
	}
	return "all"
}

func (m *feesModel) reload() tea.Cmd {
	m.loading = true
	return tea.Batch(m.spinner.Tick, m.cmdLoad())
}

// payCurrent marks the selected fee completed. Fees that are already
// completed are left alone.
func (m *feesModel) payCurrent() tea.Cmd {
	if m.loading {
		return nil
	}

	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.fees) {
		return nil
	}

	fee := m.fees[idx]
	if fee.Status == models.FeeStatusCompleted {
		m.status = fmt.Sprintf("fee %d is already completed", fee.ID)
		return nil
	}

	m.status = ""
	m.loading = true
	return tea.Batch(m.spinner.Tick, m.cmdPay(fee.ID))
}

func (m *feesModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	serverAdapter := m.adapter
	filter := models.ServiceFeeFilter{Status: statusFilters[m.filter]}

	return func() tea.Msg {
		fund, err := serverAdapter.MyFund(ctx)
		if err != nil {
			return dataLoadedMsg{err: err}
		}

		fees, err := serverAdapter.ListFees(ctx, filter)
		if err != nil {
			return dataLoadedMsg{err: err}
		}
		return dataLoadedMsg{fund: fund, fees: fees}
	}
}

func (m *feesModel) cmdPay(feeID int64) tea.Cmd {
	ctx := m.ctx
	serverAdapter := m.adapter

	return func() tea.Msg {
		fee, err := serverAdapter.UpdateFeeStatus(ctx, models.UpdateFeeStatusRequest{
			ID:     feeID,
			Status: models.FeeStatusCompleted,
		})
		return feePaidMsg{fee: fee, err: err}
	}
}

func (m *feesModel) cmdCopyToken() tea.Cmd {
	token := m.adapter.Token()
	copyFn := m.copy

	return func() tea.Msg {
		return copiedMsg{err: copyFn(token)}
	}
}

func feeRows(fees []models.ServiceFee) []table.Row {
	rows := make([]table.Row, 0, len(fees))
	for _, fee := range fees {
		paid := "-"
		if fee.PaidDate != nil {
			paid = fee.PaidDate.Format(time.DateOnly)
		}

		rows = append(rows, table.Row{
			strconv.FormatInt(fee.ID, 10),
			strconv.FormatInt(fee.CourtID, 10),
			valueOrDash(fee.Month),
			fee.Amount.StringFixed(2),
			string(fee.Status),
			fee.DueDate.Format(time.DateOnly),
			paid,
		})
	}
	return rows
}
