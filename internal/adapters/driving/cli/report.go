package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/reunite-labs/reunite/internal/core/domain"
)

var (
	reportDescription string
	reportItemName    string
	reportCategory    string
	reportLocation    string
	reportDate        string
	reportOwner       string
	reportKind        string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Manage lost and found reports",
}

var reportAddCmd = &cobra.Command{
	Use:   "add [title]",
	Short: "File a new report",
	Args:  cobra.ExactArgs(1),
	RunE:  runReportAdd,
}

var reportListCmd = &cobra.Command{
	Use:   "list",
	Short: "List open reports",
	RunE:  runReportList,
}

var reportResolveCmd = &cobra.Command{
	Use:   "resolve [id]",
	Short: "Mark a report as resolved",
	Args:  cobra.ExactArgs(1),
	RunE:  runReportResolve,
}

func init() {
	reportAddCmd.Flags().StringVarP(&reportKind, "kind", "k", "lost", "report kind: lost or found")
	reportAddCmd.Flags().StringVarP(&reportDescription, "description", "d", "", "free-text description")
	reportAddCmd.Flags().StringVar(&reportItemName, "item", "", "item name")
	reportAddCmd.Flags().StringVarP(&reportCategory, "category", "c", "", "item category")
	reportAddCmd.Flags().StringVarP(&reportLocation, "location", "l", "", "where the item was lost or found")
	reportAddCmd.Flags().StringVar(&reportDate, "date", "", "event date (YYYY-MM-DD, default today)")
	reportAddCmd.Flags().StringVarP(&reportOwner, "owner", "o", "", "owner reference")

	reportListCmd.Flags().StringVarP(&reportKind, "kind", "k", "lost", "report kind: lost or found")

	reportCmd.AddCommand(reportAddCmd, reportListCmd, reportResolveCmd)
	rootCmd.AddCommand(reportCmd)
}

func runReportAdd(cmd *cobra.Command, args []string) error {
	kind := domain.ReportKind(reportKind)
	if !kind.IsValid() {
		return fmt.Errorf("%w: kind must be lost or found", domain.ErrInvalidInput)
	}

	eventDate := time.Now()
	if reportDate != "" {
		parsed, err := time.Parse("2006-01-02", reportDate)
		if err != nil {
			return fmt.Errorf("%w: date must be YYYY-MM-DD", domain.ErrInvalidInput)
		}
		eventDate = parsed
	}

	report := &domain.Report{
		ID:          uuid.NewString(),
		Kind:        kind,
		Title:       args[0],
		Description: reportDescription,
		ItemName:    reportItemName,
		Category:    reportCategory,
		Location:    reportLocation,
		EventDate:   eventDate,
		OwnerID:     reportOwner,
		CreatedAt:   time.Now(),
	}
	if err := reportStore.SaveReport(cmd.Context(), report); err != nil {
		return fmt.Errorf("saving report: %w", err)
	}

	cmd.Printf("Filed %s report %s\n", kind, report.ID)
	return nil
}

func runReportList(cmd *cobra.Command, _ []string) error {
	kind := domain.ReportKind(reportKind)
	if !kind.IsValid() {
		return fmt.Errorf("%w: kind must be lost or found", domain.ErrInvalidInput)
	}

	reports, err := reportStore.ListOpenReports(cmd.Context(), kind, domain.ReportFilters{})
	if err != nil {
		return fmt.Errorf("listing reports: %w", err)
	}
	if len(reports) == 0 {
		cmd.Println("No open reports.")
		return nil
	}
	for _, r := range reports {
		cmd.Printf("%s  %-10s  %s (%s)\n", r.ID, r.Category, r.Title, r.EventDate.Format("2006-01-02"))
	}
	return nil
}

func runReportResolve(cmd *cobra.Command, args []string) error {
	err := reportStore.MarkResolved(cmd.Context(), args[0])
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("report %s not found", args[0])
	}
	if err != nil {
		return fmt.Errorf("resolving report: %w", err)
	}
	cmd.Printf("Resolved %s\n", args[0])
	return nil
}
