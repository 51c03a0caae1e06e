package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/iarchive/iarchive/internal/cmd/output"
	"github.com/iarchive/iarchive/pkg/catalog/query"
)

// listCmd represents the list command.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog collections",
	Long: `List displays the catalog collections: materials, users, categories,
access requests, and the activity log.

Materials support the same search, category, sort, and pagination
controls as the portal's browse page.`,
}

var listMaterialsCmd = &cobra.Command{
	Use:   "materials",
	Short: "List materials with search, filtering, and pagination",
	Example: `  # First page, newest first
  iarchive list materials

  # Search across titles, descriptions, and subjects
  iarchive list materials --search yearbook

  # Oldest documents, second page
  iarchive list materials --category Documents --sort oldest --page 2`,
	RunE: runListMaterials,
}

var listUsersCmd = &cobra.Command{
	Use:   "users",
	Short: "List registered users",
	RunE:  runListUsers,
}

var listCategoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List material categories",
	RunE:  runListCategories,
}

var listRequestsCmd = &cobra.Command{
	Use:   "requests",
	Short: "List access requests",
	RunE:  runListRequests,
}

var listActivityCmd = &cobra.Command{
	Use:   "activity",
	Short: "List the activity log",
	RunE:  runListActivity,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.AddCommand(listMaterialsCmd)
	listCmd.AddCommand(listUsersCmd)
	listCmd.AddCommand(listCategoriesCmd)
	listCmd.AddCommand(listRequestsCmd)
	listCmd.AddCommand(listActivityCmd)

	listMaterialsCmd.Flags().String("search", "", "Case-insensitive search over title, description, and subjects")
	listMaterialsCmd.Flags().String("category", query.CategoryAll, "Exact category name")
	listMaterialsCmd.Flags().String("sort", query.SortNewest, "Sort order: newest or oldest")
	listMaterialsCmd.Flags().Int("page", 1, "Page number (1-based)")
	listMaterialsCmd.Flags().Bool("all", false, "Show every match on one page")

	listRequestsCmd.Flags().String("status", "", "Filter by status: Pending, Approved, or Denied")
}

// formatter builds the output formatter selected by the global output flag.
func formatter() (output.Formatter, error) {
	format, err := output.ParseFormat(globalFlags.Output)
	if err != nil {
		return nil, err
	}
	return output.NewFormatter(format), nil
}

func runListMaterials(cmd *cobra.Command, _ []string) error {
	cat, err := openCatalog()
	if err != nil {
		return fmt.Errorf("opening catalog: %w", err)
	}

	search, _ := cmd.Flags().GetString("search")
	category, _ := cmd.Flags().GetString("category")
	sortOrder, _ := cmd.Flags().GetString("sort")
	page, _ := cmd.Flags().GetInt("page")
	all, _ := cmd.Flags().GetBool("all")

	params := query.Params{
		Search:   search,
		Category: category,
		Sort:     sortOrder,
		Page:     page,
	}
	if all {
		params.Page = 1
		params.PageSize = cat.Materials().Len()
	}

	result := query.Apply(cat.Materials().List(), params)

	f, err := formatter()
	if err != nil {
		return err
	}

	if globalFlags.Output != string(output.FormatTable) {
		return f.Format(os.Stdout, result)
	}

	rows := make([][]string, 0, len(result.Items))
	for _, m := range result.Items {
		rows = append(rows, []string{
			m.ID, m.Title, m.Category, m.Date,
			string(m.AccessLevel), strconv.Itoa(m.Views),
		})
	}
	if err := f.Format(os.Stdout, output.Data{
		Headers: []string{"ID", "Title", "Category", "Date", "Access", "Views"},
		Rows:    rows,
	}); err != nil {
		return err
	}

	if !globalFlags.Quiet {
		fmt.Printf("Page %d of %d (%d materials)\n", result.Page, result.TotalPages, result.TotalCount)
	}
	return nil
}

func runListUsers(_ *cobra.Command, _ []string) error {
	cat, err := openCatalog()
	if err != nil {
		return fmt.Errorf("opening catalog: %w", err)
	}

	f, err := formatter()
	if err != nil {
		return err
	}

	users := cat.Users().List()
	if globalFlags.Output != string(output.FormatTable) {
		return f.Format(os.Stdout, users)
	}

	rows := make([][]string, 0, len(users))
	for _, u := range users {
		rows = append(rows, []string{
			strconv.Itoa(u.ID), u.Name, u.Email, u.Role, string(u.Status),
		})
	}
	return f.Format(os.Stdout, output.Data{
		Headers: []string{"ID", "Name", "Email", "Role", "Status"},
		Rows:    rows,
	})
}

func runListCategories(_ *cobra.Command, _ []string) error {
	cat, err := openCatalog()
	if err != nil {
		return fmt.Errorf("opening catalog: %w", err)
	}

	f, err := formatter()
	if err != nil {
		return err
	}

	categories := cat.Categories().List()
	if globalFlags.Output != string(output.FormatTable) {
		return f.Format(os.Stdout, categories)
	}

	live := cat.Stats().MaterialsByCategory
	rows := make([][]string, 0, len(categories))
	for _, c := range categories {
		rows = append(rows, []string{
			strconv.Itoa(c.ID), c.Name, strconv.Itoa(live[c.Name]), c.LastUpdated,
		})
	}
	return f.Format(os.Stdout, output.Data{
		Headers: []string{"ID", "Name", "Materials", "Last Updated"},
		Rows:    rows,
	})
}

func runListRequests(cmd *cobra.Command, _ []string) error {
	cat, err := openCatalog()
	if err != nil {
		return fmt.Errorf("opening catalog: %w", err)
	}

	status, _ := cmd.Flags().GetString("status")

	requests := cat.Requests().List()
	if status != "" {
		kept := requests[:0:0]
		for _, r := range requests {
			if strings.EqualFold(string(r.Status), status) {
				kept = append(kept, r)
			}
		}
		requests = kept
	}

	f, err := formatter()
	if err != nil {
		return err
	}

	if globalFlags.Output != string(output.FormatTable) {
		return f.Format(os.Stdout, requests)
	}

	rows := make([][]string, 0, len(requests))
	for _, r := range requests {
		rows = append(rows, []string{
			strconv.Itoa(r.ID), r.User, r.Material, r.Date, string(r.Status),
		})
	}
	return f.Format(os.Stdout, output.Data{
		Headers: []string{"ID", "User", "Material", "Date", "Status"},
		Rows:    rows,
	})
}

func runListActivity(_ *cobra.Command, _ []string) error {
	cat, err := openCatalog()
	if err != nil {
		return fmt.Errorf("opening catalog: %w", err)
	}

	f, err := formatter()
	if err != nil {
		return err
	}

	entries := cat.Activity().List()
	if globalFlags.Output != string(output.FormatTable) {
		return f.Format(os.Stdout, entries)
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			strconv.Itoa(e.ID), e.Action, e.Item, e.User,
			string(e.Type), e.Time.Format("2006-01-02 15:04"),
		})
	}
	return f.Format(os.Stdout, output.Data{
		Headers: []string{"ID", "Action", "Item", "User", "Type", "Time"},
		Rows:    rows,
	})
}
