package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eisenwave/cowel-sub001/internal/bib"
	"github.com/eisenwave/cowel-sub001/internal/config"
	"github.com/eisenwave/cowel-sub001/internal/engine"
)

var bibCmd = &cobra.Command{
	Use:   "bib",
	Short: "Manage the bibliography store backing make_bib",
}

var (
	bibTitle     string
	bibDate      string
	bibPublisher string
	bibLink      string
	bibLongLink  string
	bibIssueLink string
	bibAuthor    string
)

var bibAddCmd = &cobra.Command{
	Use:   "add <id>",
	Short: "Add a citation (an existing ID is an error)",
	Args:  cobra.ExactArgs(1),
	RunE:  runBibAdd,
}

var bibListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every stored citation",
	Args:  cobra.NoArgs,
	RunE:  runBibList,
}

var bibRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a citation",
	Args:  cobra.ExactArgs(1),
	RunE:  runBibRemove,
}

func init() {
	bibAddCmd.Flags().StringVar(&bibTitle, "title", "", "citation title (required)")
	bibAddCmd.Flags().StringVar(&bibDate, "date", "", "publication date")
	bibAddCmd.Flags().StringVar(&bibPublisher, "publisher", "", "publisher")
	bibAddCmd.Flags().StringVar(&bibLink, "link", "", "short link")
	bibAddCmd.Flags().StringVar(&bibLongLink, "long-link", "", "full link")
	bibAddCmd.Flags().StringVar(&bibIssueLink, "issue-link", "", "link to an errata/issue")
	bibAddCmd.Flags().StringVar(&bibAuthor, "author", "", "author")
	bibAddCmd.MarkFlagRequired("title")

	bibCmd.AddCommand(bibAddCmd, bibListCmd, bibRemoveCmd)
}

func openBibStore() (*bib.Store, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return bib.Open(cfg.Bibliography.DatabasePath)
}

func runBibAdd(cmd *cobra.Command, args []string) error {
	store, err := openBibStore()
	if err != nil {
		return err
	}
	defer store.Close()

	info := engine.DocumentInfo{
		ID:        args[0],
		Title:     bibTitle,
		Date:      bibDate,
		Publisher: bibPublisher,
		Link:      bibLink,
		LongLink:  bibLongLink,
		IssueLink: bibIssueLink,
		Author:    bibAuthor,
	}
	if !store.Insert(info) {
		return fmt.Errorf("a citation with ID %q already exists", info.ID)
	}
	fmt.Printf("added %s\n", info.ID)
	return nil
}

func runBibList(cmd *cobra.Command, args []string) error {
	store, err := openBibStore()
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.List()
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("no citations stored")
		return nil
	}
	for _, e := range entries {
		fmt.Printf("%s\t%s\t%s\n", e.ID, e.Title, e.Author)
	}
	return nil
}

func runBibRemove(cmd *cobra.Command, args []string) error {
	store, err := openBibStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if !store.Delete(args[0]) {
		return fmt.Errorf("no citation with ID %q", args[0])
	}
	fmt.Printf("removed %s\n", args[0])
	return nil
}
