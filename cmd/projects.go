package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // required by cobra CLI pattern
var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "List the configured projects and their checkout paths",
	Long: `List every project from the configuration file together with the local
checkout path commits are read from, in the order they appear in the
generated changelog.`,
	Args: cobra.NoArgs,
	RunE: runProjects,
}

//nolint:gochecknoinits // required by cobra CLI pattern
func init() {
	rootCmd.AddCommand(projectsCmd)
}

func runProjects(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	projects := cfg.ProjectPaths()

	// Calculate column widths
	nameW := len("Project")
	for _, p := range projects {
		if len(p.Name) > nameW {
			nameW = len(p.Name)
		}
	}

	fmt.Printf("%-*s  %s\n", nameW, "Project", "Path")
	for _, p := range projects {
		fmt.Printf("%-*s  %s\n", nameW, p.Name, p.Path)
	}

	fmt.Println()
	fmt.Printf("Total: %d projects\n", len(projects))
	return nil
}
