package sitecfg

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sitecfg/sitecfg/internal/config"
	"github.com/sitecfg/sitecfg/internal/urls"
)

var urlTitle bool

func init() {
	cmd := &cobra.Command{
		Use:   "url page|article SLUG",
		Short: "Print the link and output file for a page or article",
		Example: `
sitecfg url article first-post --env publish
sitecfg url page --title "About Me"`,
		Args: cobra.MinimumNArgs(2),
		RunE: runURL,
	}
	cmd.Flags().BoolVarP(&urlTitle, "title", "t", false, "treat the remaining arguments as a title and slugify it")
	rootCmd.AddCommand(cmd)
}

func runURL(cmd *cobra.Command, args []string) error {
	kind, err := urls.ParseKind(args[0])
	if err != nil {
		return err
	}
	slug := strings.Join(args[1:], " ")
	if urlTitle {
		slug = urls.Slugify(slug)
	}

	_, s, _, err := resolveSelected()
	if err != nil {
		return err
	}
	r := urls.NewResolver(s)
	link, err := r.URL(kind, slug)
	if err != nil {
		return err
	}
	saveAs, err := r.SaveAs(kind, slug)
	if err != nil {
		return err
	}
	outDir, _ := s.String(config.OutputPath)

	w := cmd.OutOrStdout()
	fmt.Fprintln(w, "slug:   ", slug)
	fmt.Fprintln(w, "url:    ", link)
	fmt.Fprintln(w, "save_as:", filepath.ToSlash(filepath.Join(outDir, saveAs)))
	if feed := urls.FeedURL(s); feed != "" {
		fmt.Fprintln(w, "feed:   ", feed)
	}
	return nil
}
