package sitecfg

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/sitecfg/sitecfg/internal/config"
	"github.com/sitecfg/sitecfg/internal/report"
)

var gendocsPath string

// gendocs regenerates the key vocabulary table in README.md between the
// markers <!-- BEGIN:KEYS --> and <!-- END:KEYS -->.
func init() {
	cmd := &cobra.Command{
		Use:    "gendocs",
		Short:  "Regenerate the README key table",
		Hidden: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			b, err := os.ReadFile(gendocsPath)
			if err != nil {
				return err
			}
			out, err := replaceKeysSection(b)
			if err != nil {
				return oops.In("cli").With("path", gendocsPath).Wrap(err)
			}
			if err := os.WriteFile(gendocsPath, out, 0644); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Updated", gendocsPath)
			return nil
		},
	}
	cmd.Flags().StringVar(&gendocsPath, "file", "README.md", "markdown file to update")
	rootCmd.AddCommand(cmd)
}

func replaceKeysSection(b []byte) ([]byte, error) {
	start := []byte("<!-- BEGIN:KEYS -->")
	end := []byte("<!-- END:KEYS -->")
	i := bytes.Index(b, start)
	j := bytes.Index(b, end)
	if i < 0 || j < 0 || j <= i {
		return nil, fmt.Errorf("markers not found")
	}

	var out bytes.Buffer
	out.Write(b[:i+len(start)])
	out.WriteString("\n")
	out.WriteString(keysTable())
	out.Write(b[j:])
	return out.Bytes(), nil
}

func keysTable() string {
	var sb strings.Builder
	sb.WriteString("| Key | Generator setting | Type | Required | Meaning |\n")
	sb.WriteString("|---|---|---|---|---|\n")
	for _, s := range config.Vocabulary() {
		req := ""
		if s.Required {
			req = "yes"
		}
		fmt.Fprintf(&sb, "| `%s` | `%s` | %s | %s | %s |\n", s.Key, report.SettingName(s.Key), s.Kind, req, s.Doc)
	}
	return sb.String()
}
