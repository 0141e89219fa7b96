package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/samirkut/mntrevert/mount"
	"github.com/samirkut/mntrevert/revert"
)

// planCmd represents the plan command
var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Print the unmounts revert would perform, in order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSettings(viper.GetViper())
		if err != nil {
			return err
		}

		f, targets, err := buildPlan(s.Framework, mount.NewProcReader(s.ProcRoot))
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if isTerminal(out) {
			printPlanTable(out, f, targets)
			return nil
		}
		for _, target := range targets {
			fmt.Fprintln(out, target)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(planCmd)
}

func buildPlan(f revert.Framework, reader mount.Reader) (revert.Framework, []string, error) {
	records, err := reader.Read(mount.SelfNamespace)
	if err != nil {
		return f, nil, err
	}

	p := revert.DefaultProfile()
	if f == revert.Auto {
		if f, err = revert.Detect(records, p); err != nil {
			return f, nil, err
		}
	}

	targets, err := revert.Plan(f, records, p)
	return f, targets, err
}

func printPlanTable(w io.Writer, f revert.Framework, targets []string) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", "Target", "Framework"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetTablePadding("  ")
	table.SetNoWhiteSpace(true)

	for i, target := range targets {
		table.Append([]string{strconv.Itoa(i + 1), target, f.String()})
	}
	table.Render()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
