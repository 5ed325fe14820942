package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"shellchecker/internal/diag"
	"shellchecker/internal/diagfmt"
	"shellchecker/internal/i18n"
)

func newRulesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List every rule with its severity and category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			language, err := cmd.Flags().GetString("language")
			if err != nil {
				return fmt.Errorf("failed to get language flag: %w", err)
			}
			loc, err := i18n.ParseLocale(language)
			if err != nil {
				return err
			}
			return writeRules(cmd.OutOrStdout(), loc)
		},
	}
	cmd.Flags().StringP("language", "l", "en", "output language (en|ja)")
	return cmd
}

func writeRules(out io.Writer, loc i18n.Locale) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
		i18n.Message(loc, i18n.MsgCodeColumn),
		i18n.Message(loc, i18n.MsgSeverityColumn),
		i18n.Message(loc, i18n.MsgCategoryColumn),
		i18n.Message(loc, i18n.MsgMessageColumn),
	)
	for _, code := range diag.Codes() {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			code.ID(),
			i18n.SeverityLabel(loc, code.Severity()),
			i18n.CategoryLabel(loc, code.Category()),
			diagfmt.RuleDescription(loc, code),
		)
	}
	return tw.Flush()
}
