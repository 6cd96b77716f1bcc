package main

import (
	"github.com/spf13/cobra"

	"yts/internal/language"
)

func newLanguagesCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:         "languages",
		Short:       "List the language codes accepted by --language",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			codes := language.Supported()
			if asJSON {
				return writeLanguagesJSON(cmd, codes)
			}
			rows := make([][]string, 0, len(codes))
			for _, code := range codes {
				mark := ""
				if code == language.Default {
					mark = "yes"
				}
				rows = append(rows, []string{string(code), code.DisplayName(), mark})
			}
			printTable(cmd.OutOrStdout(),
				[]string{"Code", "Language", "Default"},
				rows,
			)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the language list as JSON")
	return cmd
}

func writeLanguagesJSON(cmd *cobra.Command, codes []language.Code) error {
	type jsonLanguage struct {
		Code    string `json:"code"`
		Name    string `json:"name"`
		Default bool   `json:"default,omitempty"`
	}
	languages := make([]jsonLanguage, 0, len(codes))
	for _, code := range codes {
		languages = append(languages, jsonLanguage{
			Code:    string(code),
			Name:    code.DisplayName(),
			Default: code == language.Default,
		})
	}
	return writeJSON(cmd, map[string]any{"languages": languages})
}
