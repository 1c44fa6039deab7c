package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Lists the keys of the file in document order",
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadDocument()
		if err != nil {
			return err
		}
		for _, key := range doc.Keys() {
			fmt.Println(key)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(keysCmd)
}
